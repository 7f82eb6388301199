// File: decode.go
// Title: Strict UTF-8 to UTF-16 Conversion
// Description: Implements validating conversion from UTF-8 byte sequences
//              to UTF-16 code units. Unlike the standard library the
//              conversion never substitutes a replacement character:
//              malformed input fails with an error naming the byte offset
//              of the defect, so corrupted text is detected instead of
//              silently mangled.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package utfx

import (
	"github.com/msto63/mGW/foundation/core/errors"
)

// Unicode constants used by the validation and surrogate emission.
const (
	surrogateMin  = 0xD800
	surrogateMax  = 0xDFFF
	maxCodePoint  = 0x10FFFF
	supplementMin = 0x10000
)

// decodeRune decodes one UTF-8 sequence starting at b[i] and returns the
// code point and its byte length. Validation is strict: orphan
// continuation bytes, truncated sequences, malformed continuation bytes,
// surrogate code points and values beyond U+10FFFF all fail.
func decodeRune(b []byte, i int) (uint32, int, error) {
	c := b[i]

	// ASCII fast path.
	if c < 0x80 {
		return uint32(c), 1, nil
	}
	if c < 0xC0 {
		return 0, 0, errors.EncodingError(errors.ModuleUtfx, "decode continuation byte", i,
			"orphan continuation byte")
	}
	if c > 0xF7 {
		return 0, 0, errors.EncodingError(errors.ModuleUtfx, "decode leading byte", i,
			"invalid leading byte")
	}

	var size int
	var cp uint32
	switch {
	case c < 0xE0:
		size, cp = 2, uint32(c&0x1F)
	case c < 0xF0:
		size, cp = 3, uint32(c&0x0F)
	default:
		size, cp = 4, uint32(c&0x07)
	}

	if i+size > len(b) {
		return 0, 0, errors.EncodingError(errors.ModuleUtfx, "decode truncated sequence", i,
			"truncated multi-byte sequence")
	}
	for j := 1; j < size; j++ {
		cc := b[i+j]
		if cc < 0x80 || cc >= 0xC0 {
			return 0, 0, errors.EncodingError(errors.ModuleUtfx, "decode continuation byte", i+j,
				"malformed continuation byte")
		}
		cp = cp<<6 | uint32(cc&0x3F)
	}

	if cp >= surrogateMin && cp <= surrogateMax {
		return 0, 0, errors.EncodingError(errors.ModuleUtfx, "decode surrogate code point", i,
			"surrogate code point in UTF-8 input")
	}
	if cp > maxCodePoint {
		return 0, 0, errors.EncodingError(errors.ModuleUtfx, "decode code point range", i,
			"code point beyond U+10FFFF")
	}
	return cp, size, nil
}

// UTF16Length returns the number of UTF-16 code units needed to encode b,
// validating the input along the way.
func UTF16Length(b []byte) (int, error) {
	n := 0
	for i := 0; i < len(b); {
		cp, size, err := decodeRune(b, i)
		if err != nil {
			return 0, err
		}
		if cp >= supplementMin {
			n += 2
		} else {
			n++
		}
		i += size
	}
	return n, nil
}

// UTF8ToUTF16 converts the UTF-8 bytes b into a freshly allocated UTF-16
// code unit slice. On malformed input the result is nil and the error
// identifies the kind of defect and its byte offset; no partial output is
// returned.
func UTF8ToUTF16(b []byte) ([]uint16, error) {
	out := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		cp, size, err := decodeRune(b, i)
		if err != nil {
			return nil, err
		}
		if cp >= supplementMin {
			cp -= supplementMin
			out = append(out, uint16(cp>>10)+surrogateMin, uint16(cp&0x3FF)+0xDC00)
		} else {
			out = append(out, uint16(cp))
		}
		i += size
	}
	return out, nil
}

// UTF8ToUTF16Into converts the UTF-8 bytes b into dst and returns the
// number of code units written. If dst is too small the conversion fails
// without writing past its end.
func UTF8ToUTF16Into(dst []uint16, b []byte) (int, error) {
	n := 0
	for i := 0; i < len(b); {
		cp, size, err := decodeRune(b, i)
		if err != nil {
			return 0, err
		}
		units := 1
		if cp >= supplementMin {
			units = 2
		}
		if n+units > len(dst) {
			return 0, errors.EncodingError(errors.ModuleUtfx, "convert into buffer", i,
				"destination buffer too small")
		}
		if units == 2 {
			cp -= supplementMin
			dst[n] = uint16(cp>>10) + surrogateMin
			dst[n+1] = uint16(cp&0x3FF) + 0xDC00
		} else {
			dst[n] = uint16(cp)
		}
		n += units
		i += size
	}
	return n, nil
}

// IsValidUTF8 reports whether b is well formed under the strict rules of
// this package.
func IsValidUTF8(b []byte) bool {
	for i := 0; i < len(b); {
		_, size, err := decodeRune(b, i)
		if err != nil {
			return false
		}
		i += size
	}
	return true
}

// File: encode.go
// Title: UTF-16 to UTF-8 Conversion
// Description: Implements the reverse conversion from UTF-16 code units
//              back to UTF-8 bytes with the same strictness as the decode
//              direction: unpaired surrogates fail instead of being
//              replaced.
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

const (
	highSurrogateMin = 0xD800
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	lowSurrogateMax  = 0xDFFF
)

// UTF16ToUTF8 converts the UTF-16 code units in u into a freshly
// allocated UTF-8 byte slice. An unpaired or reversed surrogate fails
// with an error naming the code unit offset; no partial output is
// returned.
func UTF16ToUTF8(u []uint16) ([]byte, error) {
	out := make([]byte, 0, len(u)*3)
	for i := 0; i < len(u); i++ {
		unit := u[i]

		var cp uint32
		switch {
		case unit >= highSurrogateMin && unit <= highSurrogateMax:
			if i+1 >= len(u) {
				return nil, errors.EncodingError(errors.ModuleUtfx, "encode truncated surrogate pair", i,
					"high surrogate at end of input")
			}
			low := u[i+1]
			if low < lowSurrogateMin || low > lowSurrogateMax {
				return nil, errors.EncodingError(errors.ModuleUtfx, "encode surrogate pair", i+1,
					"high surrogate not followed by low surrogate")
			}
			cp = supplementMin +
				(uint32(unit-highSurrogateMin) << 10) +
				uint32(low-lowSurrogateMin)
			i++
		case unit >= lowSurrogateMin && unit <= lowSurrogateMax:
			return nil, errors.EncodingError(errors.ModuleUtfx, "encode surrogate pair", i,
				"low surrogate without preceding high surrogate")
		default:
			cp = uint32(unit)
		}

		switch {
		case cp < 0x80:
			out = append(out, byte(cp))
		case cp < 0x800:
			out = append(out, 0xC0|byte(cp>>6), 0x80|byte(cp&0x3F))
		case cp < supplementMin:
			out = append(out, 0xE0|byte(cp>>12), 0x80|byte(cp>>6&0x3F), 0x80|byte(cp&0x3F))
		default:
			out = append(out,
				0xF0|byte(cp>>18),
				0x80|byte(cp>>12&0x3F),
				0x80|byte(cp>>6&0x3F),
				0x80|byte(cp&0x3F))
		}
	}
	return out, nil
}

// UTF8Length returns the number of UTF-8 bytes needed to encode u,
// validating surrogate pairing along the way.
func UTF8Length(u []uint16) (int, error) {
	n := 0
	for i := 0; i < len(u); i++ {
		unit := u[i]
		switch {
		case unit >= highSurrogateMin && unit <= highSurrogateMax:
			if i+1 >= len(u) || u[i+1] < lowSurrogateMin || u[i+1] > lowSurrogateMax {
				return 0, errors.EncodingError(errors.ModuleUtfx, "encode surrogate pair", i,
					"unpaired high surrogate")
			}
			n += 4
			i++
		case unit >= lowSurrogateMin && unit <= lowSurrogateMax:
			return 0, errors.EncodingError(errors.ModuleUtfx, "encode surrogate pair", i,
				"low surrogate without preceding high surrogate")
		case unit < 0x80:
			n++
		case unit < 0x800:
			n += 2
		default:
			n += 3
		}
	}
	return n, nil
}

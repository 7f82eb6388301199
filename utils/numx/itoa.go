// File: itoa.go
// Title: Integer to String Formatting
// Description: Implements decimal integer formatting over a fixed stack
//              buffer using a two-digit lookup table. Negative values are
//              formatted without negating the input first, so the signed
//              minimum formats correctly even though its magnitude has no
//              positive counterpart.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial implementation

package numx

// digitPairs holds the two-digit representations of 0..99 back to back.
// Writing digits in pairs halves the number of divisions per value.
const digitPairs = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// maxInt64Digits is the longest formatted value: 19 digits for the
// magnitude of math.MinInt64 plus one byte for the sign.
const maxInt64Digits = 20

// formatUint writes v into the tail of buf and returns the index of the
// first written byte.
func formatUint(buf []byte, v uint64) int {
	i := len(buf)
	for v >= 100 {
		pair := (v % 100) * 2
		v /= 100
		i -= 2
		buf[i] = digitPairs[pair]
		buf[i+1] = digitPairs[pair+1]
	}
	pair := v * 2
	i--
	buf[i] = digitPairs[pair+1]
	if v >= 10 {
		i--
		buf[i] = digitPairs[pair]
	}
	return i
}

// formatNegInt64 writes the digits of the negative value v into the tail
// of buf and returns the index of the first digit. Working on the
// negative remainders avoids the overflow that negating math.MinInt64
// would cause.
func formatNegInt64(buf []byte, v int64) int {
	i := len(buf)
	for v <= -100 {
		pair := -(v % 100) * 2
		v /= 100
		i -= 2
		buf[i] = digitPairs[pair]
		buf[i+1] = digitPairs[pair+1]
	}
	pair := -v * 2
	i--
	buf[i] = digitPairs[pair+1]
	if v <= -10 {
		i--
		buf[i] = digitPairs[pair]
	}
	return i
}

// FormatInt64 returns the decimal representation of v.
func FormatInt64(v int64) string {
	var buf [maxInt64Digits]byte
	if v < 0 {
		i := formatNegInt64(buf[:], v)
		i--
		buf[i] = '-'
		return string(buf[i:])
	}
	i := formatUint(buf[:], uint64(v))
	return string(buf[i:])
}

// FormatUint64 returns the decimal representation of v.
func FormatUint64(v uint64) string {
	var buf [maxInt64Digits]byte
	i := formatUint(buf[:], v)
	return string(buf[i:])
}

// FormatInt32 returns the decimal representation of v.
func FormatInt32(v int32) string {
	return FormatInt64(int64(v))
}

// FormatUint32 returns the decimal representation of v.
func FormatUint32(v uint32) string {
	return FormatUint64(uint64(v))
}

// AppendInt64 appends the decimal representation of v to dst and returns
// the extended slice.
func AppendInt64(dst []byte, v int64) []byte {
	var buf [maxInt64Digits]byte
	if v < 0 {
		i := formatNegInt64(buf[:], v)
		i--
		buf[i] = '-'
		return append(dst, buf[i:]...)
	}
	i := formatUint(buf[:], uint64(v))
	return append(dst, buf[i:]...)
}

// AppendUint64 appends the decimal representation of v to dst and returns
// the extended slice.
func AppendUint64(dst []byte, v uint64) []byte {
	var buf [maxInt64Digits]byte
	i := formatUint(buf[:], v)
	return append(dst, buf[i:]...)
}

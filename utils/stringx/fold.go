// File: fold.go
// Title: ASCII Case Folding Primitives
// Description: Implements the ASCII upper-casing primitives used by the
//              case-insensitive search functions. Folding is deliberately
//              restricted to the ASCII letters a-z; all other code units
//              pass through unchanged, so non-ASCII text always compares
//              exactly.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation with byte and UTF-16 unit folding

package stringx

// ToUpperASCII returns the upper-case form of an 8-bit code unit.
// Only the ASCII letters a-z are folded; every other value is returned
// unchanged.
func ToUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// ToUpperASCIIUnit returns the upper-case form of a 16-bit code unit.
// Only the ASCII letters a-z are folded; every other value, including all
// non-ASCII UTF-16 units, is returned unchanged.
func ToUpperASCIIUnit(u uint16) uint16 {
	if u >= 'a' && u <= 'z' {
		return u - 'a' + 'A'
	}
	return u
}

// EqualFoldASCII reports whether two strings are equal under ASCII case
// folding. Non-ASCII bytes must match exactly.
func EqualFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if ToUpperASCII(a[i]) != ToUpperASCII(b[i]) {
			return false
		}
	}
	return true
}

// EqualFoldASCIIUTF16 reports whether two UTF-16 code unit sequences are
// equal under ASCII case folding. Non-ASCII units must match exactly.
func EqualFoldASCIIUTF16(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if ToUpperASCIIUnit(a[i]) != ToUpperASCIIUnit(b[i]) {
			return false
		}
	}
	return true
}

// File: search.go
// Title: Case-Insensitive Substring Search
// Description: Implements case-insensitive substring search for 8-bit and
//              16-bit code unit strings. The scan folds only ASCII letters,
//              precomputes the folded first unit of the needle as a cheap
//              prefilter, and verifies candidates with a fixed-length folded
//              compare. Worst case O(len(haystack) * len(needle)), which is
//              acceptable for the short identifiers and paths this serves.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation with 8-bit and 16-bit search

package stringx

// NotFound is returned by the search functions when no match exists.
const NotFound = -1

// FindIgnoreCase returns the index of the first occurrence of needle within
// haystack, matching ASCII letters without regard to case. Non-ASCII bytes
// must match exactly. An empty needle matches at the start of haystack.
// Returns NotFound when no match exists.
func FindIgnoreCase(haystack, needle string) int {
	if len(needle) == 0 {
		return 0
	}
	if len(haystack) < len(needle) {
		return NotFound
	}

	// Folded first letter of the needle as a prefilter, so the full
	// compare only runs on candidate positions.
	findInitial := ToUpperASCII(needle[0])
	rest := needle[1:]

	last := len(haystack) - len(needle)
	for i := 0; i <= last; i++ {
		if ToUpperASCII(haystack[i]) != findInitial {
			continue
		}
		if equalFoldASCIIAt(haystack, i+1, rest) {
			return i
		}
	}

	return NotFound
}

// FindIgnoreCaseUTF16 returns the index of the first occurrence of needle
// within haystack over UTF-16 code units, matching ASCII letters without
// regard to case. Non-ASCII units must match exactly. A nil haystack or
// needle yields NotFound; an empty non-nil needle matches at the start.
func FindIgnoreCaseUTF16(haystack, needle []uint16) int {
	if haystack == nil || needle == nil {
		return NotFound
	}
	if len(needle) == 0 {
		return 0
	}
	if len(haystack) < len(needle) {
		return NotFound
	}

	findInitial := ToUpperASCIIUnit(needle[0])
	rest := needle[1:]

	last := len(haystack) - len(needle)
	for i := 0; i <= last; i++ {
		if ToUpperASCIIUnit(haystack[i]) != findInitial {
			continue
		}
		if equalFoldASCIIUTF16At(haystack, i+1, rest) {
			return i
		}
	}

	return NotFound
}

// ContainsIgnoreCase returns true if substr is within s, ignoring ASCII case.
func ContainsIgnoreCase(s, substr string) bool {
	return FindIgnoreCase(s, substr) != NotFound
}

// equalFoldASCIIAt reports whether s[offset:offset+len(sub)] equals sub under
// ASCII case folding. The caller guarantees the slice is in bounds.
func equalFoldASCIIAt(s string, offset int, sub string) bool {
	for i := 0; i < len(sub); i++ {
		if ToUpperASCII(s[offset+i]) != ToUpperASCII(sub[i]) {
			return false
		}
	}
	return true
}

// equalFoldASCIIUTF16At reports whether s[offset:offset+len(sub)] equals sub
// under ASCII case folding over UTF-16 units.
func equalFoldASCIIUTF16At(s []uint16, offset int, sub []uint16) bool {
	for i := 0; i < len(sub); i++ {
		if ToUpperASCIIUnit(s[offset+i]) != ToUpperASCIIUnit(sub[i]) {
			return false
		}
	}
	return true
}

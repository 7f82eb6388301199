// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements essential string operations that extend the Go
//              standard library. Focuses on allocation-aware primitives for
//              the mGW platform's identifier and path handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty returns true if the string is not empty.
// Convenience function that's the inverse of IsEmpty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string is not empty and contains non-whitespace characters.
// Convenience function that's the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonEmpty returns the first non-empty string from the provided strings.
// This is useful for providing default values in a chain.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first non-blank string from the provided strings.
// This is useful for providing default values while ignoring whitespace-only strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// FromDefault returns the string if not empty, otherwise returns the default value
func FromDefault(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

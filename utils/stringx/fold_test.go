// File: fold_test.go
// Title: Unit Tests for ASCII Case Folding
// Description: Tests for the byte and UTF-16 unit folding primitives and the
//              folded equality helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial test implementation

package stringx

import "testing"

func TestToUpperASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    byte
		expected byte
	}{
		{"lowercase a", 'a', 'A'},
		{"lowercase z", 'z', 'Z'},
		{"already upper", 'M', 'M'},
		{"digit unchanged", '7', '7'},
		{"separator unchanged", '/', '/'},
		{"byte before a", '`', '`'},
		{"byte after z", '{', '{'},
		{"high byte unchanged", 0xE4, 0xE4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ToUpperASCII(tt.input); result != tt.expected {
				t.Errorf("ToUpperASCII(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToUpperASCIIUnit(t *testing.T) {
	tests := []struct {
		name     string
		input    uint16
		expected uint16
	}{
		{"lowercase", 'g', 'G'},
		{"uppercase unchanged", 'G', 'G'},
		{"non-ascii letter unchanged", 0x00E4, 0x00E4}, // ä
		{"cjk unchanged", 0x65E5, 0x65E5},
		{"surrogate unchanged", 0xD83D, 0xD83D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ToUpperASCIIUnit(tt.input); result != tt.expected {
				t.Errorf("ToUpperASCIIUnit(%#04x) = %#04x; want %#04x", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEqualFoldASCII(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{"identical", "abc", "abc", true},
		{"case difference", "ABC", "abc", true},
		{"mixed", "CoNfIg", "config", true},
		{"different content", "abc", "abd", false},
		{"different length", "abc", "abcd", false},
		{"both empty", "", "", true},
		{"non-ascii must match exactly", "Ä", "ä", false},
		{"non-ascii identical", "ä", "ä", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := EqualFoldASCII(tt.a, tt.b); result != tt.expected {
				t.Errorf("EqualFoldASCII(%q, %q) = %v; want %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestEqualFoldASCIIUTF16(t *testing.T) {
	if !EqualFoldASCIIUTF16(asUTF16("Hello"), asUTF16("hELLO")) {
		t.Error("ASCII letters should fold")
	}
	if EqualFoldASCIIUTF16(asUTF16("Ä"), asUTF16("ä")) {
		t.Error("non-ASCII units must not fold")
	}
	if EqualFoldASCIIUTF16(asUTF16("ab"), asUTF16("abc")) {
		t.Error("length mismatch should not be equal")
	}
	if !EqualFoldASCIIUTF16(nil, []uint16{}) {
		t.Error("nil and empty compare equal under length semantics")
	}
}

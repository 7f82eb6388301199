// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Unit tests for the core string utility functions in the
//              stringx package covering emptiness, blankness, and default
//              value chains.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial test implementation

package stringx

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", false},
		{"normal string", "hello", false},
		{"unicode string", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsEmpty(tt.input)
			if result != tt.expected {
				t.Errorf("IsEmpty(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"multiple spaces", "   ", true},
		{"tab and spaces", " \t ", true},
		{"newline", "\n", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsBlank(tt.input)
			if result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsNotEmptyAndIsNotBlank(t *testing.T) {
	if IsNotEmpty("") || !IsNotEmpty("x") {
		t.Error("IsNotEmpty should invert IsEmpty")
	}
	if IsNotBlank("  ") || !IsNotBlank(" x ") {
		t.Error("IsNotBlank should invert IsBlank")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []string
		expected string
	}{
		{"first wins", []string{"a", "b"}, "a"},
		{"skips empty", []string{"", "", "c"}, "c"},
		{"all empty", []string{"", ""}, ""},
		{"no arguments", nil, ""},
		{"whitespace counts as non-empty", []string{" ", "b"}, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := FirstNonEmpty(tt.inputs...); result != tt.expected {
				t.Errorf("FirstNonEmpty(%v) = %q; want %q", tt.inputs, result, tt.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if result := FirstNonBlank("  ", "\t", "value", "other"); result != "value" {
		t.Errorf("FirstNonBlank = %q; want %q", result, "value")
	}
	if result := FirstNonBlank("  ", ""); result != "" {
		t.Errorf("FirstNonBlank all blank = %q; want empty", result)
	}
}

func TestFromDefault(t *testing.T) {
	if FromDefault("", "fallback") != "fallback" {
		t.Error("empty input should yield the default")
	}
	if FromDefault("set", "fallback") != "set" {
		t.Error("non-empty input should be returned unchanged")
	}
}

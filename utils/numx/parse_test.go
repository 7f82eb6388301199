// File: parse_test.go
// Title: Tests for Tolerant Float Parsing
// Description: Table-driven tests for the zero-disambiguating float
//              parser and the integer parser helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial test implementation

package numx

import "testing"

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"integer", "42", 42, true},
		{"decimal point", "3.25", 3.25, true},
		{"decimal comma", "3,25", 3.25, true},
		{"negative", "-1.5", -1.5, true},
		{"bare zero", "0", 0, true},
		{"zero point zero", "0.0", 0, true},
		{"zero comma zero", "0,0", 0, true},
		{"long zero rejected", "0.00", 0, false},
		{"negative zero rejected", "-0", 0, false},
		{"zero exponent rejected", "0e0", 0, false},
		{"plain text", "abc", 0, false},
		{"empty", "", 0, false},
		{"trailing garbage", "1.5x", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFloat(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseFloat(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseFloat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInt64(t *testing.T) {
	if v, ok := ParseInt64("-9223372036854775808"); !ok || v != -9223372036854775808 {
		t.Errorf("ParseInt64(min) = %d, ok=%v", v, ok)
	}
	if _, ok := ParseInt64("9223372036854775808"); ok {
		t.Error("ParseInt64 accepted an out-of-range value")
	}
	if _, ok := ParseInt64("12.5"); ok {
		t.Error("ParseInt64 accepted a fractional value")
	}
}

func TestParseUint64(t *testing.T) {
	if v, ok := ParseUint64("18446744073709551615"); !ok || v != 18446744073709551615 {
		t.Errorf("ParseUint64(max) = %d, ok=%v", v, ok)
	}
	if _, ok := ParseUint64("-1"); ok {
		t.Error("ParseUint64 accepted a negative value")
	}
}

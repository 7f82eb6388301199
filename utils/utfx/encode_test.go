// File: encode_test.go
// Title: Tests for UTF-16 Encoding
// Description: Table-driven tests for the UTF-16 to UTF-8 direction and
//              round trips through both conversions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial test implementation

package utfx

import (
	"bytes"
	"testing"
)

func TestUTF16ToUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input []uint16
		want  string
	}{
		{"empty", []uint16{}, ""},
		{"ascii", []uint16{'H', 'i'}, "Hi"},
		{"two byte", []uint16{0x00E4}, "ä"},
		{"three byte", []uint16{0x20AC}, "€"},
		{"surrogate pair", []uint16{0xD83D, 0xDE00}, "\U0001F600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UTF16ToUTF8(tt.input)
			if err != nil {
				t.Fatalf("UTF16ToUTF8 failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("UTF16ToUTF8 = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUTF16ToUTF8Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input []uint16
	}{
		{"trailing high surrogate", []uint16{'a', 0xD83D}},
		{"high without low", []uint16{0xD83D, 'a'}},
		{"lone low surrogate", []uint16{0xDE00}},
		{"reversed pair", []uint16{0xDE00, 0xD83D}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UTF16ToUTF8(tt.input); err == nil {
				t.Errorf("UTF16ToUTF8(%#v) succeeded, want rejection", tt.input)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii",
		"Grüße aus dem Grafikwerk",
		"€ 12,50",
		"emoji \U0001F600 and beyond \U0010FFFF",
	}

	for _, s := range inputs {
		units, err := UTF8ToUTF16([]byte(s))
		if err != nil {
			t.Fatalf("UTF8ToUTF16(%q) failed: %v", s, err)
		}
		back, err := UTF16ToUTF8(units)
		if err != nil {
			t.Fatalf("UTF16ToUTF8 of %q failed: %v", s, err)
		}
		if !bytes.Equal(back, []byte(s)) {
			t.Errorf("round trip of %q yielded %q", s, back)
		}
	}
}

func TestUTF8Length(t *testing.T) {
	units := []uint16{'a', 0x00E4, 0x20AC, 0xD83D, 0xDE00}
	n, err := UTF8Length(units)
	if err != nil {
		t.Fatalf("UTF8Length failed: %v", err)
	}
	if n != 10 {
		t.Errorf("UTF8Length = %d, want 10", n)
	}

	if _, err := UTF8Length([]uint16{0xD800}); err == nil {
		t.Error("UTF8Length accepted an unpaired high surrogate")
	}
}

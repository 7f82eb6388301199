// File: parse.go
// Title: Tolerant Float Parsing
// Description: Implements float parsing with decimal comma support and
//              explicit zero disambiguation. Because a parsed value of
//              zero is indistinguishable from a failed parse when only
//              the value is inspected, ParseFloat returns an explicit
//              success flag and accepts exactly "0", "0.0" and "0,0" as
//              genuine zeros.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial implementation

package numx

import (
	"strconv"
	"strings"
)

// isZeroLiteral reports whether s is one of the three accepted spellings
// of zero: "0", "0.0" or "0,0".
func isZeroLiteral(s string) bool {
	if len(s) == 0 || s[0] != '0' {
		return false
	}
	if len(s) == 1 {
		return true
	}
	return len(s) == 3 && (s[1] == '.' || s[1] == ',') && s[2] == '0'
}

// ParseFloat parses s as a decimal floating point number and reports
// whether the parse succeeded. A decimal comma is accepted in place of a
// decimal point. A result of zero is only reported as success for the
// literals "0", "0.0" and "0,0"; any other input that would parse to
// zero, including "0.00" or "-0", is treated as a failed parse so that a
// zero result always means the input genuinely spelled zero.
func ParseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	if v == 0 && !isZeroLiteral(s) {
		return 0, false
	}
	return v, true
}

// ParseInt64 parses s as a signed decimal integer and reports whether the
// parse succeeded.
func ParseInt64(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseUint64 parses s as an unsigned decimal integer and reports whether
// the parse succeeded.
func ParseUint64(s string) (uint64, bool) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

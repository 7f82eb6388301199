// File: doc.go
// Title: Package Documentation for numx
// Description: Package-level documentation for the numeric string
//              utilities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial documentation

// Package numx provides allocation-conscious numeric formatting and
// tolerant parsing for the mGW foundation library.
//
// The Format functions write into a fixed stack buffer using a two-digit
// lookup table, so formatting performs at most one allocation for the
// final string and the Append variants perform none when dst has
// capacity. Negative values are formatted on their negative remainders,
// which keeps math.MinInt32 and math.MinInt64 correct without widening.
//
// ParseFloat accepts a decimal comma alongside the decimal point and
// returns an explicit success flag. A zero result is only successful for
// the exact literals "0", "0.0" and "0,0"; everything else that would
// parse to zero counts as a failure, so callers using zero as a sentinel
// never mistake malformed input for a genuine zero.
package numx

// File: severity_test.go
// Title: Unit Tests for Error Severity Levels
// Description: Tests for severity string conversion, alerting thresholds, and
//              code-based severity derivation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial test implementation

package error

import "testing"

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.severity.String(); result != tt.expected {
				t.Errorf("String() = %q; want %q", result, tt.expected)
			}
		})
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	if SeverityLow.ShouldAlert() || SeverityMedium.ShouldAlert() {
		t.Error("low and medium severities should not alert")
	}
	if !SeverityHigh.ShouldAlert() || !SeverityCritical.ShouldAlert() {
		t.Error("high and critical severities should alert")
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		expected Severity
	}{
		{"buffer too small is high", CodeBufferTooSmall, SeverityHigh},
		{"missing config is high", CodeMissingConfig, SeverityHigh},
		{"invalid utf8 is medium", CodeInvalidUTF8, SeverityMedium},
		{"ambiguous zero is medium", CodeAmbiguousZero, SeverityMedium},
		{"invalid input is low", CodeInvalidInput, SeverityLow},
		{"not found is low", CodeNotFound, SeverityLow},
		{"unknown code defaults to medium", Code("NO_SUCH_CODE"), SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := GetSeverityFromCode(tt.code); result != tt.expected {
				t.Errorf("GetSeverityFromCode(%v) = %v; want %v", tt.code, result, tt.expected)
			}
		})
	}
}

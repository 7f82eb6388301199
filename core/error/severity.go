// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization,
//              monitoring, and alerting. Severity levels help callers decide how
//              to surface failures of the foundation primitives.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, missing optional fields, empty search needles
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: malformed UTF-8 input, ambiguous numeric text
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: undersized output buffers, configuration that cannot be loaded
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: corrupted internal state, impossible invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// High severity errors
	case CodeBufferTooSmall, CodeConfigError, CodeMissingConfig, CodeInternal:
		return SeverityHigh

	// Medium severity errors
	case CodeInvalidUTF8, CodeTruncatedSequence, CodeOrphanContinuation,
		CodeSurrogateRange, CodeCodePointRange,
		CodeAmbiguousZero, CodeInvalidNumber, CodeInvalidConfig:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound, CodeEmptyPath, CodeInvalidPath,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}

// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the mGW platform. These codes enable structured error handling,
//              diagnostic reporting, and error monitoring for the text, path, and
//              number primitives of the foundation library.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the mGW platform
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Text encoding
	CodeInvalidUTF8        Code = "INVALID_UTF8"
	CodeTruncatedSequence  Code = "TRUNCATED_SEQUENCE"
	CodeOrphanContinuation Code = "ORPHAN_CONTINUATION"
	CodeSurrogateRange     Code = "SURROGATE_RANGE"
	CodeCodePointRange     Code = "CODE_POINT_RANGE"
	CodeBufferTooSmall     Code = "BUFFER_TOO_SMALL"

	// Path handling
	CodeInvalidPath    Code = "INVALID_PATH"
	CodeEmptyPath      Code = "EMPTY_PATH"
	CodePathNormalized Code = "PATH_NORMALIZED"

	// Number formatting and parsing
	CodeInvalidNumber  Code = "INVALID_NUMBER"
	CodeAmbiguousZero  Code = "AMBIGUOUS_ZERO"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidUTF8, CodeTruncatedSequence, CodeOrphanContinuation,
		CodeSurrogateRange, CodeCodePointRange, CodeBufferTooSmall,
		CodeInvalidPath, CodeEmptyPath, CodePathNormalized,
		CodeInvalidNumber, CodeAmbiguousZero, CodeValueOutOfRange,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidUTF8, CodeTruncatedSequence, CodeOrphanContinuation,
		CodeSurrogateRange, CodeCodePointRange, CodeBufferTooSmall:
		return "encoding"
	case CodeInvalidPath, CodeEmptyPath, CodePathNormalized:
		return "path"
	case CodeInvalidNumber, CodeAmbiguousZero, CodeValueOutOfRange:
		return "number"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}

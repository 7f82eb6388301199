// File: standards.go
// Title: Error Standards for mGW Foundation
// Description: Provides standardized error handling patterns and codes for all
//              mGW foundation modules to ensure consistency and integration.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"
	"strings"

	mgwerror "github.com/msto63/mGW/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModulePathx   = "pathx"
	ModuleNumx    = "numx"
	ModuleUtfx    = "utfx"
	ModuleConfig  = "config"
)

// StandardError creates a basic module error with automatic code assignment
func StandardError(module, operation, message string) *mgwerror.Error {
	return mgwerror.New(message).
		WithCode(getModuleErrorCode(module, operation)).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		})
}

// ModuleError creates an error specific to a module operation
func ModuleError(module, operation string, cause error, details map[string]interface{}) *mgwerror.Error {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["module"] = module
	details["operation"] = operation

	code := getModuleErrorCode(module, operation)

	if cause != nil {
		return mgwerror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation)).
			WithCode(code).
			WithOperation(operation).
			WithDetails(details)
	}

	return mgwerror.New(fmt.Sprintf("%s.%s failed", module, operation)).
		WithCode(code).
		WithOperation(operation).
		WithDetails(details)
}

// InputError creates a standardized input validation error
func InputError(module, operation string, input interface{}, expected string) *mgwerror.Error {
	return mgwerror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(mgwerror.CodeInvalidInput).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		}).
		WithSeverity(mgwerror.SeverityLow)
}

// FormatError creates a standardized format error
func FormatError(module string, input interface{}, expectedFormat string) *mgwerror.Error {
	return mgwerror.New(fmt.Sprintf("invalid format in %s", module)).
		WithCode(mgwerror.CodeInvalidFormat).
		WithDetails(map[string]interface{}{
			"module":          module,
			"input":           input,
			"expected_format": expectedFormat,
		}).
		WithSeverity(mgwerror.SeverityMedium)
}

// EncodingError creates a standardized encoding error carrying the byte
// offset at which validation failed
func EncodingError(module, operation string, offset int, message string) *mgwerror.Error {
	return mgwerror.New(message).
		WithCode(getEncodingErrorCode(operation)).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"offset":    offset,
		}).
		WithSeverity(mgwerror.SeverityMedium)
}

// ValidationError creates a standardized validation error
func ValidationError(module, field string, value interface{}, message string) *mgwerror.Error {
	return mgwerror.New(message).
		WithCode(mgwerror.CodeValidationFailed).
		WithDetails(map[string]interface{}{
			"module": module,
			"field":  field,
			"value":  value,
		}).
		WithSeverity(mgwerror.SeverityLow)
}

// OperationError creates a standardized operation failure error
func OperationError(module, operation string, cause error, context map[string]interface{}) *mgwerror.Error {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["module"] = module
	context["operation"] = operation

	return mgwerror.Wrap(cause, fmt.Sprintf("%s.%s operation failed", module, operation)).
		WithCode(getModuleErrorCode(module, operation)).
		WithOperation(operation).
		WithDetails(context).
		WithSeverity(mgwerror.SeverityHigh)
}

// IsModuleError checks if an error belongs to the specified module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	mgwErr, ok := err.(*mgwerror.Error)
	if !ok {
		return ""
	}
	if module, ok := mgwErr.Details()["module"].(string); ok {
		return module
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	mgwErr, ok := err.(*mgwerror.Error)
	if !ok {
		return ""
	}
	return mgwErr.Operation()
}

// getModuleErrorCode returns the appropriate error code for a module operation
func getModuleErrorCode(module, operation string) mgwerror.Code {
	switch module {
	case ModuleStringx:
		return getStringxErrorCode(operation)
	case ModulePathx:
		return getPathxErrorCode(operation)
	case ModuleNumx:
		return getNumxErrorCode(operation)
	case ModuleUtfx:
		return getEncodingErrorCode(operation)
	case ModuleConfig:
		return getConfigErrorCode(operation)
	default:
		return mgwerror.CodeInternal
	}
}

func getStringxErrorCode(operation string) mgwerror.Code {
	switch {
	case strings.Contains(operation, "search") || strings.Contains(operation, "find"):
		return mgwerror.CodeNotFound
	case strings.Contains(operation, "length"):
		return mgwerror.CodeInvalidLength
	default:
		return mgwerror.CodeInvalidInput
	}
}

func getPathxErrorCode(operation string) mgwerror.Code {
	switch {
	case strings.Contains(operation, "normalize"):
		return mgwerror.CodePathNormalized
	case strings.Contains(operation, "empty"):
		return mgwerror.CodeEmptyPath
	default:
		return mgwerror.CodeInvalidPath
	}
}

func getNumxErrorCode(operation string) mgwerror.Code {
	switch {
	case strings.Contains(operation, "parse"):
		return mgwerror.CodeInvalidNumber
	case strings.Contains(operation, "zero"):
		return mgwerror.CodeAmbiguousZero
	case strings.Contains(operation, "range"):
		return mgwerror.CodeValueOutOfRange
	default:
		return mgwerror.CodeInvalidNumber
	}
}

func getEncodingErrorCode(operation string) mgwerror.Code {
	switch {
	case strings.Contains(operation, "truncated"):
		return mgwerror.CodeTruncatedSequence
	case strings.Contains(operation, "continuation"):
		return mgwerror.CodeOrphanContinuation
	case strings.Contains(operation, "surrogate"):
		return mgwerror.CodeSurrogateRange
	case strings.Contains(operation, "range"):
		return mgwerror.CodeCodePointRange
	case strings.Contains(operation, "buffer"):
		return mgwerror.CodeBufferTooSmall
	default:
		return mgwerror.CodeInvalidUTF8
	}
}

func getConfigErrorCode(operation string) mgwerror.Code {
	switch {
	case strings.Contains(operation, "missing") || strings.Contains(operation, "discover"):
		return mgwerror.CodeMissingConfig
	case strings.Contains(operation, "validate"):
		return mgwerror.CodeInvalidConfig
	default:
		return mgwerror.CodeConfigError
	}
}

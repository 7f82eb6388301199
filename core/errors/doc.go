// Package errors provides THE STANDARD error handling interface for all mGW foundation
// modules. This is the primary error handling API that all modules should use.
//
// Package: errors
// Title: Standard Error Handling API for mGW Foundation
// Description: This package provides common error patterns, standardized error
//              codes, and utilities for creating consistent errors across all
//              mGW foundation modules. It integrates with the core error package
//              to provide module-specific error handling while maintaining
//              consistency and enabling better error analysis and monitoring.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation for cross-module error standardization
//
// Package Overview:
//
// The errors package serves as the foundation for consistent error handling
// across all mGW modules, providing:
//
// # Standardized Error Codes
//
// Module-specific error codes for consistent error categorization:
//   - Common codes: INVALID_INPUT, INVALID_FORMAT, NOT_FOUND, etc.
//   - utfx codes: INVALID_UTF8, TRUNCATED_SEQUENCE, SURROGATE_RANGE, etc.
//   - pathx codes: INVALID_PATH, EMPTY_PATH, etc.
//   - numx codes: INVALID_NUMBER, AMBIGUOUS_ZERO, VALUE_OUT_OF_RANGE, etc.
//
// # Error Creation Utilities
//
// Standardized functions for creating module-specific errors:
//   - StandardError: Basic module error with automatic code assignment
//   - ModuleError: Wraps errors with module context and details
//   - InputError: For invalid input parameters
//   - FormatError: For format-related errors
//   - EncodingError: For UTF-8 validation failures with byte offsets
//   - ValidationError: Specialized for validation failures
//   - OperationError: For operation failures
//
// # Error Analysis Functions
//
// Utilities for analyzing and working with standardized errors:
//   - IsModuleError: Check if error belongs to specific module
//   - GetErrorModule: Extract module name from error
//   - GetErrorOperation: Extract operation name from error
//
// # Usage Examples
//
// Creating standardized module errors:
//
//	// Input validation error
//	err := errors.InputError("utfx", "utf8_to_utf16", nil, "non-nil byte slice")
//
//	// Encoding failure with byte offset
//	err = errors.EncodingError("utfx", "utf8_continuation", 17, "not a UTF-8 string")
//
//	// Format error
//	err = errors.FormatError("numx", "1.2.3", "decimal number")
package errors

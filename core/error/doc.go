// Package error provides comprehensive error handling capabilities for the mGW platform.
//
// Package: error
// Title: mGW Error Handling Framework
// Description: This package implements a structured error handling system with contextual
//              information, error codes, stack traces, and integration with logging and
//              monitoring systems. It provides a foundation for consistent error handling
//              across all mGW foundation modules, in particular the strict UTF-8
//              validation errors surfaced by the text conversion primitives.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent diagnostics
// - Stack trace capture for debugging
// - Integration with the core/log structured logger
// - Error severity levels and categorization
//
// Usage:
//   import "github.com/msto63/mGW/foundation/core/error"
//
//   // Create a new error with context
//   err := error.New("not a UTF-8 string").
//     WithCode(error.CodeInvalidUTF8).
//     WithDetail("offset", 17).
//     WithSeverity(error.SeverityMedium)
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "failed to convert shader path").
//     WithCode(error.CodeInvalidPath).
//     WithDetail("path", path)
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeInvalidUTF8) {
//     // Handle encoding errors specifically
//   }
package error

// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with contextual information, stack traces,
//              and metadata. This provides a rich error handling system that maintains
//              compatibility with Go's standard error interface while adding the
//              diagnostic context the mGW text and path primitives report.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with contextual errors

package error

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Error represents a structured error with context, codes, and metadata
type Error struct {
	// Core error information
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	// Context and metadata
	details       map[string]interface{}
	operation     string
	correlationID string

	// Stack trace information
	stackTrace []StackFrame
}

// StackFrame represents a single frame in the stack trace
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

const (
	// MaxErrorChainDepth limits the depth of error wrapping to prevent memory leaks
	MaxErrorChainDepth = 15

	// MaxStackFrames limits the number of stack frames captured
	MaxStackFrames = 20
)

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:    message,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(2), // Skip New and caller
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return &Error{
		message:    fmt.Sprintf(format, args...),
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(2),
	}
}

// getErrorChainDepth calculates the depth of an error chain
func getErrorChainDepth(err error) int {
	depth := 0
	current := err

	for current != nil && depth < MaxErrorChainDepth*2 { // Safety limit
		depth++
		if mgwErr, ok := current.(*Error); ok {
			current = mgwErr.cause
		} else {
			break
		}
	}

	return depth
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Check error chain depth to prevent memory leaks
	if depth := getErrorChainDepth(err); depth >= MaxErrorChainDepth {
		// Create a flattened error instead of continuing the chain
		rootCause := getRootCause(err)
		return &Error{
			message:    fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxErrorChainDepth, rootCause.Error()),
			cause:      nil, // Break the chain
			code:       CodeUnknown,
			severity:   SeverityHigh,
			timestamp:  time.Now(),
			details:    map[string]interface{}{"truncated": true, "original_depth": depth},
			stackTrace: captureStackTrace(2),
		}
	}

	// If err is already our Error type, preserve its information
	if mgwErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:    message,
			cause:      mgwErr,
			code:       mgwErr.code,
			severity:   mgwErr.severity,
			timestamp:  time.Now(),
			details:    make(map[string]interface{}),
			stackTrace: captureStackTrace(2),
		}
		// Copy details from the original error
		for k, v := range mgwErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	// Wrap standard error
	return &Error{
		message:    message,
		cause:      err,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(2),
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// getRootCause helper function to get the deepest error in a chain
func getRootCause(err error) error {
	current := err
	var last error = err

	for current != nil {
		last = current
		if mgwErr, ok := current.(*Error); ok {
			current = mgwErr.cause
		} else {
			break
		}
	}

	return last
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium { // Only auto-set if not explicitly set
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithCorrelationID sets the correlation ID associated with the error
func (e *Error) WithCorrelationID(correlationID string) *Error {
	e.correlationID = correlationID
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{})
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// CorrelationID returns the correlation ID associated with the error
func (e *Error) CorrelationID() string {
	return e.correlationID
}

// StackTrace returns a copy of the stack trace
func (e *Error) StackTrace() []StackFrame {
	result := make([]StackFrame, len(e.stackTrace))
	copy(result, e.stackTrace)
	return result
}

// RootCause returns the deepest error in the chain
func (e *Error) RootCause() error {
	return getRootCause(e)
}

// captureStackTrace captures the current stack trace, skipping the given
// number of frames
func captureStackTrace(skip int) []StackFrame {
	frames := make([]StackFrame, 0, MaxStackFrames)
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return frames
	}

	callersFrames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := callersFrames.Next()

		// Skip runtime internals
		if strings.Contains(frame.Function, "runtime.") {
			if !more {
				break
			}
			continue
		}

		frames = append(frames, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})

		if !more || len(frames) >= MaxStackFrames {
			break
		}
	}

	return frames
}

// Is reports whether the target error matches this error by code
func (e *Error) Is(target error) bool {
	if targetErr, ok := target.(*Error); ok {
		return e.code == targetErr.code
	}
	return false
}

// HasCode checks whether any error in the chain carries the given code
func HasCode(err error, code Code) bool {
	current := err
	for current != nil {
		if mgwErr, ok := current.(*Error); ok {
			if mgwErr.code == code {
				return true
			}
			current = mgwErr.cause
		} else {
			break
		}
	}
	return false
}

// GetCode extracts the error code from an error, returning CodeUnknown for
// errors that do not carry one
func GetCode(err error) Code {
	if mgwErr, ok := err.(*Error); ok {
		return mgwErr.code
	}
	return CodeUnknown
}

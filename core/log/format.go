// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages including JSON, text,
//              and console formats. Provides formatters for different output
//              destinations and use cases.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-13
//
// Change History:
// - 2025-08-13 v0.1.0: Initial implementation with multiple output formats

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs (recommended for production)
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs colored console logs for development
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatJSON, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	// PrettyPrint enables indented JSON output
	PrettyPrint bool

	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint:     false,
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{})

	// Standard fields
	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	// Context fields
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}

	// Custom fields
	for k, v := range entry.Fields {
		data[k] = v
	}

	// Error information
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}

	// Performance metrics
	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1000000
	}

	// Caller information
	if entry.Caller != nil {
		data["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}

	if f.PrettyPrint {
		return json.MarshalIndent(data, "", "  ")
	}

	return json.Marshal(data)
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string

	// FullTimestamp enables full timestamp instead of just time
	FullTimestamp bool

	// DisableTimestamp disables timestamp output
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat:  "15:04:05",
		FullTimestamp:    false,
		DisableTimestamp: false,
	}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var parts []string

	// Timestamp
	if !f.DisableTimestamp {
		timestampFormat := f.TimestampFormat
		if f.FullTimestamp {
			timestampFormat = time.RFC3339
		}
		parts = append(parts, entry.Timestamp.Format(timestampFormat))
	}

	// Level
	parts = append(parts, fmt.Sprintf("[%s]", entry.Level.ShortString()))

	// Logger name
	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("{%s}", entry.Logger))
	}

	// Correlation context
	if entry.CorrelationID != "" {
		parts = append(parts, fmt.Sprintf("(cid=%s)", entry.CorrelationID))
	}

	// Message
	parts = append(parts, entry.Message)

	// Fields, sorted for deterministic output
	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fieldParts := make([]string, 0, len(keys))
		for _, k := range keys {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, fmt.Sprintf("[%s]", strings.Join(fieldParts, " ")))
	}

	// Error
	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	// Duration
	if entry.Duration > 0 {
		parts = append(parts, fmt.Sprintf("duration=%s", entry.Duration))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// ConsoleFormatter formats log entries for console output with colors
type ConsoleFormatter struct {
	// DisableColors disables color output
	DisableColors bool

	// TextFormatter embedded for basic formatting
	*TextFormatter
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{
		DisableColors: false,
		TextFormatter: NewTextFormatter(),
	}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	// Get basic text format
	data, err := f.TextFormatter.Format(entry)
	if err != nil {
		return nil, err
	}

	// Apply colors if enabled
	if !f.DisableColors {
		colorCode := entry.Level.Color()
		resetCode := "\033[0m"

		colored := fmt.Sprintf("%s%s%s", colorCode, strings.TrimSpace(string(data)), resetCode)
		return []byte(colored + "\n"), nil
	}

	return data, nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}

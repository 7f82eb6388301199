// File: logger_test.go
// Title: Unit Tests for Core Logger
// Description: Tests for logger configuration, level filtering, contextual
//              fields, and structured error logging.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-13
//
// Change History:
// - 2025-08-13 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	mgwerror "github.com/msto63/mGW/foundation/core/error"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: buf,
		Name:   "test",
	})
	return logger, buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Errorf("messages below minimum level should be suppressed, got %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("warn message should be written")
	}
}

func TestLoggerFields(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.WithField("component", "pathx").Info("normalized", Fields{"segments": 3})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["component"] != "pathx" {
		t.Errorf("component = %v", decoded["component"])
	}
	if decoded["segments"] != float64(3) {
		t.Errorf("segments = %v", decoded["segments"])
	}
}

func TestLoggerCloneIsolation(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	derived := logger.WithField("extra", true)
	logger.Info("base message")

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if _, exists := decoded["extra"]; exists {
		t.Error("fields added to a derived logger must not leak into the base")
	}

	buf.Reset()
	derived.Info("derived message")
	if !strings.Contains(buf.String(), "extra") {
		t.Error("derived logger should carry its field")
	}
}

func TestLoggerCorrelationID(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.WithCorrelationID("run-42").Info("hello")

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["correlation_id"] != "run-42" {
		t.Errorf("correlation_id = %v", decoded["correlation_id"])
	}
}

func TestLoggerErrorWithErr(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.ErrorWithErr("operation failed", mgwerror.New("boom"))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["error"] != "boom" {
		t.Errorf("error = %v", decoded["error"])
	}
}

func TestLoggerLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name          string
		severity      mgwerror.Severity
		expectedLevel string
	}{
		{"low severity logs info", mgwerror.SeverityLow, "info"},
		{"medium severity logs warn", mgwerror.SeverityMedium, "warn"},
		{"high severity logs error", mgwerror.SeverityHigh, "error"},
		{"critical severity logs error", mgwerror.SeverityCritical, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(LevelTrace)

			err := mgwerror.New("structured failure").
				WithCode(mgwerror.CodeInvalidUTF8).
				WithSeverity(tt.severity)
			logger.LogError(err)

			var decoded map[string]interface{}
			if jsonErr := json.Unmarshal(buf.Bytes(), &decoded); jsonErr != nil {
				t.Fatalf("invalid JSON output: %v", jsonErr)
			}
			if decoded["level"] != tt.expectedLevel {
				t.Errorf("level = %v; want %v", decoded["level"], tt.expectedLevel)
			}
			if decoded["error_code"] != "INVALID_UTF8" {
				t.Errorf("error_code = %v", decoded["error_code"])
			}
		})
	}
}

func TestLoggerLogErrorNil(t *testing.T) {
	logger, buf := newTestLogger(LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should write nothing")
	}
}

func TestLoggerIsLevelEnabled(t *testing.T) {
	logger, _ := newTestLogger(LevelWarn)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled")
	}
}

func TestLoggerSetLevel(t *testing.T) {
	logger, buf := newTestLogger(LevelError)

	logger.SetLevel(LevelDebug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("SetLevel should take effect immediately")
	}
	if logger.GetLevel() != LevelDebug {
		t.Errorf("GetLevel() = %v", logger.GetLevel())
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	buf := &bytes.Buffer{}
	SetDefault(NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: buf}))

	Info("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Error("package-level Info should use the default logger")
	}
}

func TestLoggerCaller(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:        LevelInfo,
		Format:       FormatJSON,
		Output:       buf,
		EnableCaller: true,
	})

	logger.Info("with caller")

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	caller, ok := decoded["caller"].(string)
	if !ok || !strings.Contains(caller, "logger_test.go") {
		t.Errorf("caller = %v; want this test file", decoded["caller"])
	}
}

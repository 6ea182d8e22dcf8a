// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context fields, level filtering
//              and coded error logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	clerror "github.com/msto63/cpplite/pkg/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: &buf}), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, m)
	}
	return entries
}

func TestNew(t *testing.T) {
	logger := New()
	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown")
	logger.Warn("also shown")

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["message"] != "shown" {
		t.Errorf("first message = %v, want shown", entries[0]["message"])
	}
}

func TestWithFieldIsImmutable(t *testing.T) {
	base, buf := newBufferLogger(LevelDebug)
	derived := base.WithField("component", "parser")

	if derived == base {
		t.Fatal("WithField() should return a new logger")
	}

	base.Info("from base")
	derived.Info("from derived", Fields{"line": 3})

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if _, ok := entries[0]["component"]; ok {
		t.Error("base logger should not have the derived field")
	}
	if entries[1]["component"] != "parser" {
		t.Errorf("component = %v, want parser", entries[1]["component"])
	}
	if entries[1]["line"] != float64(3) {
		t.Errorf("line = %v, want 3", entries[1]["line"])
	}
}

func TestWithCorrelationIDAndName(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	logger.WithName("engine").WithCorrelationID("abc-123").Info("parsed")

	entries := decodeLines(t, buf)
	if entries[0]["logger"] != "engine" {
		t.Errorf("logger = %v, want engine", entries[0]["logger"])
	}
	if entries[0]["correlation_id"] != "abc-123" {
		t.Errorf("correlation_id = %v, want abc-123", entries[0]["correlation_id"])
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "syntax error is low severity",
			err:       clerror.New("bad").WithCode(clerror.CodeLiteSyntax).WithDetail("file", "a.cpp"),
			wantLevel: "info",
			wantCode:  "LITE_SYNTAX",
		},
		{
			name:      "config error is high severity",
			err:       clerror.New("bad").WithCode(clerror.CodeInvalidConfig),
			wantLevel: "error",
			wantCode:  "INVALID_CONFIG",
		},
		{
			name:      "plain error",
			err:       errors.New("plain"),
			wantLevel: "error",
			wantCode:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)
			logger.LogError(tt.err)

			entries := decodeLines(t, buf)
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			if entries[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entries[0]["level"], tt.wantLevel)
			}
			if entries[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", entries[0]["error_code"], tt.wantCode)
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should not enable any level")
	}
	logger.Error("dropped")
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newBufferLogger(LevelInfo)
	SetDefault(logger)
	Info("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger not used: %q", buf.String())
	}

	SetDefault(nil)
	if GetDefault() != logger {
		t.Error("SetDefault(nil) should be ignored")
	}
}

// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test suite

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func testEntry() *Entry {
	entry := NewEntry(LevelInfo, "parse finished")
	entry.Timestamp = time.Date(2026, 10, 14, 12, 30, 0, 0, time.UTC)
	entry.Logger = "cpplite"
	entry.Fields["tokens"] = 12
	entry.Fields["file"] = "prog.cpp"
	return entry
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := testEntry()
	entry.Error = errors.New("boom")

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	checks := map[string]interface{}{
		"level":   "info",
		"message": "parse finished",
		"logger":  "cpplite",
		"file":    "prog.cpp",
		"tokens":  float64(12),
		"error":   "boom",
	}
	for k, want := range checks {
		if decoded[k] != want {
			t.Errorf("%s = %v, want %v", k, decoded[k], want)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[INF] {cpplite} parse finished [file=prog.cpp tokens=12]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true

	out, _ := f.Format(testEntry())
	if !strings.HasPrefix(string(out), LevelInfo.Color()) {
		t.Errorf("console output should start with the level color: %q", out)
	}

	f.DisableColors = true
	plain, _ := f.Format(testEntry())
	if strings.Contains(string(plain), "\033[") {
		t.Errorf("colors should be disabled: %q", plain)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	out, err := NewLogfmtFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `timestamp=2026-10-14T12:30:00Z level=info message="parse finished" logger=cpplite file="prog.cpp" tokens=12` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

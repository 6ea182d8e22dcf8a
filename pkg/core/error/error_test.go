// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and metadata.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeSyntaxError struct{ expected string }

func (f *fakeSyntaxError) Error() string { return "expecting " + f.expected }

func TestNew(t *testing.T) {
	err := New("test error message")

	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("root"),
			message: "reading source",
			wantMsg: "reading source: root",
		},
		{
			name:    "wrap coded error",
			err:     New("bad token").WithCode(CodeLiteSyntax),
			message: "parse failed",
			wantMsg: "parse failed: bad token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapInheritsCodeAndDetails(t *testing.T) {
	inner := New("bad token").
		WithCode(CodeLiteSyntax).
		WithDetail("line", 3)

	outer := Wrap(inner, "parse failed")

	if outer.Code() != CodeLiteSyntax {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeLiteSyntax)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
	if v, ok := outer.Detail("line"); !ok || v != 3 {
		t.Errorf("Detail(line) = %v, %v; want 3, true", v, ok)
	}
}

func TestTypedCauseSurvivesWrapping(t *testing.T) {
	cause := &fakeSyntaxError{expected: "Semicolon"}
	err := Wrap(fmt.Errorf("statement: %w", cause), "parse failed").
		WithCode(CodeLiteSyntax)

	var target *fakeSyntaxError
	if !errors.As(err, &target) {
		t.Fatal("errors.As should find the typed cause")
	}
	if target.expected != "Semicolon" {
		t.Errorf("expected = %q, want Semicolon", target.expected)
	}
	if err.RootCause() != cause {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), cause)
	}
}

func TestWithCodeSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeLiteSyntax, SeverityLow},
		{CodeLiteLexical, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeLiteSyntax)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: got %v", explicit.Severity())
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	coded := New("bad").WithCode(CodeLiteLexical)
	chained := fmt.Errorf("outer: %w", coded)

	if !HasCode(chained, CodeLiteLexical) {
		t.Error("HasCode should look through fmt wrapping")
	}
	if HasCode(chained, CodeLiteSyntax) {
		t.Error("HasCode reported a code that is not in the chain")
	}
	if GetCode(chained) != CodeLiteLexical {
		t.Errorf("GetCode() = %v, want %v", GetCode(chained), CodeLiteLexical)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode on a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity on a plain error should be SeverityMedium")
	}
}

func TestCodeClassification(t *testing.T) {
	if !CodeLiteSyntax.IsFrontEnd() || CodeConfigError.IsFrontEnd() {
		t.Error("IsFrontEnd classification wrong")
	}
	if !CodeInvalidConfig.IsConfig() || CodeLiteSyntax.IsConfig() {
		t.Error("IsConfig classification wrong")
	}
}

func TestStringAndJSON(t *testing.T) {
	err := Wrap(errors.New("root"), "parse failed").
		WithCode(CodeLiteSyntax).
		WithOperation("lite.ParseFile").
		WithDetail("file", "a.cpp").
		WithDetail("column", 7)

	s := err.String()
	for _, want := range []string{"Code: LITE_SYNTAX", "Operation: lite.ParseFile", "Details: {column=7, file=a.cpp}", "Cause: root"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON failed: %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}
	if decoded["code"] != "LITE_SYNTAX" {
		t.Errorf("code = %v, want LITE_SYNTAX", decoded["code"])
	}
	if decoded["cause"] != "root" {
		t.Errorf("cause = %v, want root", decoded["cause"])
	}
}

// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures across the
//              cpplite toolchain (front end, configuration, input handling).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Language front end
	CodeLiteLexical    Code = "LITE_LEXICAL"
	CodeLiteSyntax     Code = "LITE_SYNTAX"
	CodeLiteValidation Code = "LITE_VALIDATION"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsFrontEnd reports whether the code belongs to the language front end
func (c Code) IsFrontEnd() bool {
	switch c {
	case CodeLiteLexical, CodeLiteSyntax, CodeLiteValidation:
		return true
	default:
		return false
	}
}

// IsConfig reports whether the code describes a configuration problem
func (c Code) IsConfig() bool {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

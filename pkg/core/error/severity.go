// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and the default severity
//              associated with each error code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers problems in user input, e.g. a syntax error in a source file
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific classification
	SeverityMedium

	// SeverityHigh covers environment problems such as unreadable configuration
	SeverityHigh

	// SeverityCritical covers internal faults of the toolchain itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeInvalidFormat,
		CodeInvalidLength, CodeLiteLexical, CodeLiteSyntax, CodeLiteValidation:
		return SeverityLow

	default:
		return SeverityMedium
	}
}

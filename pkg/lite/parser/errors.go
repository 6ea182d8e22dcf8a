// File: errors.go
// Title: C++Lite Syntax Error
// Description: The single error kind produced by the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial syntax error type

package parser

import (
	"fmt"

	"github.com/msto63/cpplite/pkg/lite/token"
)

// SyntaxError reports the first token that did not fit the grammar
type SyntaxError struct {
	Expected string      // what the grammar required, e.g. "Semicolon"
	Found    token.Token // the lookahead token at the failure point
	Err      error       // underlying literal conversion failure, if any
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error: expecting: %s; saw: %s", e.Expected, e.Found)
}

// Unwrap exposes a literal conversion failure
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Line returns the source line of the offending token
func (e *SyntaxError) Line() int {
	return e.Found.Line
}

// Column returns the source column of the offending token
func (e *SyntaxError) Column() int {
	return e.Found.Column
}

// ============================================================================
// cpplite - C++Lite Front End
// ============================================================================
//
// Package:     astviewer
// Description: Document and message types of the AST viewer
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package astviewer

import (
	"github.com/msto63/cpplite/pkg/lite/ast"
	"github.com/msto63/cpplite/pkg/lite/token"
)

// Document is one parsed source shown by the viewer
type Document struct {
	Name    string
	Program *ast.Program
	Tokens  []token.Token
}

// reloadedMsg is sent when the source has been parsed again
type reloadedMsg struct {
	doc Document
	err error
}

// File: doc.go
// Title: C++Lite Abstract Syntax Tree
// Description: Package documentation for the C++Lite AST node model.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial package documentation

// Package ast defines the abstract syntax tree produced by the C++Lite parser.
//
// A Program owns one DeclarationList and one Block. Statements and
// expressions are closed sum types:
//
//	Statement  = *Skip | *Block | *Assignment | *Conditional | *Loop
//	Expression = *Variable | *Literal | *Unary | *Binary
//	Value      = IntValue | FloatValue | CharValue | BoolValue
//
// The sets are closed through unexported marker methods, so only this package
// can add variants. Consumers either switch over the concrete types or
// implement Visitor, which the compiler checks for completeness.
//
// The parser never validates; later stages call Validate on a node (first
// problem) or ValidateAST (all problems). Duplicate variable names in a
// DeclarationList are reported there.
//
// Three renderers are provided:
//
//	node.String()   compact s-expression, e.g. (- (- 8 3) 2)
//	ast.Display(n)  indented tree, one node per line
//	ast.ToMap(n)    generic maps for JSON or YAML encoding
package ast

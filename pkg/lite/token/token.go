// File: token.go
// Title: C++Lite Token Definitions
// Description: Defines the closed set of token categories of the C++Lite
//              language and the Token value exchanged between the lexer and
//              the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial token categories

// Package token defines the lexical categories of C++Lite.
package token

import "fmt"

// Category represents the lexical category of a token
type Category int

const (
	// Special tokens
	Eof Category = iota
	Illegal

	// Keywords
	Bool
	Char
	Else
	False
	Float
	If
	Int
	Main
	True
	While

	// Delimiters
	LeftBrace    // {
	RightBrace   // }
	LeftBracket  // [
	RightBracket // ]
	LeftParen    // (
	RightParen   // )
	Semicolon    // ;
	Comma        // ,

	// Operators
	Assign       // =
	Equals       // ==
	Less         // <
	LessEqual    // <=
	Greater      // >
	GreaterEqual // >=
	Not          // !
	NotEqual     // !=
	Plus         // +
	Minus        // -
	Multiply     // *
	Divide       // /
	And          // &&
	Or           // ||

	// Identifiers and literals
	Identifier
	IntLiteral
	FloatLiteral
	CharLiteral

	numCategories
)

var categoryNames = [numCategories]string{
	Eof:          "Eof",
	Illegal:      "Illegal",
	Bool:         "Bool",
	Char:         "Char",
	Else:         "Else",
	False:        "False",
	Float:        "Float",
	If:           "If",
	Int:          "Int",
	Main:         "Main",
	True:         "True",
	While:        "While",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	Semicolon:    "Semicolon",
	Comma:        "Comma",
	Assign:       "Assign",
	Equals:       "Equals",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Not:          "Not",
	NotEqual:     "NotEqual",
	Plus:         "Plus",
	Minus:        "Minus",
	Multiply:     "Multiply",
	Divide:       "Divide",
	And:          "And",
	Or:           "Or",
	Identifier:   "Identifier",
	IntLiteral:   "IntLiteral",
	FloatLiteral: "FloatLiteral",
	CharLiteral:  "CharLiteral",
}

// String returns the category name used in diagnostics
func (c Category) String() string {
	if c >= 0 && c < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// IsType reports whether the category is one of the four type keywords
func (c Category) IsType() bool {
	switch c {
	case Int, Bool, Float, Char:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the category starts a literal value
func (c Category) IsLiteral() bool {
	switch c {
	case IntLiteral, FloatLiteral, CharLiteral, True, False:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the category is a reserved word
func (c Category) IsKeyword() bool {
	return c >= Bool && c <= While
}

// Categories returns every category in declaration order
func Categories() []Category {
	all := make([]Category, 0, numCategories)
	for c := Eof; c < numCategories; c++ {
		all = append(all, c)
	}
	return all
}

var keywords = map[string]Category{
	"bool":  Bool,
	"char":  Char,
	"else":  Else,
	"false": False,
	"float": Float,
	"if":    If,
	"int":   Int,
	"main":  Main,
	"true":  True,
	"while": While,
}

// Lookup returns the keyword category for ident, or Identifier
func Lookup(ident string) Category {
	if c, ok := keywords[ident]; ok {
		return c
	}
	return Identifier
}

// Token is a lexeme with its category and source position
type Token struct {
	Category Category
	Value    string // Literal text; a char literal carries its payload without quotes
	Line     int    // 1-based
	Column   int    // 1-based, in bytes
	Offset   int    // 0-based byte offset
}

// New creates a token without position information
func New(c Category, value string) Token {
	return Token{Category: c, Value: value}
}

// String renders the token the way diagnostics show it, e.g. Semicolon(;)
func (t Token) String() string {
	if t.Category == Eof {
		return "Eof"
	}
	return fmt.Sprintf("%s(%s)", t.Category, t.Value)
}

// Is reports whether the token has the given category
func (t Token) Is(c Category) bool {
	return t.Category == c
}

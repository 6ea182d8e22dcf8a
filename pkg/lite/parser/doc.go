// File: doc.go
// Title: C++Lite Parser Package Documentation
// Description: Recursive descent parser turning a C++Lite token stream into
//              an abstract syntax tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial parser implementation

/*
Package parser implements a recursive descent parser for C++Lite.

The parser pulls tokens one at a time from a TokenSource and keeps a single
token of lookahead. Every grammar rule is a method returning the node it
built and an error; the first error ends the parse and is returned to the
caller unchanged. There is no error recovery.

Grammar:

	Program        = int main ( ) { Declarations Statements }
	Declarations   = { Type Identifier { , Identifier } ; }
	Statement      = ; | Block | Assignment | IfStatement | WhileStatement
	Block          = { Statements }
	Assignment     = Identifier = Expression ;
	IfStatement    = if ( Expression ) Statement [ else Statement ]
	WhileStatement = while ( Expression ) Statement
	Expression     = Conjunction { || Conjunction }
	Conjunction    = Equality { && Equality }
	Equality       = Relation [ EquOp Relation ]
	Relation       = Addition [ RelOp Addition ]
	Addition       = Term { AddOp Term }
	Term           = Factor { MulOp Factor }
	Factor         = [ UnaryOp ] Primary
	Primary        = Identifier | Literal | ( Expression ) | Type ( Expression )

Equality and relational operators are not associative: a < b < c is a
syntax error. An else always binds to the nearest if.

Usage:

	prog, err := parser.New(lexer.New(src), parser.Options{}).ParseProgram()
	if err != nil {
		var serr *parser.SyntaxError
		if errors.As(err, &serr) {
			fmt.Println(serr) // Syntax error: expecting: Semicolon; saw: Identifier(y)
		}
	}
*/
package parser

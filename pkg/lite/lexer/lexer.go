// File: lexer.go
// Title: C++Lite Lexical Analyzer
// Description: Converts C++Lite source text into a pull-based stream of
//              tokens with line and column information. Characters that do
//              not start a token are reported as Illegal tokens so the parser
//              can turn them into a syntax error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial lexer implementation

// Package lexer tokenizes C++Lite source text.
package lexer

import (
	"fmt"
	"unicode/utf8"

	clerror "github.com/msto63/cpplite/pkg/core/error"
	"github.com/msto63/cpplite/pkg/lite/token"
)

// Lexer performs lexical analysis of C++Lite source
type Lexer struct {
	input  string
	pos    int // offset of ch
	ch     byte
	line   int
	column int
}

// New creates a lexer over the given source text
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
	if len(input) > 0 {
		l.ch = input[0]
	}
	return l
}

// Next returns the next token. Once the input is exhausted every call
// returns an Eof token.
func (l *Lexer) Next() token.Token {
	l.skipWhitespaceAndComments()

	start := l.mark()

	if l.pos >= len(l.input) {
		return start.token(token.Eof, "")
	}

	switch ch := l.ch; {
	case isLetter(ch):
		ident := l.readWhile(isIdentChar)
		return start.token(token.Lookup(ident), ident)

	case isDigit(ch):
		return l.readNumber(start)

	case ch == '\'':
		return l.readChar(start)
	}

	c, text := l.readOperator()
	return start.token(c, text)
}

// Tokenize collects all tokens of src up to and including Eof.
// It fails on the first Illegal token.
func Tokenize(src string) ([]token.Token, error) {
	l := New(src)
	var tokens []token.Token

	for {
		tok := l.Next()
		tokens = append(tokens, tok)

		switch tok.Category {
		case token.Eof:
			return tokens, nil
		case token.Illegal:
			return tokens, clerror.New(fmt.Sprintf("illegal input %q at line %d, column %d", tok.Value, tok.Line, tok.Column)).
				WithCode(clerror.CodeLiteLexical).
				WithOperation("lexer.Tokenize").
				WithDetail("line", tok.Line).
				WithDetail("column", tok.Column)
		}
	}
}

type position struct {
	offset, line, column int
}

func (p position) token(c token.Category, value string) token.Token {
	return token.Token{Category: c, Value: value, Line: p.line, Column: p.column, Offset: p.offset}
}

func (l *Lexer) mark() position {
	return position{offset: l.pos, line: l.line, column: l.column}
}

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
	if l.pos < len(l.input) {
		l.ch = l.input[l.pos]
	} else {
		l.ch = 0
	}
}

func (l *Lexer) peek() byte {
	if l.pos+1 < len(l.input) {
		return l.input[l.pos+1]
	}
	return 0
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.input) {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' || l.ch == '\f':
			l.advance()
		case l.ch == '/' && l.peek() == '/':
			for l.pos < len(l.input) && l.ch != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.pos
	for l.pos < len(l.input) && pred(l.ch) {
		l.advance()
	}
	return l.input[start:l.pos]
}

// readNumber reads digits, optionally followed by '.' and digits
func (l *Lexer) readNumber(start position) token.Token {
	l.readWhile(isDigit)

	if l.ch == '.' && isDigit(l.peek()) {
		l.advance()
		l.readWhile(isDigit)
		return start.token(token.FloatLiteral, l.input[start.offset:l.pos])
	}
	return start.token(token.IntLiteral, l.input[start.offset:l.pos])
}

var escapes = map[byte]string{
	'n':  "\n",
	't':  "\t",
	'r':  "\r",
	'0':  "\x00",
	'\\': "\\",
	'\'': "'",
}

// readChar reads a character literal; the token value is the decoded payload
func (l *Lexer) readChar(start position) token.Token {
	l.advance() // opening quote

	var payload string
	switch {
	case l.pos >= len(l.input) || l.ch == '\n' || l.ch == '\'':
		return l.illegalChar(start)

	case l.ch == '\\':
		l.advance()
		decoded, ok := escapes[l.ch]
		if !ok || l.pos >= len(l.input) {
			return l.illegalChar(start)
		}
		payload = decoded
		l.advance()

	default:
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if r == utf8.RuneError {
			return l.illegalChar(start)
		}
		payload = l.input[l.pos : l.pos+size]
		for i := 0; i < size; i++ {
			l.advance()
		}
	}

	if l.ch != '\'' || l.pos >= len(l.input) {
		return l.illegalChar(start)
	}
	l.advance() // closing quote

	return start.token(token.CharLiteral, payload)
}

// illegalChar consumes the rest of a malformed char literal on the current line
func (l *Lexer) illegalChar(start position) token.Token {
	for l.pos < len(l.input) && l.ch != '\n' && l.ch != '\'' {
		l.advance()
	}
	if l.ch == '\'' {
		l.advance()
	}
	return start.token(token.Illegal, l.input[start.offset:l.pos])
}

var singleOps = map[byte]token.Category{
	'{': token.LeftBrace,
	'}': token.RightBrace,
	'[': token.LeftBracket,
	']': token.RightBracket,
	'(': token.LeftParen,
	')': token.RightParen,
	';': token.Semicolon,
	',': token.Comma,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Multiply,
	'/': token.Divide,
}

// readOperator reads a delimiter or operator, preferring two-character forms
func (l *Lexer) readOperator() (token.Category, string) {
	ch, next := l.ch, l.peek()

	two := func(c token.Category) (token.Category, string) {
		l.advance()
		l.advance()
		return c, string([]byte{ch, next})
	}
	one := func(c token.Category) (token.Category, string) {
		l.advance()
		return c, string(ch)
	}

	switch ch {
	case '=':
		if next == '=' {
			return two(token.Equals)
		}
		return one(token.Assign)
	case '!':
		if next == '=' {
			return two(token.NotEqual)
		}
		return one(token.Not)
	case '<':
		if next == '=' {
			return two(token.LessEqual)
		}
		return one(token.Less)
	case '>':
		if next == '=' {
			return two(token.GreaterEqual)
		}
		return one(token.Greater)
	case '&':
		if next == '&' {
			return two(token.And)
		}
	case '|':
		if next == '|' {
			return two(token.Or)
		}
	}

	if c, ok := singleOps[ch]; ok {
		return one(c)
	}

	// Report one whole rune so the diagnostic shows what the user typed
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	text := l.input[l.pos : l.pos+size]
	for i := 0; i < size; i++ {
		l.advance()
	}
	return token.Illegal, text
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

// File: parser.go
// Title: C++Lite Recursive Descent Parser
// Description: Implements the parsing phase of the C++Lite front end. Pulls
//              tokens from a TokenSource with one token of lookahead and
//              builds the abstract syntax tree, one method per grammar rule.
//              The first syntax error ends the parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial parser implementation

package parser

import (
	"strconv"
	"unicode/utf8"

	cllog "github.com/msto63/cpplite/pkg/core/log"
	"github.com/msto63/cpplite/pkg/lite/ast"
	"github.com/msto63/cpplite/pkg/lite/lexer"
	"github.com/msto63/cpplite/pkg/lite/token"
)

// TokenSource produces tokens on demand. After the end of input it must
// keep returning Eof tokens.
type TokenSource interface {
	Next() token.Token
}

// Parser implements recursive descent parsing for C++Lite
type Parser struct {
	src      TokenSource
	current  token.Token // lookahead
	consumed int
	logger   *cllog.Logger
}

// Options configures parser behavior
type Options struct {
	Logger *cllog.Logger
}

// New creates a parser over src and loads the first lookahead token
func New(src TokenSource, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = cllog.GetDefault()
	}

	p := &Parser{
		src:    src,
		logger: opts.Logger.WithField("component", "parser"),
	}
	p.current = src.Next()
	return p
}

// ParseString parses a complete program from source text
func ParseString(src string) (*ast.Program, error) {
	return New(lexer.New(src), Options{}).ParseProgram()
}

// ParseProgram parses int main ( ) { Declarations Statements } followed
// by the end of input
func (p *Parser) ParseProgram() (*ast.Program, error) {
	p.logger.Debug("Starting C++Lite parsing", cllog.Fields{
		"line":   p.current.Line,
		"column": p.current.Column,
	})

	prog, err := p.parseProgram()
	if err != nil {
		p.logger.Debug("C++Lite parsing failed", cllog.Fields{
			"tokens": p.consumed,
			"error":  err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("C++Lite parsing completed successfully", cllog.Fields{
		"tokens":       p.consumed,
		"declarations": prog.Declarations.Len(),
		"statements":   len(prog.Body.Statements),
	})

	return prog, nil
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	start, err := p.match(token.Int)
	if err != nil {
		return nil, err
	}
	for _, c := range []token.Category{token.Main, token.LeftParen, token.RightParen} {
		if _, err := p.match(c); err != nil {
			return nil, err
		}
	}

	brace, err := p.match(token.LeftBrace)
	if err != nil {
		return nil, err
	}

	decls, err := p.parseDeclarations()
	if err != nil {
		return nil, err
	}

	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if _, err := p.match(token.RightBrace); err != nil {
		return nil, err
	}
	if !p.current.Is(token.Eof) {
		return nil, p.errorf(token.Eof.String())
	}

	return &ast.Program{
		Declarations: decls,
		Body:         &ast.Block{Statements: stmts, Pos: position(brace)},
		Pos:          position(start),
	}, nil
}

// Token handling

// match consumes the lookahead if it has category c
func (p *Parser) match(c token.Category) (token.Token, error) {
	if !p.current.Is(c) {
		return token.Token{}, p.errorf(c.String())
	}
	return p.advance(), nil
}

// advance consumes the lookahead and returns it
func (p *Parser) advance() token.Token {
	tok := p.current
	p.current = p.src.Next()
	p.consumed++
	return tok
}

func (p *Parser) errorf(expected string) *SyntaxError {
	return &SyntaxError{Expected: expected, Found: p.current}
}

func position(t token.Token) ast.Position {
	return ast.Position{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

// Declarations

// parseDeclarations reads declarations while the lookahead is a type keyword
func (p *Parser) parseDeclarations() (*ast.DeclarationList, error) {
	list := &ast.DeclarationList{Pos: position(p.current)}

	for p.current.Category.IsType() {
		decls, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		list.Declarations = append(list.Declarations, decls...)
	}

	return list, nil
}

// parseDeclaration parses Type Identifier { , Identifier } ;
func (p *Parser) parseDeclaration() ([]*ast.Declaration, error) {
	typ := typeOf(p.advance().Category)

	var decls []*ast.Declaration
	for {
		name, err := p.match(token.Identifier)
		if err != nil {
			return nil, err
		}
		decls = append(decls, &ast.Declaration{Name: name.Value, Type: typ, Pos: position(name)})

		if !p.current.Is(token.Comma) {
			break
		}
		p.advance()
	}

	if _, err := p.match(token.Semicolon); err != nil {
		return nil, err
	}
	return decls, nil
}

func typeOf(c token.Category) ast.Type {
	switch c {
	case token.Int:
		return ast.TypeInt
	case token.Bool:
		return ast.TypeBool
	case token.Float:
		return ast.TypeFloat
	case token.Char:
		return ast.TypeChar
	default:
		return ast.TypeInvalid
	}
}

// Statements

const statementStart = "Semicolon | LeftBrace | Identifier | If | While"

func startsStatement(c token.Category) bool {
	switch c {
	case token.Semicolon, token.LeftBrace, token.Identifier, token.If, token.While:
		return true
	default:
		return false
	}
}

// parseStatements reads statements while the lookahead can start one
func (p *Parser) parseStatements() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for startsStatement(p.current.Category) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current.Category {
	case token.Semicolon:
		return &ast.Skip{Pos: position(p.advance())}, nil
	case token.LeftBrace:
		return p.parseBlock()
	case token.Identifier:
		return p.parseAssignment()
	case token.If:
		return p.parseIfStatement()
	case token.While:
		return p.parseWhileStatement()
	default:
		return nil, p.errorf(statementStart)
	}
}

// parseBlock parses { Statements }; the block may be empty
func (p *Parser) parseBlock() (*ast.Block, error) {
	brace, err := p.match(token.LeftBrace)
	if err != nil {
		return nil, err
	}

	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if _, err := p.match(token.RightBrace); err != nil {
		return nil, err
	}
	return &ast.Block{Statements: stmts, Pos: position(brace)}, nil
}

// parseAssignment parses Identifier = Expression ;
func (p *Parser) parseAssignment() (*ast.Assignment, error) {
	name, err := p.match(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.Assign); err != nil {
		return nil, err
	}

	source, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.match(token.Semicolon); err != nil {
		return nil, err
	}

	target := &ast.Variable{Name: name.Value, Pos: position(name)}
	return &ast.Assignment{Target: target, Source: source, Pos: target.Pos}, nil
}

// parseCondition parses ( Expression ) after if and while
func (p *Parser) parseCondition() (ast.Expression, error) {
	if _, err := p.match(token.LeftParen); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.RightParen); err != nil {
		return nil, err
	}
	return test, nil
}

// parseIfStatement parses if ( Expression ) Statement [ else Statement ].
// An else is consumed by the innermost if that can take it.
func (p *Parser) parseIfStatement() (*ast.Conditional, error) {
	kw, err := p.match(token.If)
	if err != nil {
		return nil, err
	}

	test, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	cond := &ast.Conditional{Test: test, Then: then, Pos: position(kw)}
	if p.current.Is(token.Else) {
		p.advance()
		if cond.Else, err = p.parseStatement(); err != nil {
			return nil, err
		}
	}
	return cond, nil
}

// parseWhileStatement parses while ( Expression ) Statement
func (p *Parser) parseWhileStatement() (*ast.Loop, error) {
	kw, err := p.match(token.While)
	if err != nil {
		return nil, err
	}

	test, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.Loop{Test: test, Body: body, Pos: position(kw)}, nil
}

// Expressions

var binaryOperators = map[token.Category]ast.Operator{
	token.Or:           ast.OpOr,
	token.And:          ast.OpAnd,
	token.Equals:       ast.OpEqual,
	token.NotEqual:     ast.OpNotEqual,
	token.Less:         ast.OpLess,
	token.LessEqual:    ast.OpLessEqual,
	token.Greater:      ast.OpGreater,
	token.GreaterEqual: ast.OpGreaterEqual,
	token.Plus:         ast.OpPlus,
	token.Minus:        ast.OpMinus,
	token.Multiply:     ast.OpTimes,
	token.Divide:       ast.OpDivide,
}

// parseLevel parses operand { op operand } folding to the left, or
// operand [ op operand ] when the level is not associative
func (p *Parser) parseLevel(operand func() (ast.Expression, error), associative bool, ops ...token.Category) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for accepts(ops, p.current.Category) {
		op := p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: binaryOperators[op.Category], Left: left, Right: right, Pos: position(op)}

		if !associative {
			break
		}
	}
	return left, nil
}

func accepts(ops []token.Category, c token.Category) bool {
	for _, op := range ops {
		if op == c {
			return true
		}
	}
	return false
}

// parseExpression parses Conjunction { || Conjunction }
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseLevel(p.parseConjunction, true, token.Or)
}

// parseConjunction parses Equality { && Equality }
func (p *Parser) parseConjunction() (ast.Expression, error) {
	return p.parseLevel(p.parseEquality, true, token.And)
}

// parseEquality parses Relation [ EquOp Relation ]
func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.parseLevel(p.parseRelation, false, token.Equals, token.NotEqual)
}

// parseRelation parses Addition [ RelOp Addition ]
func (p *Parser) parseRelation() (ast.Expression, error) {
	return p.parseLevel(p.parseAddition, false, token.Less, token.LessEqual, token.Greater, token.GreaterEqual)
}

// parseAddition parses Term { AddOp Term }
func (p *Parser) parseAddition() (ast.Expression, error) {
	return p.parseLevel(p.parseTerm, true, token.Plus, token.Minus)
}

// parseTerm parses Factor { MulOp Factor }
func (p *Parser) parseTerm() (ast.Expression, error) {
	return p.parseLevel(p.parseFactor, true, token.Multiply, token.Divide)
}

// parseFactor parses [ ! | - ] Primary. Only one prefix operator is allowed.
func (p *Parser) parseFactor() (ast.Expression, error) {
	var op ast.Operator
	switch p.current.Category {
	case token.Not:
		op = ast.OpNot
	case token.Minus:
		op = ast.OpMinus
	default:
		return p.parsePrimary()
	}

	tok := p.advance()
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op, Operand: operand, Pos: position(tok)}, nil
}

const primaryStart = "Identifier | Literal | LeftParen | Type"

// parsePrimary parses Identifier | Literal | ( Expression ) | Type ( Expression )
func (p *Parser) parsePrimary() (ast.Expression, error) {
	c := p.current.Category

	switch {
	case c == token.Identifier:
		tok := p.advance()
		return &ast.Variable{Name: tok.Value, Pos: position(tok)}, nil

	case c.IsLiteral():
		return p.parseLiteral()

	case c == token.LeftParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(token.RightParen); err != nil {
			return nil, err
		}
		return expr, nil

	case c.IsType():
		kw := p.advance()
		if _, err := p.match(token.LeftParen); err != nil {
			return nil, err
		}
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(token.RightParen); err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.CastOperator(typeOf(kw.Category)), Operand: operand, Pos: position(kw)}, nil
	}

	return nil, p.errorf(primaryStart)
}

// parseLiteral converts the lookahead literal into a Value
func (p *Parser) parseLiteral() (*ast.Literal, error) {
	tok := p.current
	var value ast.Value

	switch tok.Category {
	case token.IntLiteral:
		n, err := strconv.ParseInt(tok.Value, 10, 32)
		if err != nil {
			return nil, &SyntaxError{Expected: "IntLiteral in 32-bit range", Found: tok, Err: err}
		}
		value = ast.IntValue{Value: int32(n)}

	case token.FloatLiteral:
		f, err := strconv.ParseFloat(tok.Value, 32)
		if err != nil {
			return nil, &SyntaxError{Expected: "FloatLiteral in 32-bit range", Found: tok, Err: err}
		}
		value = ast.FloatValue{Value: float32(f)}

	case token.CharLiteral:
		r, size := utf8.DecodeRuneInString(tok.Value)
		if size == 0 || r == utf8.RuneError {
			return nil, &SyntaxError{Expected: "CharLiteral with one character", Found: tok}
		}
		value = ast.CharValue{Value: r}

	case token.True:
		value = ast.BoolValue{Value: true}

	case token.False:
		value = ast.BoolValue{Value: false}

	default:
		return nil, p.errorf("Literal")
	}

	p.advance()
	return &ast.Literal{Value: value, Pos: position(tok)}, nil
}

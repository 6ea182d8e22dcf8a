// File: nodes.go
// Title: C++Lite AST Node Definitions
// Description: Defines the program, declaration, statement and expression
//              nodes. Provides s-expression representations and structural
//              validation methods.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a compact s-expression of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate checks the node and its children, returning the first problem
	Validate() error
}

// Statement is one of *Skip, *Block, *Assignment, *Conditional, *Loop
type Statement interface {
	Node
	statementNode() // marker method
}

// Expression is one of *Variable, *Literal, *Unary, *Binary
type Expression interface {
	Node
	expressionNode() // marker method
}

// Program is the root of the tree: int main ( ) { Declarations Statements }
type Program struct {
	Declarations *DeclarationList
	Body         *Block
	Pos          Position
}

// DeclarationList holds declarations in source order
type DeclarationList struct {
	Declarations []*Declaration
	Pos          Position
}

// Declaration pairs a variable name with its declared type
type Declaration struct {
	Name string
	Type Type
	Pos  Position
}

// Skip is the empty statement ;
type Skip struct {
	Pos Position
}

// Block is a braced sequence of statements in execution order; it may be empty
type Block struct {
	Statements []Statement
	Pos        Position
}

// Assignment is Target = Source ;
type Assignment struct {
	Target *Variable
	Source Expression
	Pos    Position
}

// Conditional is if ( Test ) Then [ else Else ]; Else is nil when absent
type Conditional struct {
	Test Expression
	Then Statement
	Else Statement
	Pos  Position
}

// Loop is while ( Test ) Body
type Loop struct {
	Test Expression
	Body Statement
	Pos  Position
}

// Variable is a reference to a named variable
type Variable struct {
	Name string
	Pos  Position
}

// Literal embeds a constant Value
type Literal struct {
	Value Value
	Pos   Position
}

// Unary applies !, unary - or a type conversion to one operand
type Unary struct {
	Op      Operator
	Operand Expression
	Pos     Position
}

// Binary combines two operands
type Binary struct {
	Op    Operator
	Left  Expression
	Right Expression
	Pos   Position
}

// Lookup returns the declaration for name, or nil
func (dl *DeclarationList) Lookup(name string) *Declaration {
	for _, d := range dl.Declarations {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Len returns the number of declarations
func (dl *DeclarationList) Len() int {
	return len(dl.Declarations)
}

// HasElse reports whether the conditional has an else branch
func (c *Conditional) HasElse() bool {
	return c.Else != nil
}

// String implementations

func (p *Program) String() string {
	return fmt.Sprintf("(program %s %s)", nodeString(p.Declarations), nodeString(p.Body))
}

func (dl *DeclarationList) String() string {
	parts := make([]string, 0, len(dl.Declarations)+1)
	parts = append(parts, "decls")
	for _, d := range dl.Declarations {
		parts = append(parts, nodeString(d))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (d *Declaration) String() string {
	return fmt.Sprintf("(%s %s)", d.Type, d.Name)
}

func (s *Skip) String() string {
	return "(skip)"
}

func (b *Block) String() string {
	parts := make([]string, 0, len(b.Statements)+1)
	parts = append(parts, "block")
	for _, s := range b.Statements {
		parts = append(parts, nodeString(s))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (a *Assignment) String() string {
	return fmt.Sprintf("(= %s %s)", nodeString(a.Target), nodeString(a.Source))
}

func (c *Conditional) String() string {
	if c.Else == nil {
		return fmt.Sprintf("(if %s %s)", nodeString(c.Test), nodeString(c.Then))
	}
	return fmt.Sprintf("(if %s %s %s)", nodeString(c.Test), nodeString(c.Then), nodeString(c.Else))
}

func (l *Loop) String() string {
	return fmt.Sprintf("(while %s %s)", nodeString(l.Test), nodeString(l.Body))
}

func (v *Variable) String() string {
	return v.Name
}

func (l *Literal) String() string {
	if l.Value == nil {
		return "<nil>"
	}
	return l.Value.String()
}

func (u *Unary) String() string {
	return fmt.Sprintf("(%s %s)", u.Op, nodeString(u.Operand))
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Op, nodeString(b.Left), nodeString(b.Right))
}

// nodeString guards against nil children, including typed nil pointers
func nodeString(n Node) string {
	if isNil(n) {
		return "<nil>"
	}
	return n.String()
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *DeclarationList:
		return v == nil
	case *Declaration:
		return v == nil
	case *Block:
		return v == nil
	case *Variable:
		return v == nil
	}
	return false
}

// Accept implementations

func (p *Program) Accept(v Visitor) interface{}          { return v.VisitProgram(p) }
func (dl *DeclarationList) Accept(v Visitor) interface{} { return v.VisitDeclarationList(dl) }
func (d *Declaration) Accept(v Visitor) interface{}      { return v.VisitDeclaration(d) }
func (s *Skip) Accept(v Visitor) interface{}             { return v.VisitSkip(s) }
func (b *Block) Accept(v Visitor) interface{}            { return v.VisitBlock(b) }
func (a *Assignment) Accept(v Visitor) interface{}       { return v.VisitAssignment(a) }
func (c *Conditional) Accept(v Visitor) interface{}      { return v.VisitConditional(c) }
func (l *Loop) Accept(v Visitor) interface{}             { return v.VisitLoop(l) }
func (vr *Variable) Accept(v Visitor) interface{}        { return v.VisitVariable(vr) }
func (l *Literal) Accept(v Visitor) interface{}          { return v.VisitLiteral(l) }
func (u *Unary) Accept(v Visitor) interface{}            { return v.VisitUnary(u) }
func (b *Binary) Accept(v Visitor) interface{}           { return v.VisitBinary(b) }

// Position implementations

func (p *Program) Position() Position          { return p.Pos }
func (dl *DeclarationList) Position() Position { return dl.Pos }
func (d *Declaration) Position() Position      { return d.Pos }
func (s *Skip) Position() Position             { return s.Pos }
func (b *Block) Position() Position            { return b.Pos }
func (a *Assignment) Position() Position       { return a.Pos }
func (c *Conditional) Position() Position      { return c.Pos }
func (l *Loop) Position() Position             { return l.Pos }
func (v *Variable) Position() Position         { return v.Pos }
func (l *Literal) Position() Position          { return l.Pos }
func (u *Unary) Position() Position            { return u.Pos }
func (b *Binary) Position() Position           { return b.Pos }

// Validate implementations. Each node checks itself, then its children.

func (p *Program) Validate() error          { return validateTree(p) }
func (dl *DeclarationList) Validate() error { return validateTree(dl) }
func (d *Declaration) Validate() error      { return validateTree(d) }
func (s *Skip) Validate() error             { return nil }
func (b *Block) Validate() error            { return validateTree(b) }
func (a *Assignment) Validate() error       { return validateTree(a) }
func (c *Conditional) Validate() error      { return validateTree(c) }
func (l *Loop) Validate() error             { return validateTree(l) }
func (v *Variable) Validate() error         { return validateTree(v) }
func (l *Literal) Validate() error          { return validateTree(l) }
func (u *Unary) Validate() error            { return validateTree(u) }
func (b *Binary) Validate() error           { return validateTree(b) }

func validateTree(n Node) error {
	if err := checkNode(n); err != nil {
		return err
	}
	for _, child := range Children(n) {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// checkNode validates a single node without descending
func checkNode(n Node) error {
	switch n := n.(type) {
	case *Program:
		if n.Declarations == nil {
			return nodeError(n, "program: declarations are required")
		}
		if n.Body == nil {
			return nodeError(n, "program: body is required")
		}

	case *DeclarationList:
		seen := make(map[string]*Declaration, len(n.Declarations))
		for i, d := range n.Declarations {
			if d == nil {
				return nodeError(n, fmt.Sprintf("declarations: entry %d is nil", i))
			}
			if first, dup := seen[d.Name]; dup {
				return nodeError(d, fmt.Sprintf("duplicate declaration of %q (first declared at %s)", d.Name, first.Pos))
			}
			seen[d.Name] = d
		}

	case *Declaration:
		if !isIdentifier(n.Name) {
			return nodeError(n, fmt.Sprintf("declaration: invalid variable name %q", n.Name))
		}
		if !n.Type.IsValid() {
			return nodeError(n, fmt.Sprintf("declaration of %s: invalid type", n.Name))
		}

	case *Block:
		for i, s := range n.Statements {
			if s == nil {
				return nodeError(n, fmt.Sprintf("block: statement %d is nil", i))
			}
		}

	case *Assignment:
		if n.Target == nil {
			return nodeError(n, "assignment: target is required")
		}
		if n.Source == nil {
			return nodeError(n, "assignment: source is required")
		}

	case *Conditional:
		if n.Test == nil {
			return nodeError(n, "if: test is required")
		}
		if n.Then == nil {
			return nodeError(n, "if: then branch is required")
		}

	case *Loop:
		if n.Test == nil {
			return nodeError(n, "while: test is required")
		}
		if n.Body == nil {
			return nodeError(n, "while: body is required")
		}

	case *Variable:
		if !isIdentifier(n.Name) {
			return nodeError(n, fmt.Sprintf("variable: invalid name %q", n.Name))
		}

	case *Literal:
		if n.Value == nil {
			return nodeError(n, "literal: value is required")
		}

	case *Unary:
		if !n.Op.IsUnary() {
			return nodeError(n, fmt.Sprintf("unary: %s is not a unary operator", n.Op))
		}
		if n.Operand == nil {
			return nodeError(n, "unary: operand is required")
		}

	case *Binary:
		if !n.Op.IsBinary() {
			return nodeError(n, fmt.Sprintf("binary: %s is not a binary operator", n.Op))
		}
		if n.Left == nil {
			return nodeError(n, "binary: left operand is required")
		}
		if n.Right == nil {
			return nodeError(n, "binary: right operand is required")
		}
	}
	return nil
}

// ValidationError is a structural problem located in the tree
type ValidationError struct {
	Message string
	Pos     Position
}

func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

func nodeError(n Node, message string) error {
	return &ValidationError{Message: message, Pos: n.Position()}
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		letter := 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
		digit := '0' <= c && c <= '9'
		if !letter && !(digit && i > 0) {
			return false
		}
	}
	return true
}

// Marker methods

func (*Skip) statementNode()        {}
func (*Block) statementNode()       {}
func (*Assignment) statementNode()  {}
func (*Conditional) statementNode() {}
func (*Loop) statementNode()        {}

func (*Variable) expressionNode() {}
func (*Literal) expressionNode()  {}
func (*Unary) expressionNode()    {}
func (*Binary) expressionNode()   {}

// File: visitor.go
// Title: C++Lite AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              AST nodes, a generic child walker, and the validation and
//              collector visitors used by later stages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial visitor pattern implementation

package ast

// Visitor interface for traversing AST nodes using the visitor pattern.
// Every node kind has exactly one method, so an implementation that misses
// a variant does not compile.
type Visitor interface {
	VisitProgram(p *Program) interface{}
	VisitDeclarationList(dl *DeclarationList) interface{}
	VisitDeclaration(d *Declaration) interface{}

	// Statements
	VisitSkip(s *Skip) interface{}
	VisitBlock(b *Block) interface{}
	VisitAssignment(a *Assignment) interface{}
	VisitConditional(c *Conditional) interface{}
	VisitLoop(l *Loop) interface{}

	// Expressions
	VisitVariable(v *Variable) interface{}
	VisitLiteral(l *Literal) interface{}
	VisitUnary(u *Unary) interface{}
	VisitBinary(b *Binary) interface{}
}

// Children returns the direct, non-nil children of a node in source order
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if !isNil(c) {
			out = append(out, c)
		}
	}

	switch n := n.(type) {
	case *Program:
		if n.Declarations != nil {
			add(n.Declarations)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *DeclarationList:
		for _, d := range n.Declarations {
			if d != nil {
				add(d)
			}
		}
	case *Block:
		for _, s := range n.Statements {
			add(s)
		}
	case *Assignment:
		if n.Target != nil {
			add(n.Target)
		}
		add(n.Source)
	case *Conditional:
		add(n.Test)
		add(n.Then)
		add(n.Else)
	case *Loop:
		add(n.Test)
		add(n.Body)
	case *Unary:
		add(n.Operand)
	case *Binary:
		add(n.Left)
		add(n.Right)
	}
	return out
}

// Inspect traverses the tree depth-first in source order. If fn returns
// false the children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}

// Walk dispatches v on every child of n
func Walk(v Visitor, n Node) {
	for _, c := range Children(n) {
		c.Accept(v)
	}
}

// BaseVisitor visits nothing and returns nil. Embed it in visitors that
// only care about a few node kinds and drive the traversal with Inspect.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program) interface{}                 { return nil }
func (BaseVisitor) VisitDeclarationList(*DeclarationList) interface{} { return nil }
func (BaseVisitor) VisitDeclaration(*Declaration) interface{}         { return nil }
func (BaseVisitor) VisitSkip(*Skip) interface{}                       { return nil }
func (BaseVisitor) VisitBlock(*Block) interface{}                     { return nil }
func (BaseVisitor) VisitAssignment(*Assignment) interface{}           { return nil }
func (BaseVisitor) VisitConditional(*Conditional) interface{}         { return nil }
func (BaseVisitor) VisitLoop(*Loop) interface{}                       { return nil }
func (BaseVisitor) VisitVariable(*Variable) interface{}               { return nil }
func (BaseVisitor) VisitLiteral(*Literal) interface{}                 { return nil }
func (BaseVisitor) VisitUnary(*Unary) interface{}                     { return nil }
func (BaseVisitor) VisitBinary(*Binary) interface{}                   { return nil }

// ValidationVisitor collects every structural problem in a tree
type ValidationVisitor struct {
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = nil
}

func (vv *ValidationVisitor) visit(n Node) interface{} {
	if err := checkNode(n); err != nil {
		vv.errors = append(vv.errors, err)
	}
	Walk(vv, n)
	return nil
}

func (vv *ValidationVisitor) VisitProgram(p *Program) interface{}                  { return vv.visit(p) }
func (vv *ValidationVisitor) VisitDeclarationList(dl *DeclarationList) interface{} { return vv.visit(dl) }
func (vv *ValidationVisitor) VisitDeclaration(d *Declaration) interface{}          { return vv.visit(d) }
func (vv *ValidationVisitor) VisitSkip(s *Skip) interface{}                        { return vv.visit(s) }
func (vv *ValidationVisitor) VisitBlock(b *Block) interface{}                      { return vv.visit(b) }
func (vv *ValidationVisitor) VisitAssignment(a *Assignment) interface{}            { return vv.visit(a) }
func (vv *ValidationVisitor) VisitConditional(c *Conditional) interface{}          { return vv.visit(c) }
func (vv *ValidationVisitor) VisitLoop(l *Loop) interface{}                        { return vv.visit(l) }
func (vv *ValidationVisitor) VisitVariable(v *Variable) interface{}                { return vv.visit(v) }
func (vv *ValidationVisitor) VisitLiteral(l *Literal) interface{}                  { return vv.visit(l) }
func (vv *ValidationVisitor) VisitUnary(u *Unary) interface{}                      { return vv.visit(u) }
func (vv *ValidationVisitor) VisitBinary(b *Binary) interface{}                    { return vv.visit(b) }

// CollectorVisitor collects specific types of nodes
type CollectorVisitor struct {
	BaseVisitor
	Declarations []*Declaration
	Assignments  []*Assignment
	Variables    []*Variable
	Literals     []*Literal
	Operators    []Operator
	Statements   int
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	*cv = CollectorVisitor{}
}

func (cv *CollectorVisitor) VisitDeclaration(d *Declaration) interface{} {
	cv.Declarations = append(cv.Declarations, d)
	return nil
}

func (cv *CollectorVisitor) VisitSkip(*Skip) interface{} {
	cv.Statements++
	return nil
}

func (cv *CollectorVisitor) VisitBlock(*Block) interface{} {
	cv.Statements++
	return nil
}

func (cv *CollectorVisitor) VisitAssignment(a *Assignment) interface{} {
	cv.Statements++
	cv.Assignments = append(cv.Assignments, a)
	return nil
}

func (cv *CollectorVisitor) VisitConditional(*Conditional) interface{} {
	cv.Statements++
	return nil
}

func (cv *CollectorVisitor) VisitLoop(*Loop) interface{} {
	cv.Statements++
	return nil
}

func (cv *CollectorVisitor) VisitVariable(v *Variable) interface{} {
	cv.Variables = append(cv.Variables, v)
	return nil
}

func (cv *CollectorVisitor) VisitLiteral(l *Literal) interface{} {
	cv.Literals = append(cv.Literals, l)
	return nil
}

func (cv *CollectorVisitor) VisitUnary(u *Unary) interface{} {
	cv.Operators = append(cv.Operators, u.Op)
	return nil
}

func (cv *CollectorVisitor) VisitBinary(b *Binary) interface{} {
	cv.Operators = append(cv.Operators, b.Op)
	return nil
}

// Utility functions

// ValidateAST validates an entire AST and returns all problems found
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// CollectNodes collects the nodes of a tree in source order
func CollectNodes(node Node) *CollectorVisitor {
	collector := NewCollectorVisitor()
	Inspect(node, func(n Node) bool {
		n.Accept(collector)
		return true
	})
	return collector
}

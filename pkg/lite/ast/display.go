// File: display.go
// Title: C++Lite AST Renderers
// Description: Indented tree rendering of the abstract syntax and conversion
//              to generic maps for JSON and YAML output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial renderers

package ast

import (
	"fmt"
	"strings"
)

// DisplayVisitor renders a tree with one node per line, children indented
type DisplayVisitor struct {
	buffer strings.Builder
	indent int
	width  int
}

// NewDisplayVisitor creates a display visitor indenting by width spaces
func NewDisplayVisitor(width int) *DisplayVisitor {
	if width <= 0 {
		width = 2
	}
	return &DisplayVisitor{width: width}
}

// String returns the rendered output
func (dv *DisplayVisitor) String() string {
	return dv.buffer.String()
}

// Reset clears the buffer
func (dv *DisplayVisitor) Reset() {
	dv.buffer.Reset()
	dv.indent = 0
}

func (dv *DisplayVisitor) line(format string, args ...interface{}) {
	dv.buffer.WriteString(strings.Repeat(" ", dv.indent*dv.width))
	fmt.Fprintf(&dv.buffer, format, args...)
	dv.buffer.WriteByte('\n')
}

// nested renders the children of n one level deeper
func (dv *DisplayVisitor) nested(n Node) interface{} {
	dv.indent++
	Walk(dv, n)
	dv.indent--
	return nil
}

func (dv *DisplayVisitor) VisitProgram(p *Program) interface{} {
	dv.line("Program (abstract syntax):")
	return dv.nested(p)
}

func (dv *DisplayVisitor) VisitDeclarationList(dl *DeclarationList) interface{} {
	entries := make([]string, 0, len(dl.Declarations))
	for _, d := range dl.Declarations {
		if d != nil {
			entries = append(entries, fmt.Sprintf("<%s, %s>", d.Name, d.Type))
		}
	}
	dv.line("Declarations:")
	dv.indent++
	dv.line("Declarations = {%s}", strings.Join(entries, ", "))
	dv.indent--
	return nil
}

func (dv *DisplayVisitor) VisitDeclaration(d *Declaration) interface{} {
	dv.line("Declaration: <%s, %s>", d.Name, d.Type)
	return nil
}

func (dv *DisplayVisitor) VisitSkip(*Skip) interface{} {
	dv.line("Skip:")
	return nil
}

func (dv *DisplayVisitor) VisitBlock(b *Block) interface{} {
	dv.line("Block:")
	return dv.nested(b)
}

func (dv *DisplayVisitor) VisitAssignment(a *Assignment) interface{} {
	dv.line("Assignment:")
	return dv.nested(a)
}

func (dv *DisplayVisitor) VisitConditional(c *Conditional) interface{} {
	dv.line("Conditional:")
	return dv.nested(c)
}

func (dv *DisplayVisitor) VisitLoop(l *Loop) interface{} {
	dv.line("Loop:")
	return dv.nested(l)
}

func (dv *DisplayVisitor) VisitVariable(v *Variable) interface{} {
	dv.line("Variable: %s", v.Name)
	return nil
}

func (dv *DisplayVisitor) VisitLiteral(l *Literal) interface{} {
	switch v := l.Value.(type) {
	case IntValue:
		dv.line("IntValue: %s", v)
	case FloatValue:
		dv.line("FloatValue: %s", v)
	case CharValue:
		dv.line("CharValue: %s", v)
	case BoolValue:
		dv.line("BoolValue: %s", v)
	default:
		dv.line("Value: <nil>")
	}
	return nil
}

func (dv *DisplayVisitor) VisitUnary(u *Unary) interface{} {
	dv.line("Unary:")
	dv.indent++
	dv.line("Operator: %s", u.Op)
	dv.indent--
	return dv.nested(u)
}

func (dv *DisplayVisitor) VisitBinary(b *Binary) interface{} {
	dv.line("Binary:")
	dv.indent++
	dv.line("Operator: %s", b.Op)
	dv.indent--
	return dv.nested(b)
}

// Display renders the indented tree form of a node
func Display(node Node) string {
	dv := NewDisplayVisitor(2)
	node.Accept(dv)
	return dv.String()
}

// ASTToString returns the compact s-expression of a node
func ASTToString(node Node) string {
	return nodeString(node)
}

// MapVisitor converts nodes into maps of plain values
type MapVisitor struct {
	// Positions adds line and column to every map
	Positions bool
}

func (mv *MapVisitor) node(kind string, n Node, fields map[string]interface{}) map[string]interface{} {
	fields["node"] = kind
	if mv.Positions && n.Position().IsValid() {
		fields["line"] = n.Position().Line
		fields["column"] = n.Position().Column
	}
	return fields
}

func (mv *MapVisitor) convert(n Node) interface{} {
	if isNil(n) {
		return nil
	}
	return n.Accept(mv)
}

func (mv *MapVisitor) VisitProgram(p *Program) interface{} {
	return mv.node("Program", p, map[string]interface{}{
		"declarations": mv.convert(p.Declarations),
		"body":         mv.convert(p.Body),
	})
}

func (mv *MapVisitor) VisitDeclarationList(dl *DeclarationList) interface{} {
	decls := make([]interface{}, 0, len(dl.Declarations))
	for _, d := range dl.Declarations {
		decls = append(decls, mv.convert(d))
	}
	return decls
}

func (mv *MapVisitor) VisitDeclaration(d *Declaration) interface{} {
	return mv.node("Declaration", d, map[string]interface{}{
		"name": d.Name,
		"type": d.Type.String(),
	})
}

func (mv *MapVisitor) VisitSkip(s *Skip) interface{} {
	return mv.node("Skip", s, map[string]interface{}{})
}

func (mv *MapVisitor) VisitBlock(b *Block) interface{} {
	stmts := make([]interface{}, 0, len(b.Statements))
	for _, s := range b.Statements {
		stmts = append(stmts, mv.convert(s))
	}
	return mv.node("Block", b, map[string]interface{}{
		"statements": stmts,
	})
}

func (mv *MapVisitor) VisitAssignment(a *Assignment) interface{} {
	var target interface{}
	if a.Target != nil {
		target = a.Target.Name
	}
	return mv.node("Assignment", a, map[string]interface{}{
		"target": target,
		"source": mv.convert(a.Source),
	})
}

func (mv *MapVisitor) VisitConditional(c *Conditional) interface{} {
	fields := map[string]interface{}{
		"test": mv.convert(c.Test),
		"then": mv.convert(c.Then),
	}
	if c.Else != nil {
		fields["else"] = mv.convert(c.Else)
	}
	return mv.node("Conditional", c, fields)
}

func (mv *MapVisitor) VisitLoop(l *Loop) interface{} {
	return mv.node("Loop", l, map[string]interface{}{
		"test": mv.convert(l.Test),
		"body": mv.convert(l.Body),
	})
}

func (mv *MapVisitor) VisitVariable(v *Variable) interface{} {
	return mv.node("Variable", v, map[string]interface{}{
		"name": v.Name,
	})
}

func (mv *MapVisitor) VisitLiteral(l *Literal) interface{} {
	fields := map[string]interface{}{}
	if l.Value != nil {
		fields["type"] = l.Value.Type().String()
		fields["value"] = l.Value.Interface()
	}
	return mv.node("Literal", l, fields)
}

func (mv *MapVisitor) VisitUnary(u *Unary) interface{} {
	return mv.node("Unary", u, map[string]interface{}{
		"op":      u.Op.String(),
		"operand": mv.convert(u.Operand),
	})
}

func (mv *MapVisitor) VisitBinary(b *Binary) interface{} {
	return mv.node("Binary", b, map[string]interface{}{
		"op":    b.Op.String(),
		"left":  mv.convert(b.Left),
		"right": mv.convert(b.Right),
	})
}

// ToMap converts a node into nested maps and slices suitable for
// encoding/json or yaml.v3
func ToMap(node Node, positions bool) interface{} {
	mv := &MapVisitor{Positions: positions}
	return mv.convert(node)
}

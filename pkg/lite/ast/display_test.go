// File: display_test.go
// Title: C++Lite AST Renderer Tests
// Description: Tests for the indented tree display and map conversion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test suite

package ast

import (
	"encoding/json"
	"testing"
)

func TestDisplay(t *testing.T) {
	prog := &Program{
		Declarations: &DeclarationList{Declarations: []*Declaration{
			{Name: "x", Type: TypeInt},
			{Name: "c", Type: TypeChar},
		}},
		Body: &Block{Statements: []Statement{
			&Assignment{
				Target: variable("x"),
				Source: &Binary{Op: OpPlus, Left: intLit(1), Right: &Unary{Op: OpMinus, Operand: variable("x")}},
			},
			&Conditional{
				Test: &Literal{Value: BoolValue{Value: true}},
				Then: &Assignment{Target: variable("c"), Source: &Literal{Value: CharValue{Value: 'q'}}},
				Else: &Skip{},
			},
		}},
	}

	want := `Program (abstract syntax):
  Declarations:
    Declarations = {<x, int>, <c, char>}
  Block:
    Assignment:
      Variable: x
      Binary:
        Operator: +
        IntValue: 1
        Unary:
          Operator: -
          Variable: x
    Conditional:
      BoolValue: true
      Assignment:
        Variable: c
        CharValue: 'q'
      Skip:
`

	if got := Display(prog); got != want {
		t.Errorf("Display() =\n%s\nwant:\n%s", got, want)
	}

	if got := ASTToString(prog.Body.Statements[0]); got != "(= x (+ 1 (- x)))" {
		t.Errorf("ASTToString() = %q", got)
	}
}

func TestDisplayVisitorWidth(t *testing.T) {
	dv := NewDisplayVisitor(4)
	(&Block{Statements: []Statement{&Skip{}}}).Accept(dv)

	if got := dv.String(); got != "Block:\n    Skip:\n" {
		t.Errorf("width 4 output = %q", got)
	}

	dv.Reset()
	if dv.String() != "" {
		t.Error("Reset() should clear the buffer")
	}
}

func TestToMap(t *testing.T) {
	assign := &Assignment{
		Target: &Variable{Name: "f", Pos: Position{Line: 2, Column: 3}},
		Source: &Unary{Op: OpFloatCast, Operand: intLit(3), Pos: Position{Line: 2, Column: 7}},
		Pos:    Position{Line: 2, Column: 3},
	}

	data, err := json.Marshal(ToMap(assign, false))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `{"node":"Assignment","source":{"node":"Unary","op":"float","operand":{"node":"Literal","type":"int","value":3}},"target":"f"}`
	if string(data) != want {
		t.Errorf("ToMap() JSON =\n%s\nwant\n%s", data, want)
	}

	withPos := ToMap(assign, true).(map[string]interface{})
	if withPos["line"] != 2 || withPos["column"] != 3 {
		t.Errorf("positions missing: %v", withPos)
	}
	source := withPos["source"].(map[string]interface{})
	if source["column"] != 7 {
		t.Errorf("nested position missing: %v", source)
	}
}

func TestToMapProgram(t *testing.T) {
	m := ToMap(sampleProgram(), false).(map[string]interface{})

	decls, ok := m["declarations"].([]interface{})
	if !ok || len(decls) != 3 {
		t.Fatalf("declarations = %#v", m["declarations"])
	}
	first := decls[0].(map[string]interface{})
	if first["name"] != "x" || first["type"] != "int" {
		t.Errorf("first declaration = %v", first)
	}

	body := m["body"].(map[string]interface{})
	stmts := body["statements"].([]interface{})
	cond := stmts[1].(map[string]interface{})
	if _, ok := cond["else"]; !ok {
		t.Error("conditional with else should carry an else key")
	}

	if ToMap((*Block)(nil), false) != nil {
		t.Error("ToMap(nil block) should be nil")
	}
}

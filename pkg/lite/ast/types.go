// File: types.go
// Title: C++Lite AST Basic Types
// Description: Source positions, the closed set of declared types and the
//              operator enumeration including the four cast operators.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial type definitions

package ast

import "fmt"

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String renders the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Type is a declared variable type
type Type int

const (
	TypeInvalid Type = iota
	TypeInt
	TypeBool
	TypeFloat
	TypeChar
)

// String returns the keyword spelling of the type
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeFloat:
		return "float"
	case TypeChar:
		return "char"
	default:
		return "invalid"
	}
}

// IsValid reports whether t is one of the four declarable types
func (t Type) IsValid() bool {
	return t >= TypeInt && t <= TypeChar
}

// Operator is a closed enumeration of operator spellings
type Operator int

const (
	OpInvalid Operator = iota

	// Binary
	OpOr           // ||
	OpAnd          // &&
	OpEqual        // ==
	OpNotEqual     // !=
	OpLess         // <
	OpLessEqual    // <=
	OpGreater      // >
	OpGreaterEqual // >=
	OpPlus         // +
	OpMinus        // - (binary and unary)
	OpTimes        // *
	OpDivide       // /

	// Unary
	OpNot // !

	// Type conversions
	OpIntCast
	OpBoolCast
	OpFloatCast
	OpCharCast
)

var operatorSpellings = map[Operator]string{
	OpOr:           "||",
	OpAnd:          "&&",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpPlus:         "+",
	OpMinus:        "-",
	OpTimes:        "*",
	OpDivide:       "/",
	OpNot:          "!",
	OpIntCast:      "int",
	OpBoolCast:     "bool",
	OpFloatCast:    "float",
	OpCharCast:     "char",
}

// String returns the source spelling of the operator
func (o Operator) String() string {
	if s, ok := operatorSpellings[o]; ok {
		return s
	}
	return "invalid"
}

// IsBinary reports whether the operator may combine two operands
func (o Operator) IsBinary() bool {
	return o >= OpOr && o <= OpDivide
}

// IsUnary reports whether the operator may prefix a single operand
func (o Operator) IsUnary() bool {
	return o == OpNot || o == OpMinus || o.IsCast()
}

// IsCast reports whether the operator is a type conversion
func (o Operator) IsCast() bool {
	return o >= OpIntCast && o <= OpCharCast
}

// IsComparison reports whether the operator is an equality or relational operator
func (o Operator) IsComparison() bool {
	return o >= OpEqual && o <= OpGreaterEqual
}

// CastType returns the target type of a cast operator
func (o Operator) CastType() (Type, bool) {
	switch o {
	case OpIntCast:
		return TypeInt, true
	case OpBoolCast:
		return TypeBool, true
	case OpFloatCast:
		return TypeFloat, true
	case OpCharCast:
		return TypeChar, true
	default:
		return TypeInvalid, false
	}
}

// CastOperator returns the conversion operator for a type
func CastOperator(t Type) Operator {
	switch t {
	case TypeInt:
		return OpIntCast
	case TypeBool:
		return OpBoolCast
	case TypeFloat:
		return OpFloatCast
	case TypeChar:
		return OpCharCast
	default:
		return OpInvalid
	}
}

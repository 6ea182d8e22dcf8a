// File: values.go
// Title: C++Lite Literal Values
// Description: The closed Value sum type of constants embeddable in
//              expressions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial value variants

package ast

import (
	"strconv"
)

// Value is a literal constant: IntValue, FloatValue, CharValue or BoolValue
type Value interface {
	// Type returns the type of the constant
	Type() Type

	// String returns the source-like spelling of the constant
	String() string

	// Interface returns the underlying Go value
	Interface() interface{}

	valueNode() // marker method
}

// IntValue is a 32-bit integer constant
type IntValue struct {
	Value int32
}

// FloatValue is a 32-bit floating point constant
type FloatValue struct {
	Value float32
}

// CharValue is a character constant
type CharValue struct {
	Value rune
}

// BoolValue is a boolean constant
type BoolValue struct {
	Value bool
}

func (v IntValue) Type() Type   { return TypeInt }
func (v FloatValue) Type() Type { return TypeFloat }
func (v CharValue) Type() Type  { return TypeChar }
func (v BoolValue) Type() Type  { return TypeBool }

func (v IntValue) String() string { return strconv.FormatInt(int64(v.Value), 10) }

// String always includes a decimal point so floats stay distinguishable from ints
func (v FloatValue) String() string {
	s := strconv.FormatFloat(float64(v.Value), 'g', -1, 32)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'N' || c == 'I' {
			return s
		}
	}
	return s + ".0"
}

func (v CharValue) String() string { return strconv.QuoteRune(v.Value) }
func (v BoolValue) String() string { return strconv.FormatBool(v.Value) }

func (v IntValue) Interface() interface{}   { return v.Value }
func (v FloatValue) Interface() interface{} { return v.Value }
func (v CharValue) Interface() interface{}  { return string(v.Value) }
func (v BoolValue) Interface() interface{}  { return v.Value }

func (IntValue) valueNode()   {}
func (FloatValue) valueNode() {}
func (CharValue) valueNode()  {}
func (BoolValue) valueNode()  {}

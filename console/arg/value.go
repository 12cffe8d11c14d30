// File: value.go
// Title: Coerced Argument Values
// Description: Defines the tagged-union Value produced by argument coercion.
//              Exactly one payload field is meaningful, selected by Kind.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package arg

import (
	"fmt"
)

// Value is a typed argument produced by coercion. Kind selects the payload:
// Str doubles as the canonical symbol name for KindEnum values, with
// EnumIndex carrying the position in the declared symbol set.
type Value struct {
	Kind Kind

	Bool      bool
	U16       uint16
	U32       uint32
	Str       string
	Char      rune
	F32       float32
	EnumIndex int
}

// String renders the value for diagnostics and tracing
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindU16:
		return fmt.Sprintf("%d", v.U16)
	case KindU32:
		return fmt.Sprintf("%d", v.U32)
	case KindString:
		return v.Str
	case KindChar:
		return string(v.Char)
	case KindF32:
		return fmt.Sprintf("%g", v.F32)
	case KindEnum:
		return v.Str
	case KindArray:
		return "<array>"
	default:
		return "<unknown>"
	}
}

// File: kind.go
// Title: Parameter Kind Definitions
// Description: Defines the closed set of parameter kinds a command handler
//              may declare, the Param declaration consumed by registration,
//              and the Enum symbol sets used for enumerated parameters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package arg

// Kind represents the declared type of a single handler parameter
type Kind int

const (
	// KindBool accepts the literals "true" and "false"
	KindBool Kind = iota

	// KindU16 accepts an unsigned 16-bit numeric literal
	KindU16

	// KindU32 accepts an unsigned 32-bit numeric literal
	KindU32

	// KindString passes the token through unchanged
	KindString

	// KindChar takes the first character of a non-empty token
	KindChar

	// KindF32 accepts a decimal floating point literal
	KindF32

	// KindEnum matches the token case-insensitively against a symbol set
	KindEnum

	// KindArray is declared but not supported. Coercion skips an array
	// parameter without consuming a token. Registering one is a known gap
	// kept for signature compatibility, not working behavior.
	KindArray
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	case KindF32:
		return "f32"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Enum describes a named set of symbolic constants for KindEnum parameters.
// Symbol order is significant: the first case-insensitive match wins and the
// coerced value carries the matching index.
type Enum struct {
	// Name identifies the symbol set in diagnostics
	Name string

	// Symbols lists the legal constant names in declaration order
	Symbols []string
}

// Param declares a single handler parameter
type Param struct {
	// Kind selects the parse function
	Kind Kind

	// Name labels the parameter in usage text and diagnostics
	Name string

	// Enum is the symbol set for KindEnum parameters; nil otherwise
	Enum *Enum
}

// Bool declares a boolean parameter
func Bool(name string) Param {
	return Param{Kind: KindBool, Name: name}
}

// U16 declares an unsigned 16-bit parameter
func U16(name string) Param {
	return Param{Kind: KindU16, Name: name}
}

// U32 declares an unsigned 32-bit parameter
func U32(name string) Param {
	return Param{Kind: KindU32, Name: name}
}

// String declares a string parameter
func String(name string) Param {
	return Param{Kind: KindString, Name: name}
}

// Char declares a single-character parameter
func Char(name string) Param {
	return Param{Kind: KindChar, Name: name}
}

// F32 declares a 32-bit float parameter
func F32(name string) Param {
	return Param{Kind: KindF32, Name: name}
}

// Symbol declares an enumerated-symbol parameter
func Symbol(name string, enum *Enum) Param {
	return Param{Kind: KindEnum, Name: name, Enum: enum}
}

// File: coerce.go
// Title: Argument Coercion Engine
// Description: Converts raw string tokens into typed values according to a
//              handler's declared parameter list. Numeric literals carry an
//              optional single-letter radix prefix (b, o, d, x); a literal
//              with no prefix is parsed as octal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial implementation

package arg

import (
	"strconv"
	"strings"
	"unicode/utf8"

	dbgerror "github.com/msto63/dbgcon/core/error"
)

// Arity returns the number of tokens the parameter list consumes. Array
// parameters are skipped by coercion and therefore do not count.
func Arity(params []Param) int {
	n := 0
	for _, p := range params {
		if p.Kind != KindArray {
			n++
		}
	}
	return n
}

// Coerce converts raw tokens into typed values, one token per non-array
// parameter, in declared order. The caller must have matched len(raw)
// against Arity(params) already; a shortfall here is an internal error.
func Coerce(params []Param, raw []string) ([]Value, error) {
	values := make([]Value, 0, len(params))
	next := 0

	for _, p := range params {
		if p.Kind == KindArray {
			// unsupported kind, skipped without consuming a token
			values = append(values, Value{Kind: KindArray})
			continue
		}

		if next >= len(raw) {
			return nil, dbgerror.New("argument list shorter than parameter list").
				WithCode(dbgerror.CodeInternal).
				WithOperation("coerce")
		}

		v, err := coerceOne(p, raw[next])
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		next++
	}

	return values, nil
}

// coerceOne converts a single token according to one parameter declaration
func coerceOne(p Param, token string) (Value, error) {
	switch p.Kind {
	case KindBool:
		// the literals are case-sensitive
		switch token {
		case "true":
			return Value{Kind: KindBool, Bool: true}, nil
		case "false":
			return Value{Kind: KindBool, Bool: false}, nil
		default:
			return Value{}, typeError(p, token, "expected true or false")
		}

	case KindU16:
		n, err := parseUnsigned(token, 16)
		if err != nil {
			return Value{}, typeError(p, token, "not a valid 16-bit value")
		}
		return Value{Kind: KindU16, U16: uint16(n)}, nil

	case KindU32:
		n, err := parseUnsigned(token, 32)
		if err != nil {
			return Value{}, typeError(p, token, "not a valid 32-bit value")
		}
		return Value{Kind: KindU32, U32: uint32(n)}, nil

	case KindString:
		return Value{Kind: KindString, Str: token}, nil

	case KindChar:
		if token == "" {
			return Value{}, typeError(p, token, "expected a character")
		}
		r, _ := utf8.DecodeRuneInString(token)
		return Value{Kind: KindChar, Char: r}, nil

	case KindF32:
		f, err := strconv.ParseFloat(token, 32)
		if err != nil {
			return Value{}, typeError(p, token, "not a valid floating point value")
		}
		return Value{Kind: KindF32, F32: float32(f)}, nil

	case KindEnum:
		return coerceEnum(p, token)

	default:
		return Value{}, dbgerror.Newf("unsupported parameter kind %s", p.Kind).
			WithCode(dbgerror.CodeInternal).
			WithOperation("coerce")
	}
}

// coerceEnum matches the token case-insensitively against the symbol set;
// the first match wins
func coerceEnum(p Param, token string) (Value, error) {
	if p.Enum == nil {
		return Value{}, dbgerror.Newf("parameter %q has no symbol set", p.Name).
			WithCode(dbgerror.CodeInternal).
			WithOperation("coerce")
	}

	for i, sym := range p.Enum.Symbols {
		if strings.EqualFold(sym, token) {
			return Value{Kind: KindEnum, Str: sym, EnumIndex: i}, nil
		}
	}

	return Value{}, typeError(p, token,
		"legal values are: "+strings.Join(p.Enum.Symbols, ", "))
}

// parseUnsigned parses a numeric literal with an optional radix prefix:
// b=binary, o=octal, d=decimal, x=hexadecimal. A literal without a prefix is
// parsed as octal.
func parseUnsigned(token string, bits int) (uint64, error) {
	base := 8
	digits := token

	if len(token) > 1 {
		switch token[0] {
		case 'b':
			base, digits = 2, token[1:]
		case 'o':
			base, digits = 8, token[1:]
		case 'd':
			base, digits = 10, token[1:]
		case 'x':
			base, digits = 16, token[1:]
		}
	}

	return strconv.ParseUint(digits, base, bits)
}

// typeError builds the one-line coercion diagnostic
func typeError(p Param, token, hint string) error {
	return dbgerror.Newf("argument %q for <%s>: %s", token, p.Name, hint).
		WithCode(dbgerror.CodeArgumentType).
		WithOperation("coerce").
		WithDetail("token", token).
		WithDetail("kind", p.Kind.String())
}

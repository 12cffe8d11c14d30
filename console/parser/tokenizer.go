// File: tokenizer.go
// Title: Command Line Tokenizer
// Description: Splits a raw command line into string tokens. Runs of
//              whitespace separate tokens; a double-quoted run becomes
//              exactly one token regardless of internal whitespace. The
//              scanner is a three-state machine over the input runes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package parser

import (
	"strings"
	"unicode"
)

// scanState represents the tokenizer state
type scanState int

const (
	// stateWhitespace is the state between tokens
	stateWhitespace scanState = iota

	// stateToken is the state inside an unquoted token
	stateToken

	// stateQuoted is the state inside a double-quoted token
	stateQuoted
)

// Tokenize splits a command line into tokens. Leading and trailing
// whitespace is stripped before scanning. A `"` opening in whitespace
// switches to quoted mode; the closing `"` emits the accumulated text as one
// token (the quotes themselves are not part of it). An unterminated quote
// keeps accumulating to end of input, and the accumulated text becomes the
// final token if non-empty. An empty line yields no tokens.
func Tokenize(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	var tokens []string
	var current strings.Builder
	state := stateWhitespace

	for _, r := range line {
		switch state {
		case stateWhitespace:
			switch {
			case r == '"':
				state = stateQuoted
			case unicode.IsSpace(r):
				// stay between tokens
			default:
				current.WriteRune(r)
				state = stateToken
			}

		case stateToken:
			if unicode.IsSpace(r) {
				tokens = append(tokens, current.String())
				current.Reset()
				state = stateWhitespace
			} else {
				current.WriteRune(r)
			}

		case stateQuoted:
			if r == '"' {
				// a quoted run is always emitted, even when empty
				tokens = append(tokens, current.String())
				current.Reset()
				state = stateWhitespace
			} else {
				current.WriteRune(r)
			}
		}
	}

	switch state {
	case stateToken:
		tokens = append(tokens, current.String())
	case stateQuoted:
		// unterminated quote: the accumulated text is the final token
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
		}
	}

	return tokens
}

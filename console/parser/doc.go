// File: doc.go
// Title: Console Tokenizer Package Documentation
// Description: Splits raw console lines into argument tokens with support
//              for double-quoted strings embedding whitespace.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial tokenizer implementation

/*
Package parser splits console input lines into tokens.

Tokens are separated by spaces and tabs. A double quote opening at a token
boundary starts a quoted token that may embed whitespace; the closing quote
ends it, and an unterminated quote extends to the end of the line. A quote
inside an unquoted token has no special meaning.

The tokenizer does not interpret tokens. Comments, script directives, and
argument kinds are handled by the layers above it.
*/
package parser

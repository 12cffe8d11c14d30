// File: doc.go
// Title: Argument Coercion Package Documentation
// Description: Declares parameter kinds and converts raw tokens into typed
//              argument values, including the prefix-based radix rules for
//              numeric parameters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial coercion implementation

/*
Package arg converts raw console tokens into typed argument values.

A parameter list declares the kinds a handler expects: bool, u16, u32,
string, char, f32, or an enum over a named symbol set. Numeric tokens
default to octal; a leading b, o, d, or x selects binary, octal, decimal,
or hexadecimal. Bool literals are the exact words true and false, while
enum symbols match case-insensitively against their declared set.

Coercion is all-or-nothing: the first token that fails its kind aborts
with an error naming the offending parameter.
*/
package arg

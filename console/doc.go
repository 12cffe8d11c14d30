// Package console implements the dbgcon command console engine.
//
// Package: console
// Title: Console Engine and Script Orchestration
// Description: This package ties the tokenizer, command tree, and argument
//              coercion together into a line-oriented console. One call
//              processes exactly one line (or one full script) and yields
//              the next execution-state signal. The engine is front-end
//              agnostic and fully single-threaded: reading the next line
//              blocks the only execution context, and the command tree is
//              immutable after construction.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial implementation
//
// Usage:
//   con, err := console.New(console.Options{Out: os.Stdout}, debugSet)
//   state, err := con.ExecInteractive(line)
//   if state.Terminal() { ... }
package console

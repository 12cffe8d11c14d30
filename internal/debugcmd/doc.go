// Package debugcmd provides the command set shipped with dbgcon.
//
// Package: debugcmd
// Title: Shipped Debug Command Set
// Description: This package binds console commands to the demo debug target:
//              breakpoint management, memory inspection, register access,
//              single stepping, and execution control. Every parameter kind
//              of the coercion engine is exercised here. The set owner holds
//              the target machine and a verbosity switch governing how
//              chatty the confirmations are.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial implementation
//
// Usage:
//   machine := target.New()
//   cmds := debugcmd.New(machine)
//   con, err := console.New(console.Options{}, cmds.Set())
package debugcmd

// Package command implements the command tree of the dbgcon console.
//
// Package: command
// Title: Command Registry, Tree, and Resolver
// Description: This package builds a prefix tree of multi-word commands from
//              an explicit registration table and resolves token sequences
//              against it. Handlers at a node are overloaded solely by
//              argument count; parameter declarations come from the arg
//              package and bind at compile time rather than being discovered
//              through reflection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial implementation
//
// Usage:
//   set := command.NewSet("target").
//     Register("step", nil, "step", "execute one instruction", h.step).
//     Register("step", []arg.Param{arg.U16("n")}, "step <n>", "execute n instructions", h.stepN)
//
//   root, err := command.BuildTree(set.Registrations())
//   node, rawArgs, err := command.Resolve(root, tokens)
//   binding, values, err := command.Bind(node, rawArgs)
package command

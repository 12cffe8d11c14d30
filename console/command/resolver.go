// File: resolver.go
// Title: Command Resolution and Overload Binding
// Description: Walks the command tree against a token sequence to find the
//              command terminus, then selects the overload whose arity
//              matches the remaining tokens and coerces them. Resolution is
//              read-only over the tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial implementation

package command

import (
	"strings"

	"github.com/msto63/dbgcon/console/arg"
	dbgerror "github.com/msto63/dbgcon/core/error"
)

// Resolve walks the tree consuming tokens as case-insensitive child lookups.
// It returns the resolved terminus plus the not-yet-consumed tokens, which
// become the command's raw argument strings. Two stop conditions are checked
// before consuming the next token: a terminus with no children must be the
// answer, and a terminus with no tokens left cannot specialize further. An
// unmatched token at a terminus begins the argument list; anywhere else it is
// a failed resolution.
func Resolve(root *Node, tokens []string) (*Node, []string, error) {
	node := root
	idx := 0

	for {
		if node.IsTerminus() && (!node.HasChildren() || idx >= len(tokens)) {
			return node, tokens[idx:], nil
		}

		if idx >= len(tokens) {
			// tokens exhausted below a handler-less node
			return nil, nil, noMatch(tokens)
		}

		if child, ok := node.Child(tokens[idx]); ok {
			node = child
			idx++
			continue
		}

		if node.IsTerminus() {
			// the unmatched token begins the argument list
			return node, tokens[idx:], nil
		}

		return nil, nil, noMatch(tokens)
	}
}

// Bind selects the overload whose arity equals the number of raw argument
// tokens and coerces them into typed values
func Bind(node *Node, raw []string) (*Binding, []arg.Value, error) {
	for _, b := range node.Bindings() {
		if b.Arity() != len(raw) {
			continue
		}

		values, err := arg.Coerce(b.Params, raw)
		if err != nil {
			return nil, nil, dbgerror.Wrap(err, node.FullName()).
				WithOperation("bind")
		}
		return b, values, nil
	}

	return nil, nil, dbgerror.Newf("invalid argument count for %q (got %d)",
		node.FullName(), len(raw)).
		WithCode(dbgerror.CodeArgumentCount).
		WithOperation("bind").
		WithDetail("command", node.FullName()).
		WithDetail("args", len(raw))
}

// noMatch builds the resolution failure diagnostic
func noMatch(tokens []string) error {
	return dbgerror.Newf("no such command: %s", strings.Join(tokens, " ")).
		WithCode(dbgerror.CodeNoMatch).
		WithOperation("resolve")
}

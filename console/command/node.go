// File: node.go
// Title: Command Tree Node
// Description: Defines the prefix tree node keyed by lowercase words and the
//              handler binding it carries. A node holding at least one
//              binding is a command terminus; a node may be a terminus and
//              still have children when a short command shares a prefix with
//              a longer one. Nodes are created only during tree construction
//              and are read-only during resolution.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package command

import (
	"sort"
	"strings"

	"github.com/msto63/dbgcon/console/arg"
	dbgerror "github.com/msto63/dbgcon/core/error"
)

// Binding is one invocable handler attached to a tree node
type Binding struct {
	// Params declares the parameter list in order
	Params []arg.Param

	// Usage is the one-line usage string shown by help
	Usage string

	// Description is the short help description
	Description string

	// Group names the command set the binding came from
	Group string

	// Fn is the handler to invoke
	Fn HandlerFunc
}

// Arity returns the number of argument tokens the binding consumes
func (b *Binding) Arity() int {
	return arg.Arity(b.Params)
}

// Node is a node in the command prefix tree
type Node struct {
	name     string
	full     string
	bindings []*Binding
	children map[string]*Node
}

// Name returns the node's single lowercase word
func (n *Node) Name() string {
	return n.name
}

// FullName returns the space-joined path from the root to this node
func (n *Node) FullName() string {
	return n.full
}

// Bindings returns the handler bindings attached to this node
func (n *Node) Bindings() []*Binding {
	return n.bindings
}

// IsTerminus reports whether the node carries at least one handler
func (n *Node) IsTerminus() bool {
	return len(n.bindings) > 0
}

// HasChildren reports whether the command can be extended by another word
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// Child looks up a child node by word, case-insensitively
func (n *Node) Child(word string) (*Node, bool) {
	child, ok := n.children[strings.ToLower(word)]
	return child, ok
}

// ChildWords returns the sorted child words, for diagnostics
func (n *Node) ChildWords() []string {
	words := make([]string, 0, len(n.children))
	for w := range n.children {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// ensureChild returns the child for a word, creating it if absent. Only tree
// construction calls this.
func (n *Node) ensureChild(word string) *Node {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}

	if child, ok := n.children[word]; ok {
		return child
	}

	full := word
	if n.full != "" {
		full = n.full + " " + word
	}

	child := &Node{name: word, full: full}
	n.children[word] = child
	return child
}

// attach adds a binding, enforcing overload uniqueness by arity
func (n *Node) attach(b *Binding) error {
	for _, existing := range n.bindings {
		if existing.Arity() == b.Arity() {
			return dbgerror.Newf("duplicate overload for command %q with %d argument(s)",
				n.full, b.Arity()).
				WithCode(dbgerror.CodeDuplicateOverload).
				WithOperation("register").
				WithDetail("command", n.full).
				WithDetail("arity", b.Arity())
		}
	}

	n.bindings = append(n.bindings, b)
	return nil
}

// File: registry.go
// Title: Command Registry and Tree Construction
// Description: Builds the command prefix tree from an explicit, statically
//              enumerable registration table. Command sets group the
//              registrations of one owning object; construction walks each
//              multi-word name from the root, creating nodes as needed, and
//              fails on a duplicate overload at the same path.
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

// Registration is the unit consumed by tree construction: a multi-word name
// plus one handler binding
type Registration struct {
	// Name is the full multi-word command name, split on spaces into the
	// path from the root
	Name string

	// Params declares the handler's parameter list
	Params []arg.Param

	// Usage is the one-line usage string for help output
	Usage string

	// Description is the short help description
	Description string

	// Group names the owning command set
	Group string

	// Handler is the callable to bind
	Handler HandlerFunc
}

// Set collects the registrations of one owning object. Registration order is
// preserved; it determines only which duplicate is detected first, never the
// resulting tree.
type Set struct {
	name string
	regs []Registration
}

// NewSet creates an empty command set with the given group name
func NewSet(name string) *Set {
	return &Set{name: name}
}

// Name returns the set's group name
func (s *Set) Name() string {
	return s.name
}

// Register appends one command registration and returns the set for chaining
func (s *Set) Register(name string, params []arg.Param, usage, description string, fn HandlerFunc) *Set {
	s.regs = append(s.regs, Registration{
		Name:        name,
		Params:      params,
		Usage:       usage,
		Description: description,
		Group:       s.name,
		Handler:     fn,
	})
	return s
}

// Registrations returns the collected registrations in order
func (s *Set) Registrations() []Registration {
	return s.regs
}

// BuildTree constructs the command prefix tree from a registration table.
// The returned root is empty of handlers; it and every node below it are
// read-only afterwards. A registration whose name yields no words, or whose
// path and arity collide with an earlier registration, aborts construction.
func BuildTree(regs []Registration) (*Node, error) {
	root := &Node{}

	for _, reg := range regs {
		words := strings.Fields(strings.ToLower(reg.Name))
		if len(words) == 0 {
			return nil, dbgerror.New("command registration with empty name").
				WithCode(dbgerror.CodeEmptyCommandName).
				WithOperation("register").
				WithDetail("group", reg.Group)
		}

		if reg.Handler == nil {
			return nil, dbgerror.Newf("command %q registered without a handler", reg.Name).
				WithCode(dbgerror.CodeInvalidInput).
				WithOperation("register")
		}

		node := root
		for _, word := range words {
			node = node.ensureChild(word)
		}

		binding := &Binding{
			Params:      reg.Params,
			Usage:       reg.Usage,
			Description: reg.Description,
			Group:       reg.Group,
			Fn:          reg.Handler,
		}

		if err := node.attach(binding); err != nil {
			return nil, err
		}
	}

	return root, nil
}

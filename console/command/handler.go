// File: handler.go
// Title: Handler Contract and Execution State
// Description: Defines the execution-state signal a command handler returns,
//              the invocation context it receives, and the handler function
//              type bound into the command tree. The owning instance of the
//              source design is expressed as a Go method value or closure.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package command

import (
	"io"

	"github.com/msto63/dbgcon/console/arg"
	"github.com/msto63/dbgcon/core/log"
)

// State is the execution-state signal every handler returns. The console
// surfaces it to its caller to decide whether to keep prompting, hand control
// back to the target, or terminate.
type State int

const (
	// StateContinue keeps the console prompting for the next line
	StateContinue State = iota

	// StateRun leaves the console and resumes the debugged target
	StateRun

	// StateQuit terminates the console and the process around it
	StateQuit
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateContinue:
		return "continue"
	case StateRun:
		return "run"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the console loop
func (s State) Terminal() bool {
	return s == StateRun || s == StateQuit
}

// Context is passed to a handler at invocation time
type Context struct {
	// Out receives the command's user-visible output
	Out io.Writer

	// Logger carries the operational trail
	Logger *log.Logger

	// Interactive is true when the line was typed at the prompt rather
	// than read from a script
	Interactive bool
}

// HandlerFunc is a command handler. The receiver of a method value (or the
// closure environment) carries what the handler operates on.
type HandlerFunc func(ctx *Context, args []arg.Value) (State, error)

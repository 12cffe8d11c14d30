// File: console.go
// Title: Console Engine
// Description: Orchestrates a single command line end-to-end: comment and
//              script-directive detection, tokenization, resolution against
//              the command tree, argument coercion, and handler invocation.
//              Front-end agnostic: callers feed it lines and it writes
//              command output and diagnostics to its writer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial implementation

package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/msto63/dbgcon/console/command"
	"github.com/msto63/dbgcon/console/parser"
	dbgerror "github.com/msto63/dbgcon/core/error"
	"github.com/msto63/dbgcon/core/log"
)

// Options configures the console engine
type Options struct {
	// Logger for the operational trail (optional, defaults to the default
	// logger)
	Logger *log.Logger

	// Out receives command output and line diagnostics (default: stdout)
	Out io.Writer

	// Prompt written before each line by Run (empty suppresses it)
	Prompt string

	// MaxScriptDepth bounds recursive @file inclusion (default: 8)
	MaxScriptDepth int
}

// Console resolves and executes command lines against an immutable command
// tree. There is exactly one execution context; the engine is synchronous
// and not safe for concurrent use.
type Console struct {
	root      *command.Node
	regs      []command.Registration
	logger    *log.Logger
	out       io.Writer
	opts      Options
	sessionID string

	// lastLine is the previous successfully executed interactive line,
	// repeated verbatim on an empty interactive input
	lastLine string
}

// New builds a console from the given command sets plus the built-in help
// and quit commands. Tree construction failures (duplicate overloads, empty
// names) are fatal and abort construction.
func New(opts Options, sets ...*command.Set) (*Console, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.MaxScriptDepth <= 0 {
		opts.MaxScriptDepth = 8
	}

	c := &Console{
		out:       opts.Out,
		opts:      opts,
		sessionID: uuid.NewString(),
	}
	c.logger = opts.Logger.WithName("console").WithSessionID(c.sessionID)

	for _, set := range append(sets, c.builtinSet()) {
		c.regs = append(c.regs, set.Registrations()...)
	}

	root, err := command.BuildTree(c.regs)
	if err != nil {
		return nil, dbgerror.Wrap(err, "building command tree")
	}
	c.root = root

	c.logger.Info("command tree built", log.Fields{
		"commands":       len(c.regs),
		"maxScriptDepth": opts.MaxScriptDepth,
	})

	return c, nil
}

// SessionID returns the unique identifier of this console session
func (c *Console) SessionID() string {
	return c.sessionID
}

// Out returns the writer receiving command output
func (c *Console) Out() io.Writer {
	return c.out
}

// Exec processes exactly one line with script semantics: blank lines and
// `#` comments are no-ops, `@path` transfers execution to a script, anything
// else is tokenized, resolved, coerced, and invoked. Resolution and coercion
// failures are returned for the caller to report; they leave the console in
// its pre-line state.
func (c *Console) Exec(line string) (command.State, error) {
	return c.exec(line, false)
}

// ExecInteractive processes one interactively typed line. An empty line
// repeats the previous successfully executed line verbatim.
func (c *Console) ExecInteractive(line string) (command.State, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		if c.lastLine == "" {
			return command.StateContinue, nil
		}
		line = c.lastLine
	}

	state, err := c.exec(line, true)
	if err == nil {
		c.lastLine = line
	}
	return state, err
}

// exec dispatches one trimmed line
func (c *Console) exec(line string, interactive bool) (command.State, error) {
	line = strings.TrimSpace(line)

	switch {
	case line == "" || strings.HasPrefix(line, "#"):
		return command.StateContinue, nil

	case strings.HasPrefix(line, "@"):
		return c.execScript(strings.TrimSpace(line[1:]), 1)

	default:
		return c.execCommand(line, interactive)
	}
}

// execCommand tokenizes, resolves, coerces, and invokes one command line
func (c *Console) execCommand(line string, interactive bool) (command.State, error) {
	tokens := parser.Tokenize(line)
	if len(tokens) == 0 {
		return command.StateContinue, nil
	}

	node, rawArgs, err := command.Resolve(c.root, tokens)
	if err != nil {
		return command.StateContinue, err
	}

	binding, values, err := command.Bind(node, rawArgs)
	if err != nil {
		return command.StateContinue, err
	}

	c.logger.Debug("invoking command", log.Fields{
		"command": node.FullName(),
		"args":    len(values),
	})

	ctx := &command.Context{
		Out:         c.out,
		Logger:      c.logger,
		Interactive: interactive,
	}

	return binding.Fn(ctx, values)
}

// Run reads lines from r with interactive semantics until EOF or a terminal
// state. Recoverable line errors are rendered as one-line diagnostics and
// the loop continues; the final state is returned.
func (c *Console) Run(r io.Reader) (command.State, error) {
	scanner := bufio.NewScanner(r)
	state := command.StateContinue

	for state == command.StateContinue {
		if c.opts.Prompt != "" {
			fmt.Fprint(c.out, c.opts.Prompt)
		}

		if !scanner.Scan() {
			break
		}

		var err error
		state, err = c.ExecInteractive(scanner.Text())
		if err != nil {
			c.Report(err)
		}
	}

	if err := scanner.Err(); err != nil {
		return state, dbgerror.Wrap(err, "reading input").
			WithCode(dbgerror.CodeScriptIO)
	}
	return state, nil
}

// Report renders an error as a one-line diagnostic on the console output
// and records it in the operational log
func (c *Console) Report(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(c.out, "error: %s\n", err.Error())
	c.logger.LogError(err)
}

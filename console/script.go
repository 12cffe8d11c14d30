// File: script.go
// Title: Script Execution
// Description: Executes command script files line by line: blank lines and
//              `#` comments are skipped, `@file` directives chain to another
//              script synchronously before the next line runs. Inclusion
//              depth is bounded; an unopenable file is fatal for its script
//              level and propagates to the caller.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package console

import (
	"bufio"
	"os"
	"strings"

	"github.com/msto63/dbgcon/console/command"
	dbgerror "github.com/msto63/dbgcon/core/error"
	"github.com/msto63/dbgcon/core/log"
)

// ExecScript executes the named script file to completion. Recoverable
// command errors are reported line by line and the script continues; a
// script that cannot be opened, or inclusion beyond the configured depth,
// aborts this execution level.
func (c *Console) ExecScript(path string) (command.State, error) {
	return c.execScript(path, 1)
}

// execScript runs one inclusion level. Script lines are never interactive,
// regardless of where the outermost @directive came from.
func (c *Console) execScript(path string, depth int) (command.State, error) {
	if depth > c.opts.MaxScriptDepth {
		return command.StateContinue, dbgerror.Newf(
			"script inclusion depth exceeds %d at %q", c.opts.MaxScriptDepth, path).
			WithCode(dbgerror.CodeScriptDepth).
			WithOperation("script").
			WithDetail("path", path).
			WithDetail("depth", depth)
	}

	f, err := os.Open(path)
	if err != nil {
		return command.StateContinue, dbgerror.Wrap(err, "cannot open script").
			WithCode(dbgerror.CodeScriptIO).
			WithOperation("script").
			WithDetail("path", path)
	}
	defer f.Close()

	c.logger.Info("executing script", log.Fields{"path": path, "depth": depth})

	state := command.StateContinue
	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// script-sourced blank lines are skipped, never repeated
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var lineErr error
		if strings.HasPrefix(line, "@") {
			state, lineErr = c.execScript(strings.TrimSpace(line[1:]), depth+1)
			if lineErr != nil {
				// script errors are fatal for this level
				return state, dbgerror.Wrap(lineErr, path).
					WithDetail("line", lineNo)
			}
		} else {
			state, lineErr = c.execCommand(line, false)
			if lineErr != nil {
				// command failures are contained at the line boundary
				c.Report(lineErr)
				state = command.StateContinue
			}
		}

		if state.Terminal() {
			return state, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return state, dbgerror.Wrap(err, "reading script").
			WithCode(dbgerror.CodeScriptIO).
			WithOperation("script").
			WithDetail("path", path)
	}

	return state, nil
}

// File: builtin.go
// Title: Built-in Console Commands
// Description: Registers the console's own commands: help, which renders
//              every registered command from registration metadata, and
//              quit, which returns the terminal quit signal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package console

import (
	"fmt"
	"sort"

	"github.com/msto63/dbgcon/console/arg"
	"github.com/msto63/dbgcon/console/command"
)

// Info describes one registered command for introspection
type Info struct {
	Name        string
	Usage       string
	Description string
	Group       string
	Arity       int
}

// Commands returns every registration, sorted by name then arity. Help
// output is generated from this: it is never hand-maintained text.
func (c *Console) Commands() []Info {
	infos := make([]Info, 0, len(c.regs))
	for _, reg := range c.regs {
		infos = append(infos, Info{
			Name:        reg.Name,
			Usage:       reg.Usage,
			Description: reg.Description,
			Group:       reg.Group,
			Arity:       arg.Arity(reg.Params),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Name != infos[j].Name {
			return infos[i].Name < infos[j].Name
		}
		return infos[i].Arity < infos[j].Arity
	})

	return infos
}

// builtinSet returns the console's own command set
func (c *Console) builtinSet() *command.Set {
	return command.NewSet("console").
		Register("help", nil, "help",
			"list every registered command", c.cmdHelp).
		Register("quit", nil, "quit",
			"terminate the console", c.cmdQuit)
}

// cmdHelp renders the generated command listing, grouped by command set
func (c *Console) cmdHelp(ctx *command.Context, args []arg.Value) (command.State, error) {
	infos := c.Commands()
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Group != infos[j].Group {
			return infos[i].Group < infos[j].Group
		}
		if infos[i].Name != infos[j].Name {
			return infos[i].Name < infos[j].Name
		}
		return infos[i].Arity < infos[j].Arity
	})

	nameWidth := 0
	for _, info := range infos {
		if u := info.usageOrName(); len(u) > nameWidth {
			nameWidth = len(u)
		}
	}

	group := ""
	for _, info := range infos {
		if info.Group != group {
			group = info.Group
			fmt.Fprintf(ctx.Out, "%s:\n", group)
		}
		fmt.Fprintf(ctx.Out, "  %-*s  %s\n", nameWidth, info.usageOrName(), info.Description)
	}

	return command.StateContinue, nil
}

// usageOrName falls back to the plain name when no usage string was declared
func (i Info) usageOrName() string {
	if i.Usage != "" {
		return i.Usage
	}
	return i.Name
}

// cmdQuit returns the terminal quit signal
func (c *Console) cmdQuit(ctx *command.Context, args []arg.Value) (command.State, error) {
	return command.StateQuit, nil
}

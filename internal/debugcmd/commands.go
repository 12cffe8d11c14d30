// File: commands.go
// Title: Shipped Debug Command Set
// Description: The registrable command set operating on the demo target:
//              breakpoints, memory inspection, registers, stepping, and
//              execution control. Declared as an explicit registration table
//              so the command surface is statically enumerable.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial command set

package debugcmd

import (
	"fmt"

	"github.com/msto63/dbgcon/console/arg"
	"github.com/msto63/dbgcon/console/command"
	"github.com/msto63/dbgcon/internal/target"
)

// VerbosityEnum is the symbol set of the verbosity command
var VerbosityEnum = &arg.Enum{
	Name:    "verbosity",
	Symbols: []string{"Quiet", "Normal", "Verbose"},
}

// Verbosity levels, indexed like VerbosityEnum.Symbols
const (
	VerbosityQuiet = iota
	VerbosityNormal
	VerbosityVerbose
)

// Commands owns the debug command handlers and their target machine
type Commands struct {
	machine   *target.Machine
	verbosity int
}

// New creates the command set owner for a machine
func New(m *target.Machine) *Commands {
	return &Commands{
		machine:   m,
		verbosity: VerbosityNormal,
	}
}

// Verbosity returns the current verbosity index
func (d *Commands) Verbosity() int {
	return d.verbosity
}

// Set returns the registration table for the console
func (d *Commands) Set() *command.Set {
	return command.NewSet("target").
		Register("break set", []arg.Param{arg.U32("addr")},
			"break set <addr>", "set a breakpoint", d.breakSet).
		Register("break clear", []arg.Param{arg.U32("addr")},
			"break clear <addr>", "clear a breakpoint", d.breakClear).
		Register("break list", nil,
			"break list", "list all breakpoints", d.breakList).
		Register("mem read", []arg.Param{arg.U32("addr"), arg.U16("count")},
			"mem read <addr> <count>", "hex dump count bytes", d.memRead).
		Register("mem write", []arg.Param{arg.U32("addr"), arg.U16("value")},
			"mem write <addr> <value>", "write one byte", d.memWrite).
		Register("mem fill", []arg.Param{arg.U32("addr"), arg.U16("count"), arg.Char("fill")},
			"mem fill <addr> <count> <char>", "fill memory with a character", d.memFill).
		Register("reg", nil,
			"reg", "show all registers", d.regShow).
		Register("reg set", []arg.Param{arg.String("name"), arg.U32("value")},
			"reg set <name> <value>", "set a register", d.regSet).
		Register("step", nil,
			"step", "execute one instruction", d.stepOne).
		Register("step", []arg.Param{arg.U16("n")},
			"step <n>", "execute n instructions", d.stepN).
		Register("run", nil,
			"run", "leave the console and resume the target", d.run).
		Register("reset", nil,
			"reset", "reset the target to its power-on state", d.reset).
		Register("trace", []arg.Param{arg.Bool("on")},
			"trace <true|false>", "toggle instruction tracing", d.trace).
		Register("clock scale", []arg.Param{arg.F32("factor")},
			"clock scale <factor>", "scale the emulated clock", d.clockScale).
		Register("verbosity", []arg.Param{arg.Symbol("level", VerbosityEnum)},
			"verbosity <level>", "set output verbosity", d.setVerbosity).
		Register("echo", []arg.Param{arg.String("text")},
			"echo <text>", "print text", d.echo)
}

func (d *Commands) breakSet(ctx *command.Context, args []arg.Value) (command.State, error) {
	addr := args[0].U32
	d.machine.AddBreak(addr)
	if d.verbosity != VerbosityQuiet {
		fmt.Fprintf(ctx.Out, "breakpoint set at 0x%04x\n", addr%target.MemorySize)
	}
	return command.StateContinue, nil
}

func (d *Commands) breakClear(ctx *command.Context, args []arg.Value) (command.State, error) {
	addr := args[0].U32
	if !d.machine.ClearBreak(addr) {
		fmt.Fprintf(ctx.Out, "no breakpoint at 0x%04x\n", addr%target.MemorySize)
		return command.StateContinue, nil
	}
	if d.verbosity != VerbosityQuiet {
		fmt.Fprintf(ctx.Out, "breakpoint cleared at 0x%04x\n", addr%target.MemorySize)
	}
	return command.StateContinue, nil
}

func (d *Commands) breakList(ctx *command.Context, args []arg.Value) (command.State, error) {
	breaks := d.machine.Breaks()
	if len(breaks) == 0 {
		fmt.Fprintln(ctx.Out, "no breakpoints")
		return command.StateContinue, nil
	}
	for _, addr := range breaks {
		fmt.Fprintf(ctx.Out, "0x%04x\n", addr)
	}
	return command.StateContinue, nil
}

// bytesPerRow is the width of a hex dump line
const bytesPerRow = 16

func (d *Commands) memRead(ctx *command.Context, args []arg.Value) (command.State, error) {
	addr, count := args[0].U32, args[1].U16

	for i := uint32(0); i < uint32(count); i += bytesPerRow {
		fmt.Fprintf(ctx.Out, "%04x:", (addr+i)%target.MemorySize)
		for j := i; j < i+bytesPerRow && j < uint32(count); j++ {
			fmt.Fprintf(ctx.Out, " %02x", d.machine.Peek(addr+j))
		}
		fmt.Fprintln(ctx.Out)
	}
	return command.StateContinue, nil
}

func (d *Commands) memWrite(ctx *command.Context, args []arg.Value) (command.State, error) {
	addr, value := args[0].U32, args[1].U16
	if value > 0xff {
		return command.StateContinue, fmt.Errorf("value %#x does not fit one byte", value)
	}
	d.machine.Poke(addr, byte(value))
	return command.StateContinue, nil
}

func (d *Commands) memFill(ctx *command.Context, args []arg.Value) (command.State, error) {
	addr, count, fill := args[0].U32, args[1].U16, args[2].Char
	if fill > 0xff {
		return command.StateContinue, fmt.Errorf("fill character %q is not a byte", fill)
	}
	d.machine.Fill(addr, count, byte(fill))
	if d.verbosity == VerbosityVerbose {
		fmt.Fprintf(ctx.Out, "filled %d byte(s) at 0x%04x\n", count, addr%target.MemorySize)
	}
	return command.StateContinue, nil
}

func (d *Commands) regShow(ctx *command.Context, args []arg.Value) (command.State, error) {
	for _, r := range d.machine.Registers() {
		fmt.Fprintf(ctx.Out, "%-3s %0*x\n", r.Name, r.Bits/4, r.Value)
	}
	return command.StateContinue, nil
}

func (d *Commands) regSet(ctx *command.Context, args []arg.Value) (command.State, error) {
	name, value := args[0].Str, args[1].U32
	if err := d.machine.SetRegister(name, value); err != nil {
		return command.StateContinue, err
	}
	if d.verbosity == VerbosityVerbose {
		fmt.Fprintf(ctx.Out, "%s = %#x\n", name, value)
	}
	return command.StateContinue, nil
}

func (d *Commands) stepOne(ctx *command.Context, args []arg.Value) (command.State, error) {
	return d.step(ctx, 1)
}

func (d *Commands) stepN(ctx *command.Context, args []arg.Value) (command.State, error) {
	return d.step(ctx, args[0].U16)
}

func (d *Commands) step(ctx *command.Context, n uint16) (command.State, error) {
	pc, hit := d.machine.Step(n)
	if hit {
		fmt.Fprintf(ctx.Out, "breakpoint hit at 0x%04x\n", pc)
	} else if d.verbosity != VerbosityQuiet {
		fmt.Fprintf(ctx.Out, "pc = 0x%04x\n", pc)
	}
	return command.StateContinue, nil
}

func (d *Commands) run(ctx *command.Context, args []arg.Value) (command.State, error) {
	return command.StateRun, nil
}

func (d *Commands) reset(ctx *command.Context, args []arg.Value) (command.State, error) {
	d.machine.Reset()
	if d.verbosity != VerbosityQuiet {
		fmt.Fprintf(ctx.Out, "target reset, pc = 0x%04x\n", d.machine.PC())
	}
	return command.StateContinue, nil
}

func (d *Commands) trace(ctx *command.Context, args []arg.Value) (command.State, error) {
	d.machine.SetTrace(args[0].Bool)
	return command.StateContinue, nil
}

func (d *Commands) clockScale(ctx *command.Context, args []arg.Value) (command.State, error) {
	if err := d.machine.SetClockScale(args[0].F32); err != nil {
		return command.StateContinue, err
	}
	if d.verbosity == VerbosityVerbose {
		fmt.Fprintf(ctx.Out, "clock scale = %g\n", d.machine.ClockScale())
	}
	return command.StateContinue, nil
}

func (d *Commands) setVerbosity(ctx *command.Context, args []arg.Value) (command.State, error) {
	d.verbosity = args[0].EnumIndex
	return command.StateContinue, nil
}

func (d *Commands) echo(ctx *command.Context, args []arg.Value) (command.State, error) {
	fmt.Fprintln(ctx.Out, args[0].Str)
	return command.StateContinue, nil
}

// File: console_test.go
// Title: Console Engine Tests
// Description: Unit tests for single-line execution, error containment at
//              the line boundary, interactive repeat, built-in commands, and
//              the help round trip.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package console

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/msto63/dbgcon/console/arg"
	"github.com/msto63/dbgcon/console/command"
	"github.com/msto63/dbgcon/console/parser"
	dbgerror "github.com/msto63/dbgcon/core/error"
	"github.com/msto63/dbgcon/core/log"
)

// counter collects handler invocations for engine tests
type counter struct {
	calls []string
}

func (ct *counter) record(tag string) command.HandlerFunc {
	return func(ctx *command.Context, args []arg.Value) (command.State, error) {
		parts := []string{tag}
		for _, v := range args {
			parts = append(parts, v.String())
		}
		ct.calls = append(ct.calls, strings.Join(parts, " "))
		return command.StateContinue, nil
	}
}

func quietLogger() *log.Logger {
	return log.NewWithConfig(log.Config{Level: log.LevelFatal, Format: log.FormatText, Output: io.Discard})
}

func testConsole(t *testing.T, out io.Writer) (*Console, *counter) {
	t.Helper()

	ct := &counter{}
	set := command.NewSet("test").
		Register("step", nil, "step", "one instruction", ct.record("step0")).
		Register("step", []arg.Param{arg.U16("n")}, "step <n>", "n instructions", ct.record("step1")).
		Register("break set", []arg.Param{arg.U32("addr")}, "break set <addr>", "set a breakpoint", ct.record("bset")).
		Register("echo", []arg.Param{arg.String("text")}, "echo <text>", "print text",
			func(ctx *command.Context, args []arg.Value) (command.State, error) {
				fmt.Fprintln(ctx.Out, args[0].Str)
				return command.StateContinue, nil
			}).
		Register("resume", nil, "resume", "resume the target",
			func(ctx *command.Context, args []arg.Value) (command.State, error) {
				return command.StateRun, nil
			})

	con, err := New(Options{Logger: quietLogger(), Out: out}, set)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return con, ct
}

func TestExecInvokesHandler(t *testing.T) {
	con, ct := testConsole(t, io.Discard)

	state, err := con.Exec("break set x1000")
	if err != nil {
		t.Fatalf("Exec() error = %v", err)
	}
	if state != command.StateContinue {
		t.Errorf("state = %v, want continue", state)
	}
	if len(ct.calls) != 1 || ct.calls[0] != "bset 4096" {
		t.Errorf("calls = %v, want [bset 4096]", ct.calls)
	}
}

func TestExecCommentAndBlankAreNoOps(t *testing.T) {
	con, ct := testConsole(t, io.Discard)

	for _, line := range []string{"", "   ", "# a comment", "  # indented comment"} {
		state, err := con.Exec(line)
		if err != nil {
			t.Errorf("Exec(%q) error = %v", line, err)
		}
		if state != command.StateContinue {
			t.Errorf("Exec(%q) state = %v, want continue", line, state)
		}
	}
	if len(ct.calls) != 0 {
		t.Errorf("calls = %v, want none", ct.calls)
	}
}

func TestExecErrorsAreContained(t *testing.T) {
	con, ct := testConsole(t, io.Discard)

	tests := []struct {
		line string
		code dbgerror.Code
	}{
		{"bogus nonsense", dbgerror.CodeNoMatch},
		{"break set", dbgerror.CodeArgumentCount},
		{"break set zz", dbgerror.CodeArgumentType},
		{"step x10000", dbgerror.CodeArgumentType},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			state, err := con.Exec(tt.line)
			if err == nil {
				t.Fatalf("Exec(%q) should fail", tt.line)
			}
			if !dbgerror.HasCode(err, tt.code) {
				t.Errorf("code = %v, want %v", dbgerror.GetCode(err), tt.code)
			}
			if state != command.StateContinue {
				t.Errorf("state = %v, want continue", state)
			}
		})
	}

	// the console remains usable after every failure
	if _, err := con.Exec("step"); err != nil {
		t.Fatalf("Exec(step) after failures: %v", err)
	}
	if len(ct.calls) != 1 || ct.calls[0] != "step0" {
		t.Errorf("calls = %v, want [step0]", ct.calls)
	}
}

func TestExecOverloadsResolveIndependently(t *testing.T) {
	con, ct := testConsole(t, io.Discard)

	if _, err := con.Exec("step"); err != nil {
		t.Fatalf("Exec(step) error = %v", err)
	}
	if _, err := con.Exec("step d3"); err != nil {
		t.Fatalf("Exec(step d3) error = %v", err)
	}

	want := []string{"step0", "step1 3"}
	if len(ct.calls) != 2 || ct.calls[0] != want[0] || ct.calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", ct.calls, want)
	}
}

func TestExecInteractiveRepeatsLastLine(t *testing.T) {
	con, ct := testConsole(t, io.Discard)

	if _, err := con.ExecInteractive("step"); err != nil {
		t.Fatalf("ExecInteractive(step) error = %v", err)
	}

	// empty line repeats the previous successful line
	if _, err := con.ExecInteractive(""); err != nil {
		t.Fatalf("ExecInteractive(\"\") error = %v", err)
	}

	// a failing line is not recorded for repeat
	if _, err := con.ExecInteractive("bogus"); err == nil {
		t.Fatal("ExecInteractive(bogus) should fail")
	}
	if _, err := con.ExecInteractive(""); err != nil {
		t.Fatalf("repeat after failure: %v", err)
	}

	want := []string{"step0", "step0", "step0"}
	if len(ct.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", ct.calls, want)
	}
}

func TestExecInteractiveEmptyWithNoHistory(t *testing.T) {
	con, ct := testConsole(t, io.Discard)

	state, err := con.ExecInteractive("")
	if err != nil {
		t.Fatalf("ExecInteractive(\"\") error = %v", err)
	}
	if state != command.StateContinue {
		t.Errorf("state = %v, want continue", state)
	}
	if len(ct.calls) != 0 {
		t.Errorf("calls = %v, want none", ct.calls)
	}
}

func TestCommandOutput(t *testing.T) {
	var out bytes.Buffer
	con, _ := testConsole(t, &out)

	if _, err := con.Exec(`echo "hello world"`); err != nil {
		t.Fatalf("Exec() error = %v", err)
	}
	if out.String() != "hello world\n" {
		t.Errorf("output = %q, want %q", out.String(), "hello world\n")
	}
}

func TestQuitBuiltin(t *testing.T) {
	con, _ := testConsole(t, io.Discard)

	state, err := con.Exec("quit")
	if err != nil {
		t.Fatalf("Exec(quit) error = %v", err)
	}
	if state != command.StateQuit {
		t.Errorf("state = %v, want quit", state)
	}
	if !state.Terminal() {
		t.Error("quit must be terminal")
	}
}

func TestRunStateSurfaces(t *testing.T) {
	con, _ := testConsole(t, io.Discard)

	state, err := con.Exec("resume")
	if err != nil {
		t.Fatalf("Exec(resume) error = %v", err)
	}
	if state != command.StateRun {
		t.Errorf("state = %v, want run", state)
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	var out bytes.Buffer
	con, _ := testConsole(t, &out)

	if _, err := con.Exec("help"); err != nil {
		t.Fatalf("Exec(help) error = %v", err)
	}

	for _, want := range []string{"step", "step <n>", "break set <addr>", "echo <text>", "help", "quit", "set a breakpoint"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help output missing %q:\n%s", want, out.String())
		}
	}
}

func TestHelpRoundTrip(t *testing.T) {
	con, _ := testConsole(t, io.Discard)

	// every listed name, re-tokenized, must resolve back to a terminus
	// whose full name matches
	for _, info := range con.Commands() {
		tokens := parser.Tokenize(info.Name)
		node, rest, err := command.Resolve(con.root, tokens)
		if err != nil {
			t.Errorf("help entry %q does not resolve: %v", info.Name, err)
			continue
		}
		if len(rest) != 0 {
			t.Errorf("help entry %q left tokens %v", info.Name, rest)
		}
		if node.FullName() != strings.ToLower(info.Name) {
			t.Errorf("help entry %q resolved to %q", info.Name, node.FullName())
		}
	}
}

func TestRunLoop(t *testing.T) {
	var out bytes.Buffer
	con, ct := testConsole(t, &out)

	input := strings.NewReader("step\nbogus line\nquit\nstep\n")
	state, err := con.Run(input)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if state != command.StateQuit {
		t.Errorf("state = %v, want quit", state)
	}

	// the bad line is reported, the loop continues, and nothing runs
	// after quit
	if !strings.Contains(out.String(), "no such command") {
		t.Errorf("diagnostic missing from output: %q", out.String())
	}
	if len(ct.calls) != 1 {
		t.Errorf("calls = %v, want exactly the first step", ct.calls)
	}
}

func TestDuplicateOverloadAbortsConstruction(t *testing.T) {
	set := command.NewSet("dup").
		Register("x", []arg.Param{arg.U16("a")}, "", "", nopHandler).
		Register("x", []arg.Param{arg.U32("b")}, "", "", nopHandler)

	_, err := New(Options{Logger: quietLogger(), Out: io.Discard}, set)
	if err == nil {
		t.Fatal("New() must fail on duplicate overload")
	}
	if !dbgerror.HasCode(err, dbgerror.CodeDuplicateOverload) {
		t.Errorf("code = %v, want %v", dbgerror.GetCode(err), dbgerror.CodeDuplicateOverload)
	}
}

func nopHandler(ctx *command.Context, args []arg.Value) (command.State, error) {
	return command.StateContinue, nil
}

// File: script_test.go
// Title: Script Execution Tests
// Description: Unit tests for script files: comment and blank line handling,
//              recursive @file inclusion, depth limiting, and IO failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package console

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/dbgcon/console/command"
	dbgerror "github.com/msto63/dbgcon/core/error"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestExecScriptSkipsCommentsAndBlanks(t *testing.T) {
	con, ct := testConsole(t, io.Discard)
	dir := t.TempDir()

	path := writeScript(t, dir, "main.dbg", `
# leading comment

step

# another comment
step d2
`)

	state, err := con.ExecScript(path)
	if err != nil {
		t.Fatalf("ExecScript() error = %v", err)
	}
	if state != command.StateContinue {
		t.Errorf("state = %v, want continue", state)
	}

	want := []string{"step0", "step1 2"}
	if len(ct.calls) != len(want) || ct.calls[0] != want[0] || ct.calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", ct.calls, want)
	}
}

func TestExecScriptChainsChildBeforeNextLine(t *testing.T) {
	con, ct := testConsole(t, io.Discard)
	dir := t.TempDir()

	child := writeScript(t, dir, "child.dbg", "step d2\n")
	writeScript(t, dir, "main.dbg", fmt.Sprintf("step\n@%s\nstep d3\n", child))

	if _, err := con.ExecScript(filepath.Join(dir, "main.dbg")); err != nil {
		t.Fatalf("ExecScript() error = %v", err)
	}

	// the child script runs to completion between the parent's lines
	want := []string{"step0", "step1 2", "step1 3"}
	if len(ct.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", ct.calls, want)
	}
	for i := range want {
		if ct.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, ct.calls[i], want[i])
		}
	}
}

func TestExecScriptMissingFile(t *testing.T) {
	con, _ := testConsole(t, io.Discard)

	_, err := con.ExecScript(filepath.Join(t.TempDir(), "missing.dbg"))
	if err == nil {
		t.Fatal("ExecScript() should fail for a missing file")
	}
	if !dbgerror.HasCode(err, dbgerror.CodeScriptIO) {
		t.Errorf("code = %v, want %v", dbgerror.GetCode(err), dbgerror.CodeScriptIO)
	}
}

func TestExecScriptMissingChildPropagates(t *testing.T) {
	con, ct := testConsole(t, io.Discard)
	dir := t.TempDir()

	path := writeScript(t, dir, "main.dbg", "step\n@/nonexistent/child.dbg\nstep d9\n")

	_, err := con.ExecScript(path)
	if err == nil {
		t.Fatal("missing child script must abort the parent level")
	}
	if !dbgerror.HasCode(err, dbgerror.CodeScriptIO) {
		t.Errorf("code = %v, want %v", dbgerror.GetCode(err), dbgerror.CodeScriptIO)
	}

	// the line after the failing directive never runs
	if len(ct.calls) != 1 || ct.calls[0] != "step0" {
		t.Errorf("calls = %v, want [step0]", ct.calls)
	}
}

func TestExecScriptCommandErrorsAreContained(t *testing.T) {
	var out bytes.Buffer
	con, ct := testConsole(t, &out)
	dir := t.TempDir()

	path := writeScript(t, dir, "main.dbg", "step\nbogus nonsense\nstep d2\n")

	state, err := con.ExecScript(path)
	if err != nil {
		t.Fatalf("ExecScript() error = %v", err)
	}
	if state != command.StateContinue {
		t.Errorf("state = %v, want continue", state)
	}

	// the failing line is reported and the script keeps going
	if len(ct.calls) != 2 {
		t.Errorf("calls = %v, want both steps", ct.calls)
	}
	if !strings.Contains(out.String(), "no such command") {
		t.Errorf("diagnostic missing from output: %q", out.String())
	}
}

func TestExecScriptDepthLimit(t *testing.T) {
	con, _ := testConsole(t, io.Discard)
	dir := t.TempDir()

	// a script that includes itself recurses until the bound trips
	path := filepath.Join(dir, "loop.dbg")
	writeScript(t, dir, "loop.dbg", "@"+path+"\n")

	_, err := con.ExecScript(path)
	if err == nil {
		t.Fatal("self-including script must hit the depth limit")
	}
	if !dbgerror.HasCode(err, dbgerror.CodeScriptDepth) {
		t.Errorf("code = %v, want %v", dbgerror.GetCode(err), dbgerror.CodeScriptDepth)
	}
}

func TestExecScriptQuitStopsScript(t *testing.T) {
	con, ct := testConsole(t, io.Discard)
	dir := t.TempDir()

	path := writeScript(t, dir, "main.dbg", "step\nquit\nstep d5\n")

	state, err := con.ExecScript(path)
	if err != nil {
		t.Fatalf("ExecScript() error = %v", err)
	}
	if state != command.StateQuit {
		t.Errorf("state = %v, want quit", state)
	}
	if len(ct.calls) != 1 {
		t.Errorf("calls = %v, nothing may run after quit", ct.calls)
	}
}

func TestExecScriptViaAtDirective(t *testing.T) {
	con, ct := testConsole(t, io.Discard)
	dir := t.TempDir()

	path := writeScript(t, dir, "init.dbg", "step d7\n")

	// an interactive @ line transfers execution to the script
	if _, err := con.ExecInteractive("@" + path); err != nil {
		t.Fatalf("ExecInteractive(@) error = %v", err)
	}
	if len(ct.calls) != 1 || ct.calls[0] != "step1 7" {
		t.Errorf("calls = %v, want [step1 7]", ct.calls)
	}
}


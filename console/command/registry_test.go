// File: registry_test.go
// Title: Command Registry Tests
// Description: Unit tests for tree construction: path creation, overload
//              attachment, duplicate detection, and invalid registrations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package command

import (
	"testing"

	"github.com/msto63/dbgcon/console/arg"
	dbgerror "github.com/msto63/dbgcon/core/error"
)

// nop is a do-nothing handler for registry tests
func nop(ctx *Context, args []arg.Value) (State, error) {
	return StateContinue, nil
}

func TestBuildTreeSingleCommand(t *testing.T) {
	set := NewSet("test").Register("step", nil, "step", "one instruction", nop)

	root, err := BuildTree(set.Registrations())
	if err != nil {
		t.Fatalf("BuildTree() error = %v", err)
	}

	if root.IsTerminus() {
		t.Error("root must not carry handlers")
	}

	node, ok := root.Child("step")
	if !ok {
		t.Fatal("child step not found")
	}
	if !node.IsTerminus() {
		t.Error("step should be a terminus")
	}
	if node.FullName() != "step" {
		t.Errorf("FullName() = %q, want step", node.FullName())
	}
}

func TestBuildTreeMultiWordPath(t *testing.T) {
	set := NewSet("test").
		Register("break set", []arg.Param{arg.U32("addr")}, "", "", nop).
		Register("break clear", []arg.Param{arg.U32("addr")}, "", "", nop).
		Register("break list", nil, "", "", nop)

	root, err := BuildTree(set.Registrations())
	if err != nil {
		t.Fatalf("BuildTree() error = %v", err)
	}

	brk, ok := root.Child("break")
	if !ok {
		t.Fatal("child break not found")
	}
	if brk.IsTerminus() {
		t.Error("intermediate node break must not be a terminus")
	}

	words := brk.ChildWords()
	want := []string{"clear", "list", "set"}
	if len(words) != len(want) {
		t.Fatalf("ChildWords() = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("ChildWords()[%d] = %q, want %q", i, words[i], want[i])
		}
	}

	node, ok := brk.Child("set")
	if !ok {
		t.Fatal("child set not found")
	}
	if node.FullName() != "break set" {
		t.Errorf("FullName() = %q, want %q", node.FullName(), "break set")
	}
}

func TestBuildTreeNamesAreLowercased(t *testing.T) {
	set := NewSet("test").Register("Break Set", []arg.Param{arg.U32("addr")}, "", "", nop)

	root, err := BuildTree(set.Registrations())
	if err != nil {
		t.Fatalf("BuildTree() error = %v", err)
	}

	brk, ok := root.Child("break")
	if !ok {
		t.Fatal("lowercased child break not found")
	}
	if _, ok := brk.Child("set"); !ok {
		t.Error("lowercased child set not found")
	}
}

func TestBuildTreeOverloadsByArity(t *testing.T) {
	set := NewSet("test").
		Register("step", nil, "step", "", nop).
		Register("step", []arg.Param{arg.U16("n")}, "step <n>", "", nop)

	root, err := BuildTree(set.Registrations())
	if err != nil {
		t.Fatalf("BuildTree() error = %v", err)
	}

	node, _ := root.Child("step")
	if len(node.Bindings()) != 2 {
		t.Fatalf("len(Bindings()) = %d, want 2", len(node.Bindings()))
	}
}

func TestBuildTreeDuplicateOverloadFails(t *testing.T) {
	set := NewSet("test").
		Register("step", []arg.Param{arg.U16("n")}, "", "", nop).
		Register("step", []arg.Param{arg.U32("n")}, "", "", nop) // same arity

	_, err := BuildTree(set.Registrations())
	if err == nil {
		t.Fatal("duplicate overload must fail registration")
	}
	if !dbgerror.HasCode(err, dbgerror.CodeDuplicateOverload) {
		t.Errorf("error code = %v, want %v", dbgerror.GetCode(err), dbgerror.CodeDuplicateOverload)
	}
}

func TestBuildTreeEmptyNameFails(t *testing.T) {
	for _, name := range []string{"", "   "} {
		set := NewSet("test").Register(name, nil, "", "", nop)
		_, err := BuildTree(set.Registrations())
		if err == nil {
			t.Fatalf("name %q must fail registration", name)
		}
		if !dbgerror.HasCode(err, dbgerror.CodeEmptyCommandName) {
			t.Errorf("error code = %v, want %v", dbgerror.GetCode(err), dbgerror.CodeEmptyCommandName)
		}
	}
}

func TestBuildTreeNilHandlerFails(t *testing.T) {
	set := NewSet("test").Register("step", nil, "", "", nil)
	if _, err := BuildTree(set.Registrations()); err == nil {
		t.Fatal("nil handler must fail registration")
	}
}

func TestTerminusWithChildren(t *testing.T) {
	// a short command and a longer command sharing a prefix word
	set := NewSet("test").
		Register("reg", nil, "", "", nop).
		Register("reg set", []arg.Param{arg.String("name"), arg.U32("value")}, "", "", nop)

	root, err := BuildTree(set.Registrations())
	if err != nil {
		t.Fatalf("BuildTree() error = %v", err)
	}

	reg, _ := root.Child("reg")
	if !reg.IsTerminus() {
		t.Error("reg should be a terminus")
	}
	if !reg.HasChildren() {
		t.Error("reg should still have children")
	}
}

func TestBindingArityIgnoresArrays(t *testing.T) {
	b := &Binding{Params: []arg.Param{
		arg.U32("addr"),
		{Kind: arg.KindArray, Name: "data"},
	}}

	if b.Arity() != 1 {
		t.Errorf("Arity() = %d, want 1", b.Arity())
	}
}

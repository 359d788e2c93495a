// ABOUTME: Tests for system command registration, aliases, and dispatch
// ABOUTME: Commands run against a stub context; no calculator required

package repl

import (
	"fmt"
	"strings"
	"testing"
)

func stubContext() *Context {
	return &Context{
		History: func() []string { return nil },
		Clear:   func() {},
		Undo:    func() bool { return false },
		Redo:    func() bool { return false },
		Save:    func() error { return nil },
		Load:    func() error { return nil },
		Quit:    func() {},
		Help:    func() string { return "help text" },
	}
}

func TestResolveAlias(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"+":    "add",
		"-":    "subtract",
		"*":    "multiply",
		"/":    "divide",
		"^":    "power",
		"**":   "power",
		"%":    "modulus",
		"//":   "integer_division",
		"abs":  "absolute_difference",
		"rt":   "root",
		"q":    "exit",
		"quit": "exit",
		"hist": "history",
		"u":    "undo",
		"z":    "redo",
		"?":    "help",
	}
	for input, want := range cases {
		if got := ResolveAlias(input); got != want {
			t.Errorf("ResolveAlias(%q) = %q, want %q", input, got, want)
		}
	}

	if got := ResolveAlias("unmapped"); got != "unmapped" {
		t.Errorf("ResolveAlias passthrough = %q, want unmapped", got)
	}
}

func TestRegistryCoreCommands(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, name := range []string{"help", "history", "clear", "undo", "redo", "save", "load", "exit"} {
		if _, ok := r.Get(name); !ok {
			t.Errorf("core command %q not registered", name)
		}
	}
}

func TestRegistryListSorted(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	list := r.List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Fatalf("List not sorted: %s before %s", list[i-1].Name, list[i].Name)
		}
	}
}

func TestDispatchHistoryEmpty(t *testing.T) {
	t.Parallel()

	out, err := NewRegistry().Dispatch(stubContext(), "history")
	if err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if out != "No calculations in history" {
		t.Errorf("output = %q", out)
	}
}

func TestDispatchHistoryNumbered(t *testing.T) {
	t.Parallel()

	ctx := stubContext()
	ctx.History = func() []string {
		return []string{"Addition(2, 3) = 5", "Division(1, 3) = 0.3333333333"}
	}

	out, err := NewRegistry().Dispatch(ctx, "history")
	if err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	for _, want := range []string{"Calculation History:", "1. Addition(2, 3) = 5", "2. Division(1, 3) = 0.3333333333"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestDispatchUndoRedoMessages(t *testing.T) {
	t.Parallel()

	ctx := stubContext()
	r := NewRegistry()

	out, _ := r.Dispatch(ctx, "undo")
	if out != "Nothing to undo" {
		t.Errorf("undo on empty = %q", out)
	}
	out, _ = r.Dispatch(ctx, "redo")
	if out != "Nothing to redo" {
		t.Errorf("redo on empty = %q", out)
	}

	ctx.Undo = func() bool { return true }
	ctx.Redo = func() bool { return true }
	out, _ = r.Dispatch(ctx, "undo")
	if out != "Operation undone" {
		t.Errorf("undo = %q", out)
	}
	out, _ = r.Dispatch(ctx, "redo")
	if out != "Operation redone" {
		t.Errorf("redo = %q", out)
	}
}

func TestDispatchClearAndAliases(t *testing.T) {
	t.Parallel()

	cleared := false
	ctx := stubContext()
	ctx.Clear = func() { cleared = true }

	// "c" resolves to clear through the alias table.
	out, err := NewRegistry().Dispatch(ctx, "c")
	if err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if !cleared {
		t.Error("clear callback not invoked")
	}
	if out != "History cleared" {
		t.Errorf("output = %q", out)
	}
}

func TestDispatchSaveLoadErrors(t *testing.T) {
	t.Parallel()

	ctx := stubContext()
	ctx.Save = func() error { return fmt.Errorf("disk full") }
	ctx.Load = func() error { return fmt.Errorf("corrupt file") }
	r := NewRegistry()

	if _, err := r.Dispatch(ctx, "save"); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("save error = %v", err)
	}
	if _, err := r.Dispatch(ctx, "load"); err == nil || !strings.Contains(err.Error(), "corrupt file") {
		t.Errorf("load error = %v", err)
	}
}

func TestDispatchExitQuits(t *testing.T) {
	t.Parallel()

	quit := false
	ctx := stubContext()
	ctx.Quit = func() { quit = true }

	if _, err := NewRegistry().Dispatch(ctx, "exit"); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if !quit {
		t.Error("exit did not invoke Quit")
	}
}

func TestDispatchUnknown(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry().Dispatch(stubContext(), "frobnicate")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("error = %v", err)
	}
}

// ABOUTME: Read-eval-print loop driving the calculator from line input
// ABOUTME: Reads from any io.Reader so tests can script full sessions

package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/dstefano/abaco/internal/calc"
)

// Loop runs the interactive calculator session.
type Loop struct {
	calc     *calc.Calculator
	registry *Registry
	scanner  *bufio.Scanner
	out      io.Writer
	styles   Styles
	quit     bool
}

// New creates a Loop reading commands from in and writing to out. Styling
// is applied only when styled is true (stdout is a terminal).
func New(calculator *calc.Calculator, in io.Reader, out io.Writer, styled bool) *Loop {
	return &Loop{
		calc:     calculator,
		registry: NewRegistry(),
		scanner:  bufio.NewScanner(in),
		out:      out,
		styles:   NewStyles(styled),
	}
}

// Run processes commands until exit or end of input. Exit saves the history
// first; end of input does not.
func (l *Loop) Run() error {
	ctx := l.context()

	fmt.Fprintln(l.out, "Calculator started. Type 'help' for commands.")

	for !l.quit {
		line, ok := l.readLine("\nEnter command: ")
		if !ok {
			fmt.Fprintln(l.out, l.styles.Error("Input terminated. Exiting..."))
			break
		}

		command := ResolveAlias(strings.ToLower(strings.TrimSpace(line)))
		if command == "" {
			continue
		}

		if command == "exit" {
			l.saveOnExit()
			fmt.Fprintln(l.out, "Goodbye!")
			break
		}

		if _, ok := l.registry.Get(command); ok {
			out, err := l.registry.Dispatch(ctx, command)
			if err != nil {
				fmt.Fprintln(l.out, l.styles.Error(fmt.Sprintf("Error: %v", err)))
				continue
			}
			if out != "" {
				fmt.Fprintln(l.out, out)
			}
			continue
		}

		if op, err := calc.ParseOp(command); err == nil {
			l.runOperation(op)
			continue
		}

		l.unknownCommand(command)
	}

	return l.scanner.Err()
}

// context wires the command registry callbacks to the calculator.
func (l *Loop) context() *Context {
	return &Context{
		History: func() []string {
			history := l.calc.History()
			entries := make([]string, len(history))
			for i, c := range history {
				entries[i] = c.String()
			}
			return entries
		},
		Clear: l.calc.ClearHistory,
		Undo:  l.calc.Undo,
		Redo:  l.calc.Redo,
		Save:  l.calc.SaveHistory,
		Load:  l.calc.LoadHistory,
		Quit:  func() { l.quit = true },
		Help:  func() string { return RenderHelp(l.styles.enabled) },
	}
}

// runOperation prompts for two operands and performs the calculation.
// Entering "cancel" at either prompt aborts without state change.
func (l *Loop) runOperation(op calc.Op) {
	fmt.Fprintln(l.out, "\nEnter numbers (or 'cancel' to abort):")

	a, ok := l.readLine("First number: ")
	if !ok || strings.EqualFold(strings.TrimSpace(a), "cancel") {
		fmt.Fprintln(l.out, "Operation cancelled")
		return
	}
	b, ok := l.readLine("Second number: ")
	if !ok || strings.EqualFold(strings.TrimSpace(b), "cancel") {
		fmt.Fprintln(l.out, "Operation cancelled")
		return
	}

	l.calc.SetOperation(op)
	result, err := l.calc.PerformOperation(a, b)
	if err != nil {
		var valErr *calc.ValidationError
		var opErr *calc.OperationError
		if errors.As(err, &valErr) || errors.As(err, &opErr) {
			fmt.Fprintln(l.out, l.styles.Error(fmt.Sprintf("Error: %v", err)))
		} else {
			fmt.Fprintln(l.out, l.styles.Error(fmt.Sprintf("Unexpected error: %v", err)))
		}
		return
	}

	formatted := calc.FormatDecimal(result, l.calc.Config().Precision)
	fmt.Fprintln(l.out, l.styles.Result(fmt.Sprintf("\nResult: %s", formatted)))
}

// unknownCommand reports an unrecognized command with a fuzzy suggestion.
func (l *Loop) unknownCommand(command string) {
	msg := fmt.Sprintf("Unknown command: '%s'.", command)
	if suggestion := l.suggest(command); suggestion != "" {
		msg += fmt.Sprintf(" Did you mean '%s'?", suggestion)
	}
	msg += " Type 'help' for available commands."
	fmt.Fprintln(l.out, l.styles.Error(msg))
}

// suggest returns the best fuzzy match for the misspelled command, if any.
func (l *Loop) suggest(command string) string {
	names := commandNames(l.registry)
	matches := fuzzy.Find(command, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// commandNames collects every dispatchable canonical name.
func commandNames(r *Registry) []string {
	var names []string
	for _, cmd := range r.List() {
		names = append(names, cmd.Name)
	}
	names = append(names,
		"add", "subtract", "multiply", "divide", "power", "root",
		"modulus", "integer_division", "percentage", "absolute_difference")
	return names
}

// readLine prints the prompt and reads one line. The second return value is
// false at end of input.
func (l *Loop) readLine(prompt string) (string, bool) {
	fmt.Fprint(l.out, prompt)
	if !l.scanner.Scan() {
		return "", false
	}
	return l.scanner.Text(), true
}

// saveOnExit persists history before quitting, reporting failure without
// blocking the exit.
func (l *Loop) saveOnExit() {
	if err := l.calc.SaveHistory(); err != nil {
		fmt.Fprintln(l.out, l.styles.Error(fmt.Sprintf("Warning: Could not save history: %v", err)))
		return
	}
	fmt.Fprintln(l.out, "History saved successfully.")
}

// ABOUTME: System command registry and alias resolution for the REPL
// ABOUTME: Commands run against a callback context; arithmetic is dispatched separately

package repl

import (
	"fmt"
	"sort"
	"strings"
)

// Command represents one system command.
type Command struct {
	Name        string
	Description string
	Execute     func(ctx *Context, args string) (string, error)
}

// Context provides access to calculator state for commands.
type Context struct {
	History func() []string
	Clear   func()
	Undo    func() bool
	Redo    func() bool
	Save    func() error
	Load    func() error

	// Quit ends the REPL loop after the current command.
	Quit func()

	// Help renders the help screen.
	Help func() string
}

// aliases maps abbreviations to canonical command or operation names.
var aliases = map[string]string{
	"a":       "add",
	"+":       "add",
	"s":       "subtract",
	"sub":     "subtract",
	"-":       "subtract",
	"m":       "multiply",
	"mul":     "multiply",
	"*":       "multiply",
	"d":       "divide",
	"div":     "divide",
	"/":       "divide",
	"p":       "power",
	"pow":     "power",
	"^":       "power",
	"**":      "power",
	"mod":     "modulus",
	"%":       "modulus",
	"id":      "integer_division",
	"idiv":    "integer_division",
	"//":      "integer_division",
	"per":     "percentage",
	"pct":     "percentage",
	"ad":      "absolute_difference",
	"abs":     "absolute_difference",
	"absdiff": "absolute_difference",
	"r":       "root",
	"rt":      "root",
	"h":       "help",
	"?":       "help",
	"q":       "exit",
	"quit":    "exit",
	"x":       "exit",
	"hist":    "history",
	"c":       "clear",
	"u":       "undo",
	"z":       "redo",
}

// ResolveAlias maps an abbreviation to its canonical name. Unknown input is
// returned unchanged.
func ResolveAlias(input string) string {
	if canonical, ok := aliases[input]; ok {
		return canonical
	}
	return input
}

// Registry holds all registered system commands.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry creates a registry with all core commands registered.
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]*Command)}
	r.registerCoreCommands()
	return r
}

// Get returns a command by canonical name.
func (r *Registry) Get(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all commands sorted by name for deterministic output.
func (r *Registry) List() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Dispatch resolves aliases, looks up the command, and executes it.
func (r *Registry) Dispatch(ctx *Context, input string) (string, error) {
	name := ResolveAlias(strings.TrimSpace(input))
	cmd, ok := r.commands[name]
	if !ok {
		return "", fmt.Errorf("unknown command: %s", name)
	}
	return cmd.Execute(ctx, "")
}

// registerCoreCommands adds the built-in system commands.
func (r *Registry) registerCoreCommands() {
	core := []*Command{
		{
			Name:        "help",
			Description: "Show available commands",
			Execute: func(ctx *Context, _ string) (string, error) {
				return ctx.Help(), nil
			},
		},
		{
			Name:        "history",
			Description: "Show calculation history",
			Execute: func(ctx *Context, _ string) (string, error) {
				entries := ctx.History()
				if len(entries) == 0 {
					return "No calculations in history", nil
				}
				var b strings.Builder
				b.WriteString("\nCalculation History:")
				for i, entry := range entries {
					fmt.Fprintf(&b, "\n%d. %s", i+1, entry)
				}
				return b.String(), nil
			},
		},
		{
			Name:        "clear",
			Description: "Clear calculation history",
			Execute: func(ctx *Context, _ string) (string, error) {
				ctx.Clear()
				return "History cleared", nil
			},
		},
		{
			Name:        "undo",
			Description: "Undo the last calculation",
			Execute: func(ctx *Context, _ string) (string, error) {
				if ctx.Undo() {
					return "Operation undone", nil
				}
				return "Nothing to undo", nil
			},
		},
		{
			Name:        "redo",
			Description: "Redo the last undone calculation",
			Execute: func(ctx *Context, _ string) (string, error) {
				if ctx.Redo() {
					return "Operation redone", nil
				}
				return "Nothing to redo", nil
			},
		},
		{
			Name:        "save",
			Description: "Save calculation history to file",
			Execute: func(ctx *Context, _ string) (string, error) {
				if err := ctx.Save(); err != nil {
					return "", fmt.Errorf("saving history: %w", err)
				}
				return "History saved successfully", nil
			},
		},
		{
			Name:        "load",
			Description: "Load calculation history from file",
			Execute: func(ctx *Context, _ string) (string, error) {
				if err := ctx.Load(); err != nil {
					return "", fmt.Errorf("loading history: %w", err)
				}
				return "History loaded successfully", nil
			},
		},
		{
			Name:        "exit",
			Description: "Exit the calculator",
			Execute: func(ctx *Context, _ string) (string, error) {
				ctx.Quit()
				return "", nil
			},
		},
	}
	for _, cmd := range core {
		r.commands[cmd.Name] = cmd
	}
}

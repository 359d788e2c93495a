// ABOUTME: Markdown help screen rendered through glamour
// ABOUTME: Falls back to the raw markdown when rendering fails or styling is off

package repl

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# abaco commands

## Arithmetic operations

| Command | Aliases | Description |
|---|---|---|
| add | a, + | Addition |
| subtract | s, sub, - | Subtraction |
| multiply | m, mul, * | Multiplication |
| divide | d, div, / | Division |
| power | p, pow, ^, ** | Exponentiation |
| modulus | mod, % | Remainder after division |
| integer_division | id, idiv, // | Integer division |
| percentage | per, pct | Percentage of operand2 |
| absolute_difference | ad, abs, absdiff | Absolute difference |
| root | r, rt | Nth root |

## System commands

| Command | Aliases | Description |
|---|---|---|
| help | h, ? | Show this help |
| history | hist | Show calculation history |
| clear | c | Clear calculation history |
| undo | u | Undo the last calculation |
| redo | z | Redo the last undone calculation |
| save |  | Save calculation history to file |
| load |  | Load calculation history from file |
| exit | q, quit, x | Exit the calculator |
`

const helpWidth = 80

// RenderHelp returns the terminal-styled help screen. When styling is
// disabled, or glamour fails, the raw markdown is returned.
func RenderHelp(styled bool) string {
	if !styled {
		return helpMarkdown
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(helpWidth),
	)
	if err != nil {
		return helpMarkdown
	}

	rendered, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(rendered, "\n ")
}

// ABOUTME: Lipgloss styles for REPL output
// ABOUTME: Styling is disabled wholesale when stdout is not a terminal

package repl

import "github.com/charmbracelet/lipgloss"

// Styles holds the render styles for REPL output.
type Styles struct {
	enabled bool
	err     lipgloss.Style
	result  lipgloss.Style
	info    lipgloss.Style
}

// NewStyles builds the default style set. With enabled false every render
// returns the input unchanged.
func NewStyles(enabled bool) Styles {
	return Styles{
		enabled: enabled,
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		result:  lipgloss.NewStyle().Bold(true),
		info:    lipgloss.NewStyle().Faint(true),
	}
}

// Error renders an error line.
func (s Styles) Error(text string) string {
	if !s.enabled {
		return text
	}
	return s.err.Render(text)
}

// Result renders a calculation result.
func (s Styles) Result(text string) string {
	if !s.enabled {
		return text
	}
	return s.result.Render(text)
}

// Info renders secondary information.
func (s Styles) Info(text string) string {
	if !s.enabled {
		return text
	}
	return s.info.Render(text)
}

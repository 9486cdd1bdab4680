package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Colour palette for terminal output.
var (
	colourPrimary = lipgloss.Color("#7C3AED")
	colourMuted   = lipgloss.Color("#6C7086")
	colourError   = lipgloss.Color("#F38BA8")
)

// styles holds the lipgloss styles used for terminal output.
type styles struct {
	header lipgloss.Style
	id     lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
}

func newStyles() styles {
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(colourPrimary),
		id:     lipgloss.NewStyle().Bold(true),
		muted:  lipgloss.NewStyle().Foreground(colourMuted),
		err:    lipgloss.NewStyle().Foreground(colourError),
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

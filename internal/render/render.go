// Package render provides the display and history sinks the calculator
// pushes to: lipgloss-styled terminal output and an in-memory recorder.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used by the terminal renderer and the TUI.
var (
	DisplayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(24).
			Align(lipgloss.Right).
			Bold(true)

	ErrorStyle = DisplayStyle.Foreground(lipgloss.Color("196"))

	HistoryTitleStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("245"))
	HistoryItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(1)
	PendingStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Align(lipgloss.Right).Width(26)
)

// Display renders a display value as a bordered box. The sentinel "Error"
// is highlighted.
func Display(value string) string {
	if value == "" {
		value = " "
	}
	if value == "Error" {
		return ErrorStyle.Render(value)
	}
	return DisplayStyle.Render(value)
}

// History renders the history list, most recent first.
func History(entries []string) string {
	var b strings.Builder
	b.WriteString(HistoryTitleStyle.Render("History"))
	if len(entries) == 0 {
		b.WriteString("\n")
		b.WriteString(HistoryItemStyle.Render("(empty)"))
		return b.String()
	}
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(HistoryItemStyle.Render(e))
	}
	return b.String()
}

// Terminal writes every notification to an io.Writer. Write errors are
// dropped: sinks cannot fail.
type Terminal struct {
	w     io.Writer
	plain bool
}

// NewTerminal creates a Terminal writing styled output to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// NewPlainTerminal creates a Terminal writing unstyled lines to w.
func NewPlainTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, plain: true}
}

func (t *Terminal) RenderDisplay(value string) {
	if t.plain {
		_, _ = fmt.Fprintf(t.w, "display: %s\n", value)
		return
	}
	_, _ = fmt.Fprintln(t.w, Display(value))
}

func (t *Terminal) RenderHistory(entries []string) {
	if t.plain {
		_, _ = fmt.Fprintf(t.w, "history: %s\n", strings.Join(entries, " | "))
		return
	}
	_, _ = fmt.Fprintln(t.w, History(entries))
}

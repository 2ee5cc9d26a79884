// Package tui is the interactive terminal front end: a bubbletea program
// whose key presses go through the key map and whose view shows the display
// and history sinks.
package tui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mamaar/gocalc/internal/render"
	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/keymap"
)

// keyAliases maps bubbletea key names to key-map keys.
var keyAliases = map[string]string{
	"enter":     "Enter",
	"esc":       "Escape",
	"backspace": "Backspace",
	"s":         "sin",
	"c":         "cos",
	"t":         "tan",
	"r":         "sqrt",
	"q":         "square",
	"p":         "pow",
}

var (
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Model is the bubbletea model wrapping one calculator.
type Model struct {
	calc   *calculator.Calculator
	rec    *render.Recorder
	logger *slog.Logger
	status string
}

// NewModel creates a Model with a calculator keeping historyLimit entries.
func NewModel(logger *slog.Logger, historyLimit int) Model {
	rec := &render.Recorder{}
	calc := calculator.New(
		calculator.WithDisplay(rec),
		calculator.WithHistory(rec),
		calculator.WithLogger(logger),
		calculator.WithHistoryLimit(historyLimit),
	)
	calc.Refresh()
	return Model{calc: calc, rec: rec, logger: logger}
}

// Calculator exposes the wrapped calculator.
func (m Model) Calculator() *calculator.Calculator {
	return m.calc
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	name := key.String()
	if name == "ctrl+c" {
		return m, tea.Quit
	}
	if alias, ok := keyAliases[name]; ok {
		name = alias
	}

	m.status = ""
	if err := keymap.Dispatch(m.calc, name); err != nil {
		m.logger.Debug("key ignored", "key", name, "err", err)
		m.status = err.Error()
	}
	return m, nil
}

func (m Model) View() string {
	st := m.calc.Snapshot()

	var b strings.Builder
	b.WriteString(render.PendingStyle.Render(st.Expression()))
	b.WriteString("\n")
	b.WriteString(render.Display(m.rec.Display()))
	b.WriteString("\n\n")
	b.WriteString(render.History(m.rec.History()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(legend()))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.status))
	}
	if st.Stalled() {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("pow is armed but = cannot resolve it; press Esc or another operator"))
	}
	b.WriteString("\n")
	return b.String()
}

func legend() string {
	var parts []string
	for _, letter := range []string{"s", "c", "t", "r", "q", "p"} {
		a, err := keymap.Lookup(keyAliases[letter])
		if err != nil {
			continue
		}
		parts = append(parts, letter+" "+a.Label())
	}
	return "0-9 . + - * / %  Enter =  Esc clear  Backspace delete\n" + strings.Join(parts, "  ") + "  ctrl+c quit"
}

package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/tui"
)

// tuiLogFile receives debug logs while the terminal belongs to bubbletea.
const tuiLogFile = "gocalc-debug.log"

// TUICommand starts the interactive calculator
func TUICommand(args []string) {
	if len(args) > 0 {
		fmt.Println(`TUI Command - Interactive terminal calculator

Usage: gocalc [options] tui

Type digits, operators, Enter, Escape and Backspace as on a keyboard.
Letters reach the controls: s sin, c cos, t tan, r sqrt, q square, p pow.
Press ctrl+c to quit. With --debug, logs go to ` + tuiLogFile + `.`)
		return
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		fail(err)
	}
	defer closeLog()

	model := tui.NewModel(logger, *cli.Current().HistoryLimit)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fail(err)
	}
}

func tuiLogger() (*slog.Logger, func(), error) {
	if !*cli.Current().Debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

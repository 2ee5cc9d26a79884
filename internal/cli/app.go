package cli

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/mamaar/gocalc/pkg/calculator"
)

// App represents the gocalc application
type App struct {
	flags *Flags
}

// NewApp creates a new application instance
func NewApp() *App {
	return &App{}
}

// Initialize sets up the application with flags and configuration
func (app *App) Initialize() {
	log.SetFlags(0) // Remove timestamp from log output
	ParseFlags(Usage)
	app.flags = GlobalFlags
}

// Run executes the application logic with the provided runner
func (app *App) Run(runner *Runner) {
	if *app.flags.Version {
		ShowVersion()
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		Usage()
		os.Exit(1)
	}

	runner.Execute(args[0], args[1:])
}

// NewLogger creates the stderr logger configured by the command line flags
func NewLogger() *slog.Logger {
	level := slog.LevelWarn
	if *Current().Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// CalculatorOptions returns the calculator options configured by the command line flags
func CalculatorOptions(logger *slog.Logger) []calculator.Option {
	return []calculator.Option{
		calculator.WithLogger(logger),
		calculator.WithHistoryLimit(*Current().HistoryLimit),
	}
}

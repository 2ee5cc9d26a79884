package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/keymap"
)

// EvalCommand presses the given keys on a fresh calculator and prints the
// final state
func EvalCommand(args []string) {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printEvalHelp()
		if len(args) == 0 {
			os.Exit(1)
		}
		return
	}

	if err := runEval(os.Stdout, args); err != nil {
		fail(err)
	}
}

func runEval(w io.Writer, args []string) error {
	calc := newCalculator(w, cli.NewLogger())
	for _, key := range evalKeys(args) {
		if err := keymap.Dispatch(calc, key); err != nil {
			return err
		}
	}
	return reportState(w, calc.Snapshot())
}

// evalKeys splits every argument on whitespace so a whole quoted expression
// works as well as one key per argument.
func evalKeys(args []string) []string {
	var keys []string
	for _, arg := range args {
		keys = append(keys, strings.Fields(arg)...)
	}
	return keys
}

func printEvalHelp() {
	fmt.Println(`Eval Command - Press keys on a fresh calculator

Usage: gocalc [options] eval <key>...

Arguments:
  key   A keyboard key (0-9 . + - * / Enter = Escape Backspace) or a
        control name (sqrt square pow sin cos tan mod clear delete equals).
        Arguments containing spaces are split into several keys.

The final display is printed, followed by the pending operation and the
history. Use --json or --dump for machine-readable output and --verbose to
see every intermediate display.

Examples:
  gocalc eval 6 + 3 Enter
  gocalc eval "1 2 + 3 0 Enter sqrt"
  gocalc --json eval 9 0 sin`)
}

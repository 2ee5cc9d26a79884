package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/render"
	"github.com/mamaar/gocalc/pkg/calculator"
)

// OutputJSON outputs data as JSON
func OutputJSON(data interface{}) {
	if err := writeJSON(os.Stdout, data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// fail prints err and exits with status 1.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newCalculator creates a calculator configured by the global flags. With
// -verbose every display and history update is echoed to w.
func newCalculator(w io.Writer, logger *slog.Logger) *calculator.Calculator {
	opts := cli.CalculatorOptions(logger)
	flags := cli.Current()
	if *flags.Verbose && !*flags.Json {
		term := render.NewPlainTerminal(w)
		opts = append(opts, calculator.WithDisplay(term), calculator.WithHistory(term))
	}
	return calculator.New(opts...)
}

// reportState writes the final calculator state in the format selected by
// the global flags.
func reportState(w io.Writer, st calculator.State) error {
	flags := cli.Current()
	switch {
	case *flags.Json:
		return writeJSON(w, st)
	case *flags.Dump:
		spew.Fdump(w, st)
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", st.Current)
	if st.Pending() {
		fmt.Fprintf(&b, "pending: %s\n", st.Expression())
	}
	if st.Stalled() {
		fmt.Fprintf(&b, "warning: %s is never resolved by evaluate; clear or pick another operator\n", st.Operator)
	}
	if len(st.History) > 0 {
		b.WriteString("\nHistory:\n")
		for _, entry := range st.History {
			fmt.Fprintf(&b, "  %s\n", entry)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

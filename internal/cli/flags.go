package cli

import (
	"flag"

	"github.com/mamaar/gocalc/pkg/calculator"
)

// Flags holds all command line flags
type Flags struct {
	Version      *bool
	Json         *bool
	Verbose      *bool
	Debug        *bool
	Dump         *bool
	HistoryLimit *int
}

// GlobalFlags holds the parsed command line flags
var GlobalFlags *Flags

// InitFlags initializes all command line flags
func InitFlags() *Flags {
	return &Flags{
		Version:      flag.Bool("version", false, "Show version information"),
		Json:         flag.Bool("json", false, "Output results in JSON format"),
		Verbose:      flag.Bool("verbose", false, "Print every display and history update"),
		Debug:        flag.Bool("debug", false, "Enable debug logging"),
		Dump:         flag.Bool("dump", false, "Dump the final calculator state"),
		HistoryLimit: flag.Int("history-limit", calculator.DefaultHistoryLimit, "Number of history entries to keep"),
	}
}

// ParseFlags parses command line flags with custom usage
func ParseFlags(usage func()) {
	if GlobalFlags == nil {
		GlobalFlags = InitFlags()
	}
	flag.Usage = usage
	flag.Parse()
}

// DefaultFlags returns flags holding default values, for callers that run
// commands without parsing a command line.
func DefaultFlags() *Flags {
	f, v, d, dump, json := false, false, false, false, false
	limit := calculator.DefaultHistoryLimit
	return &Flags{
		Version:      &f,
		Json:         &json,
		Verbose:      &v,
		Debug:        &d,
		Dump:         &dump,
		HistoryLimit: &limit,
	}
}

// Current returns GlobalFlags, or defaults when flags were never parsed.
func Current() *Flags {
	if GlobalFlags == nil {
		return DefaultFlags()
	}
	return GlobalFlags
}

package commands

import (
	"fmt"
	"os"

	"github.com/mamaar/gocalc/internal/cli"
)

// HelpCommand handles help requests for specific commands
func HelpCommand(args []string) {
	if len(args) == 0 {
		cli.Usage()
		return
	}

	switch args[0] {
	case "eval":
		printEvalHelp()
	case "replay":
		printReplayHelp()
	case "mcp":
		printMCPHelp()
	case "tui":
		TUICommand([]string{"--help"})
	case "version":
		VersionCommand([]string{"--help"})
	case "keys":
		fmt.Println(`Keys Command - List keyboard keys and control names

Usage: gocalc [--json] keys

Keys are matched exactly; control names ignore case.`)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		cli.Usage()
		os.Exit(1)
	}
}

// Register adds every gocalc command to the runner
func Register(runner *cli.Runner) {
	runner.RegisterCommand("tui", TUICommand)
	runner.RegisterCommand("eval", EvalCommand)
	runner.RegisterCommand("replay", ReplayCommand)
	runner.RegisterCommand("keys", KeysCommand)
	runner.RegisterCommand("mcp", MCPCommand)
	runner.RegisterCommand("version", VersionCommand)
	runner.RegisterCommand("help", HelpCommand)
}

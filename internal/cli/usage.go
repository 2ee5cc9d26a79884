package cli

import (
	"flag"
	"fmt"
	"os"
)

// Usage prints the usage information for the gocalc command
func Usage() {
	fmt.Fprintf(os.Stderr, `gocalc - a four-function calculator with history

Usage: gocalc [options] <command> [arguments]

Commands:
  tui
    Start the interactive terminal calculator

  eval <key>...
    Press keys in order and print the final display and history
    Example: gocalc eval 6 + 3 Enter

  replay [-watch] [-debounce 200ms] <tape>
    Replay a key script; with -watch, replay again whenever it changes

  keys
    List keyboard keys and control names

  mcp [-http <addr>]
    Serve the calculator as MCP tools over stdio or streamable HTTP

  version
    Show version information

  help [command]
    Show help for a command

Keys:
  0-9 .        append to the current operand
  + - * /      set the pending operator
  Enter =      evaluate
  Escape       clear (history is kept)
  Backspace    delete the last character
  sqrt square pow sin cos tan mod    controls, usable wherever a key is

Options:
`)
	flag.PrintDefaults()
}

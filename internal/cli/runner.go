package cli

import (
	"fmt"
	"os"
	"sort"
)

// CommandFunc represents a command function signature
type CommandFunc func([]string)

// Runner handles command routing and execution
type Runner struct {
	commands map[string]CommandFunc
}

// NewRunner creates a new command runner
func NewRunner() *Runner {
	return &Runner{
		commands: make(map[string]CommandFunc),
	}
}

// RegisterCommand registers a command handler
func (r *Runner) RegisterCommand(name string, fn CommandFunc) {
	r.commands[name] = fn
}

// Lookup returns the handler registered for a command
func (r *Runner) Lookup(command string) (CommandFunc, bool) {
	fn, ok := r.commands[command]
	return fn, ok
}

// Execute runs the specified command with arguments
func (r *Runner) Execute(command string, args []string) {
	if fn, ok := r.Lookup(command); ok {
		fn(args)
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		Usage()
		os.Exit(1)
	}
}

// Commands returns the registered command names in sorted order
func (r *Runner) Commands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

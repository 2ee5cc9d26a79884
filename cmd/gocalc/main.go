package main

import (
	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/cli/commands"
)

func main() {
	app := cli.NewApp()
	app.Initialize()

	runner := cli.NewRunner()
	commands.Register(runner)
	app.Run(runner)
}

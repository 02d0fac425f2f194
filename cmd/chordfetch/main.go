package main

import (
	"os"

	"chordfetch/cmd/cli"
	"chordfetch/cmd/tui"
)

func main() {
	// With no arguments, run the interactive TUI.
	// Otherwise hand the arguments to the CLI.
	if len(os.Args) <= 1 {
		tui.RunTUI()
	} else {
		cli.RunCLI()
	}
}

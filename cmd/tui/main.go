// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"
	"os"

	"chordfetch/internal/logger"
	"chordfetch/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI initializes and runs the Bubble Tea application. Bubble Tea owns the
// terminal for the duration of the program and restores it on every exit
// path, including errors; a run error here means the terminal layer itself
// failed, which is fatal.
func RunTUI() {
	logger.Init(true)

	m := ui.InitialModel(ui.DefaultDeps())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

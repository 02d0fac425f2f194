// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the TUI application.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Quit     key.Binding // Exit the application (navigation only)
	EnterURL key.Binding // Begin URL entry
	Commit   key.Binding // Fetch the entered URL
	Cancel   key.Binding // Abandon URL entry
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	EnterURL: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "enter URL"),
	),
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "fetch"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

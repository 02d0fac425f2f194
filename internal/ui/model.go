// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// state represents the different modes of the TUI.
type state int

const (
	stateNavigation state = iota // showing the last status message
	stateURLEntry                // editing the URL buffer
	stateFetching                // a commit is in flight
)

// model is the single mutable state container for the session.
type model struct {
	currentState state
	urlInput     textinput.Model // the URL buffer, meaningful only in URL entry
	status       string          // last fetch outcome, shown in navigation
	statusErr    bool            // whether status reports a failure
	spin         spinner.Model
	keymap       KeyMap
	deps         Deps
	width        int
	height       int
}

// InitialModel builds the session in navigation mode with an empty buffer.
func InitialModel(deps Deps) model {
	ti := textinput.New()
	ti.Placeholder = "https://..."
	ti.Prompt = "> "
	ti.TextStyle = inputStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return model{
		currentState: stateNavigation,
		urlInput:     ti,
		spin:         sp,
		keymap:       DefaultKeyMap,
		deps:         deps,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.urlInput.Width = msg.Width - 6

	case tea.KeyMsg:
		switch m.currentState {
		case stateNavigation:
			return m.handleNavigationKeys(msg)
		case stateURLEntry:
			return m.handleURLEntryKeys(msg)
		case stateFetching:
			// No cancellation for an in-flight fetch; only a hard quit.
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		if m.currentState == stateFetching {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}

	case fetchFinishedMsg:
		m.status = msg.status
		m.statusErr = msg.err != nil
		m.currentState = stateNavigation
	}

	return m, nil
}

// handleNavigationKeys handles key presses while showing the status message.
func (m model) handleNavigationKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.EnterURL):
		// Entering URL entry always starts from a clean buffer and a
		// cleared status line.
		m.currentState = stateURLEntry
		m.urlInput.Reset()
		m.status = ""
		m.statusErr = false
		m.urlInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// handleURLEntryKeys handles key presses while editing the URL buffer.
// Typing, backspace and bracketed paste all flow into the textinput.
func (m model) handleURLEntryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Commit):
		m.currentState = stateFetching
		m.urlInput.Blur()
		return m, tea.Batch(m.spin.Tick, fetchCmd(m.deps, m.urlInput.Value()))

	case key.Matches(msg, m.keymap.Cancel):
		// Back out without touching the buffer and without any I/O.
		m.currentState = stateNavigation
		m.urlInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View renders the three regions: header with the command hints, the body
// panel for the current mode, and the footer help line. It is a pure function
// of the model; no state changes or I/O happen here.
func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("chordfetch"))
	b.WriteString("  ")
	b.WriteString(footerStyle.Render("u: enter URL | q: quit"))
	b.WriteString("\n")

	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderBody renders the mode-dependent panel.
func (m model) renderBody() string {
	var content string
	switch m.currentState {
	case stateURLEntry:
		content = "URL: " + m.urlInput.View()
	case stateFetching:
		content = m.spin.View() + statusStyle.Render(" Fetching ") + inputStyle.Render(m.urlInput.Value()) + statusStyle.Render(" ...")
	default:
		switch {
		case m.status == "":
			content = footerStyle.Render("Press 'u' to enter a URL.")
		case m.statusErr:
			content = errorStyle.Render(m.status)
		default:
			content = successStyle.Render(m.status)
		}
	}

	panel := panelBorderStyle
	if m.width > 2 {
		panel = panel.Width(m.width - 2)
	}
	return panel.Render(content)
}

// renderFooter builds the help line from the keymap for the current mode.
func (m model) renderFooter() string {
	var entries []string
	switch m.currentState {
	case stateURLEntry:
		entries = []string{
			helpEntry(m.keymap.Commit),
			helpEntry(m.keymap.Cancel),
		}
	case stateFetching:
		entries = []string{footerStyle.Render("waiting for response...")}
	default:
		entries = []string{
			helpEntry(m.keymap.EnterURL),
			helpEntry(m.keymap.Quit),
		}
	}

	line := strings.Join(entries, footerStyle.Render(" | "))
	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(line)
	}
	return line
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return footerKeyStyle.Render(h.Key) + footerStyle.Render(": "+h.Desc)
}

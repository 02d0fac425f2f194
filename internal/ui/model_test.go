// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(model)
	require.True(t, ok)
	return next, cmd
}

// enterURLMode drives a fresh model into URL entry.
func enterURLMode(t *testing.T, m model) model {
	t.Helper()
	m, _ = update(t, m, keyRunes("u"))
	require.Equal(t, stateURLEntry, m.currentState)
	return m
}

func TestQuitFromNavigation(t *testing.T) {
	m := InitialModel(Deps{})
	_, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNavigationIgnoresOtherKeys(t *testing.T) {
	m := InitialModel(Deps{})
	m, cmd := update(t, m, keyRunes("x"))
	assert.Equal(t, stateNavigation, m.currentState)
	assert.Nil(t, cmd)
}

func TestEnterURLModeClearsBufferAndStatus(t *testing.T) {
	m := InitialModel(Deps{})
	m.status = "Saved to fetched.html: 1 chord, T by Unknown"
	m.urlInput.SetValue("https://stale.example")

	m = enterURLMode(t, m)
	assert.Empty(t, m.urlInput.Value())
	assert.Empty(t, m.status)
}

func TestTypingAndBackspaceEditTheBuffer(t *testing.T) {
	m := enterURLMode(t, InitialModel(Deps{}))

	for _, r := range "https://x.y" {
		m, _ = update(t, m, keyRunes(string(r)))
	}
	assert.Equal(t, "https://x.y", m.urlInput.Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "https://x.", m.urlInput.Value())
}

func TestBackspaceOnEmptyBufferIsNoop(t *testing.T) {
	m := enterURLMode(t, InitialModel(Deps{}))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.urlInput.Value())
	assert.Equal(t, stateURLEntry, m.currentState)
}

func TestPasteAppendsToBuffer(t *testing.T) {
	m := enterURLMode(t, InitialModel(Deps{}))
	m, _ = update(t, m, keyRunes("h"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ttps://pasted.example"), Paste: true})
	assert.Equal(t, "https://pasted.example", m.urlInput.Value())
}

func TestCancelKeepsBufferAndDoesNoIO(t *testing.T) {
	m := enterURLMode(t, InitialModel(Deps{}))
	for _, r := range "abc" {
		m, _ = update(t, m, keyRunes(string(r)))
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateNavigation, m.currentState)
	assert.Equal(t, "abc", m.urlInput.Value())
	assert.Nil(t, cmd)
}

func TestCommitEntersFetchingState(t *testing.T) {
	m := enterURLMode(t, InitialModel(Deps{}))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("https://x.y"), Paste: true})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateFetching, m.currentState)
	require.NotNil(t, cmd)
}

func TestFetchFinishedReturnsToNavigation(t *testing.T) {
	m := enterURLMode(t, InitialModel(Deps{}))
	m.currentState = stateFetching

	m, _ = update(t, m, fetchFinishedMsg{status: "HTTP error: 404", err: assert.AnError})
	assert.Equal(t, stateNavigation, m.currentState)
	assert.Equal(t, "HTTP error: 404", m.status)
	assert.True(t, m.statusErr)
}

func TestViewRendersBufferWhileEditing(t *testing.T) {
	m := enterURLMode(t, InitialModel(Deps{}))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("https://x.y"), Paste: true})
	assert.Contains(t, m.View(), "https://x.y")
}

func TestViewRendersStatusInNavigation(t *testing.T) {
	m := InitialModel(Deps{})
	m.status = "Saved to fetched.html: 2 chords, T by A"
	assert.Contains(t, m.View(), "2 chords")
}

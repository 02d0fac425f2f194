// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's commands.go file contains the Bubble Tea commands that perform
// work off the render loop. The only long-running task here is the
// fetch-save-extract sequence triggered by committing a URL.

package ui

import (
	"context"
	"errors"
	"fmt"

	"chordfetch/internal/extract"
	"chordfetch/internal/fetcher"
	"chordfetch/internal/logger"
	"chordfetch/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Deps are the collaborators the fetch sequence needs. They are injected so
// tests can point the fetcher at a local server and the save path at a
// temporary directory.
type Deps struct {
	Fetcher   *fetcher.Client
	SavePath  string
	Selectors extract.Selectors
}

// DefaultDeps wires the production collaborators.
func DefaultDeps() Deps {
	return Deps{
		Fetcher:   fetcher.New(),
		SavePath:  store.DefaultPath,
		Selectors: extract.Default,
	}
}

// fetchCmd runs the full sequence for url and resolves to a fetchFinishedMsg.
// It never fails the program; every outcome folds into the status line.
func fetchCmd(deps Deps, url string) tea.Cmd {
	return func() tea.Msg {
		status, err := runSequence(deps, url)
		return fetchFinishedMsg{status: status, err: err}
	}
}

// runSequence is the commit pipeline: fetch the page, save the raw body,
// extract the chord data. The returned string is the status line shown in
// navigation mode; err mirrors whether the line reports a failure.
func runSequence(deps Deps, url string) (string, error) {
	body, err := deps.Fetcher.Fetch(context.Background(), url)
	if err != nil {
		var statusErr *fetcher.StatusError
		if errors.As(err, &statusErr) {
			logger.Warn("fetch rejected", "url", url, "code", statusErr.Code)
			return fmt.Sprintf("HTTP error: %d", statusErr.Code), err
		}
		logger.Error("fetch failed", "url", url, "error", err)
		return fmt.Sprintf("Error fetching URL: %v", err), err
	}

	if err := store.Save(deps.SavePath, body); err != nil {
		logger.Error("save failed", "path", deps.SavePath, "error", err)
		return fmt.Sprintf("Error saving page: %v", err), err
	}

	res := extract.Extract(body, deps.Selectors)
	logger.Info("page fetched", "url", url, "bytes", len(body), "chords", len(res.Chords))
	return fmt.Sprintf("Saved to %s: %s", deps.SavePath, res.Summary()), nil
}

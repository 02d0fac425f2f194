// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's messages.go file defines the message types used in the
// Bubble Tea Model-View-Update architecture.

package ui

// fetchFinishedMsg carries the outcome of a full fetch-save-extract pass.
// Exactly one is produced per commit, success or failure.
type fetchFinishedMsg struct {
	status string // human-readable outcome line
	err    error  // nil on success; used only to pick the status style
}

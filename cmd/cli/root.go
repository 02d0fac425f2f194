// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"os"

	"chordfetch/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor  = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

var rootCmd = &cobra.Command{
	Use:   "chordfetch",
	Short: "Chordfetch CLI",
	Long: `A command-line interface to fetch chord-sheet pages.

Fetches a page by URL, saves the raw HTML to disk and reports the extracted
title, artist and chord tokens. Run without arguments for the interactive TUI.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(false)
	},
}

func RunCLI() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(extractCmd)
}

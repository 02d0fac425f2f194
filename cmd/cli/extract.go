// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"

	"chordfetch/internal/extract"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:     "extract <file>",
	Short:   "Extract the chord summary from an already-saved HTML file",
	Example: "  chordfetch extract fetched.html",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body, err := os.ReadFile(args[0])
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error reading %s: %v\n", args[0], err)
			os.Exit(1)
		}

		res := extract.Extract(body, extract.Default)
		statusColor.Printf("%s\n", res.Summary())
		for _, chord := range res.Chords {
			fmt.Println("  " + chord)
		}
	},
}

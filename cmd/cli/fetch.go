// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"chordfetch/internal/extract"
	"chordfetch/internal/fetcher"
	"chordfetch/internal/logger"
	"chordfetch/internal/store"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var outputPath string

var fetchCmd = &cobra.Command{
	Use:     "fetch <url>",
	Short:   "Fetch a chord-sheet page, save it and print the extracted summary",
	Example: "  chordfetch fetch https://example.com/chords/wonderwall\n  chordfetch fetch -o page.html https://example.com/chords/wonderwall",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Color("cyan")
		s.Suffix = " Fetching " + url + "..."
		s.Start()
		body, err := fetcher.New().Fetch(context.Background(), url)
		s.Stop()

		if err != nil {
			var statusErr *fetcher.StatusError
			if errors.As(err, &statusErr) {
				errorColor.Fprintf(os.Stderr, "HTTP error: %d\n", statusErr.Code)
			} else {
				errorColor.Fprintf(os.Stderr, "Error fetching URL: %v\n", err)
			}
			logger.Error("fetch failed", "url", url, "error", err)
			os.Exit(1)
		}

		if err := store.Save(outputPath, body); err != nil {
			errorColor.Fprintf(os.Stderr, "Error saving page: %v\n", err)
			os.Exit(1)
		}
		successColor.Printf("Saved to %s\n", outputPath)

		res := extract.Extract(body, extract.Default)
		fmt.Println(res.Summary())
		logger.Info("page fetched", "url", url, "bytes", len(body), "chords", len(res.Chords))
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&outputPath, "output", "o", store.DefaultPath, "file to write the raw page body to")
}

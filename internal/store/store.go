// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package store persists a fetched page body to disk.
package store

import (
	"fmt"
	"os"
)

// DefaultPath is where a fetched page lands, relative to the working
// directory. An existing file is overwritten.
const DefaultPath = "fetched.html"

// Save writes body to path, creating the file or truncating an existing one.
// A write that fails partway leaves the file in an undefined state; callers
// report the error rather than roll back.
func Save(path string, body []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(body); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package extract pulls the song metadata and chord tokens out of a fetched
// chord-sheet page. It is a pure lookup pass: every selector tolerates zero
// matches, and the lenient HTML parser always produces a document tree, so
// extraction never fails on malformed input.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Selectors holds the compiled CSS selectors for one extraction pass.
// The selector strings are constants supplied at build time; a malformed
// selector is a programming error and panics at package init, not at runtime.
type Selectors struct {
	Title  goquery.Matcher
	Artist goquery.Matcher
	Chords goquery.Matcher
}

// MustSelectors compiles the three selector strings, panicking on any
// malformed selector.
func MustSelectors(title, artist, chords string) Selectors {
	return Selectors{
		Title:  cascadia.MustCompile(title),
		Artist: cascadia.MustCompile(artist),
		Chords: cascadia.MustCompile(chords),
	}
}

// Default is the selector set for the chord sites the tool targets.
// The artist selector is a heuristic; some sites do not emit the meta tag
// at all, which simply yields an absent artist.
var Default = MustSelectors("title", `meta[name="artist"]`, ".chord-class")

// Result is what a single pass produced. An empty Title or Artist means the
// document had no matching element; Chords preserves document order and is
// nil when nothing matched.
type Result struct {
	Title  string
	Artist string
	Chords []string
}

// Extract runs the three selector lookups against the page body.
func Extract(body []byte, sel Selectors) Result {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		// html.Parse is lenient and a bytes.Reader cannot fail mid-read,
		// so this path is effectively unreachable.
		return Result{}
	}

	var res Result
	if t := doc.FindMatcher(sel.Title).First(); t.Length() > 0 {
		res.Title = strings.TrimSpace(t.Text())
	}
	if a := doc.FindMatcher(sel.Artist).First(); a.Length() > 0 {
		res.Artist, _ = a.Attr("content")
	}
	doc.FindMatcher(sel.Chords).Each(func(_ int, s *goquery.Selection) {
		res.Chords = append(res.Chords, strings.TrimSpace(s.Text()))
	})
	return res
}

// Summary renders the result as a single status line, substituting "Unknown"
// for absent fields.
func (r Result) Summary() string {
	noun := "chords"
	if len(r.Chords) == 1 {
		noun = "chord"
	}
	return fmt.Sprintf("%d %s, %s by %s", len(r.Chords), noun, orUnknown(r.Title), orUnknown(r.Artist))
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

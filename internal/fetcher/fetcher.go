// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package fetcher retrieves a chord-sheet page over plain HTTP.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultUserAgent = "chordfetch/1.0"

// defaultTimeout bounds the whole request. The fetch blocks the session, so a
// stalled server must not be able to wedge it forever.
const defaultTimeout = 30 * time.Second

// StatusError reports a response that arrived but carried a non-2xx status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %s", e.Status)
}

// Client performs blocking page fetches.
type Client struct {
	http      *http.Client
	userAgent string
}

// New returns a Client with the default timeout and user agent.
func New() *Client {
	return NewWithHTTPClient(&http.Client{Timeout: defaultTimeout})
}

// NewWithHTTPClient returns a Client on top of the given http.Client.
// Tests use this to point at an httptest server with a short timeout.
func NewWithHTTPClient(hc *http.Client) *Client {
	return &Client{http: hc, userAgent: defaultUserAgent}
}

// Fetch issues a GET for url and returns the full response body.
// A reachable server with a non-2xx status yields a *StatusError.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}

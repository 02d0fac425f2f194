// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReturnsBody(t *testing.T) {
	const page = `<html><title>T</title></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	body, err := New().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte(page), body)
}

func TestFetchNon2xxIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New().Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, statusErr.Error(), "404")
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := New().Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "transport failure must not look like a status error")
}

func TestFetchBadURL(t *testing.T) {
	_, err := New().Fetch(context.Background(), "http://\x7f")
	assert.Error(t, err)
}

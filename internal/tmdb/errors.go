// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrConnectivity marks transient failures worth retrying: transport
	// errors, timeouts, gateway errors and exhausted 429 retries.
	ErrConnectivity = errors.New("catalog unreachable")

	// ErrNoResults is returned when a search matches nothing.
	ErrNoResults = errors.New("no search results")

	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("movie not found")

	// ErrUnauthorized is returned for HTTP 401, usually a bad API key.
	ErrUnauthorized = errors.New("catalog rejected credentials")

	// ErrRateLimited is wrapped together with ErrConnectivity when HTTP 429
	// retries run out.
	ErrRateLimited = errors.New("catalog rate limit exceeded")

	// ErrNotConfigured is returned when no API key is set.
	ErrNotConfigured = errors.New("catalog API key not configured")
)

// APIError is a non-2xx response that maps to no sentinel.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// IsConnectivity reports whether err is transient and worth retrying.
func IsConnectivity(err error) bool {
	return errors.Is(err, ErrConnectivity)
}

// maxErrorBodySize limits the amount of response body read for error reporting.
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads the response body for error reporting (max 64KB).
// Returns a placeholder message if reading fails.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// classifyTransportError wraps errors from http.Client.Do (DNS, refused
// connections, TLS, timeouts) as connectivity failures. Caller cancellation
// is passed through unchanged so it is not retried.
func classifyTransportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %w", ErrConnectivity, err)
}

// statusError maps a non-200 status to an error.
func statusError(endpoint string, resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s: HTTP %d", ErrConnectivity, endpoint, resp.StatusCode)
	default:
		return &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
	}
}

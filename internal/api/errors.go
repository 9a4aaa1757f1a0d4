// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/breaker"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/criteria"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/llm"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

// Error codes
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeNoMatch             = "NO_MATCH"
	ErrCodeCorpusEmpty         = "CORPUS_EMPTY"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeDatabase            = "DATABASE_ERROR"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimited         = "RATE_LIMIT_EXCEEDED"
)

// errorMapping is the HTTP status and code for a domain error.
type errorMapping struct {
	status int
	code   string
}

// classifyError maps a service error to its HTTP representation.
func classifyError(err error) errorMapping {
	var catalogErr *tmdb.APIError
	switch {
	case errors.Is(err, recommend.ErrNoMatch):
		return errorMapping{http.StatusNotFound, ErrCodeNoMatch}
	case errors.Is(err, recommend.ErrCorpusEmpty):
		return errorMapping{http.StatusServiceUnavailable, ErrCodeCorpusEmpty}
	case errors.Is(err, criteria.ErrEmptyQuery):
		return errorMapping{http.StatusBadRequest, ErrCodeValidation}
	case errors.Is(err, llm.ErrUnavailable),
		errors.Is(err, criteria.ErrNoTitles),
		errors.Is(err, tmdb.ErrConnectivity),
		errors.Is(err, tmdb.ErrUnauthorized),
		errors.Is(err, tmdb.ErrNotConfigured),
		errors.As(err, &catalogErr),
		breaker.IsRejected(err):
		return errorMapping{http.StatusBadGateway, ErrCodeUpstreamUnavailable}
	case errors.Is(err, context.DeadlineExceeded):
		return errorMapping{http.StatusGatewayTimeout, ErrCodeTimeout}
	default:
		return errorMapping{http.StatusInternalServerError, ErrCodeInternal}
	}
}

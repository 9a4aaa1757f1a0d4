// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

// Package criteria recommends movies for a free-text description.
//
// A language model proposes titles, one per line. The reply is split into
// titles and each title is enriched from the catalog. Titles the catalog
// cannot find are dropped, so the result may be shorter than the model's
// list.
package criteria

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/enrich"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/llm"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/metrics"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

const strategy = "criteria"

var (
	// ErrNoTitles is returned when the model reply contains no titles.
	ErrNoTitles = errors.New("model returned no titles")

	// ErrEmptyQuery is returned for a blank query.
	ErrEmptyQuery = errors.New("query is empty")
)

// Enricher turns targets into catalog details.
type Enricher interface {
	Enrich(ctx context.Context, targets []enrich.Target) ([]tmdb.Details, enrich.Report)
}

// Result is the outcome of one criteria query.
type Result struct {
	Query  string         `json:"query"`
	Titles []string       `json:"titles"`
	Movies []tmdb.Details `json:"movies"`
	Report enrich.Report  `json:"-"`
}

// Service runs criteria queries. It is safe for concurrent use.
type Service struct {
	generator llm.Generator
	enricher  Enricher
	logger    zerolog.Logger
}

// NewService creates a criteria service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(generator llm.Generator, enricher Enricher, logger zerolog.Logger) *Service {
	return &Service{
		generator: generator,
		enricher:  enricher,
		logger:    logger.With().Str("component", "criteria").Logger(),
	}
}

// Recommend asks the model for titles matching query and enriches them.
// Model failures wrap llm.ErrUnavailable; an empty reply is ErrNoTitles.
func (s *Service) Recommend(ctx context.Context, query string) (*Result, error) {
	start := time.Now()
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	text, err := s.generator.Generate(ctx, llm.SystemPrompt, llm.BuildPrompt(query))
	if err != nil {
		metrics.RecordRecommendation(strategy, "upstream_error", time.Since(start))
		return nil, fmt.Errorf("generate titles: %w", err)
	}

	titles := llm.ParseTitles(text)
	if len(titles) == 0 {
		metrics.RecordRecommendation(strategy, "no_titles", time.Since(start))
		return nil, ErrNoTitles
	}

	targets := make([]enrich.Target, len(titles))
	for i, t := range titles {
		targets[i] = enrich.Target{Title: t}
	}
	movies, report := s.enricher.Enrich(ctx, targets)

	outcome := "success"
	if len(movies) == 0 {
		outcome = "empty"
	}
	metrics.RecordRecommendation(strategy, outcome, time.Since(start))

	s.logger.Debug().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("query", logging.Truncate(query, 100)).
		Int("titles", len(titles)).
		Int("movies", len(movies)).
		Int("attempts", report.Attempts).
		Msg("criteria recommendation complete")

	return &Result{
		Query:  query,
		Titles: titles,
		Movies: movies,
		Report: report,
	}, nil
}

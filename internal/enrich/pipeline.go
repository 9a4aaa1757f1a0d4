// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

// Package enrich turns movie ids or free-text titles into catalog detail
// records concurrently.
//
// Each target is one task on a bounded errgroup pool. A task resolves a
// title to an id with a catalog search when needed, then fetches details.
// Every catalog call retries connectivity failures under a RetryPolicy;
// any other failure drops the target. Results come back in completion
// order and omit dropped targets.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/metrics"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

// DefaultWorkers bounds concurrent catalog lookups.
const DefaultWorkers = 10

// minTitleLength drops fragments such as stray list markers.
const minTitleLength = 2

// Catalog is the subset of the catalog client the pipeline needs.
type Catalog interface {
	SearchMovie(ctx context.Context, title string) ([]tmdb.MovieSummary, error)
	MovieDetails(ctx context.Context, id int64) (*tmdb.Details, error)
}

// Target is one item to enrich. ID is used when non-zero; otherwise Title
// is searched first.
type Target struct {
	ID    int64
	Title string
}

// Outcome labels for metrics and logs.
const (
	outcomeOK           = "ok"
	outcomeConnectivity = "connectivity"
	outcomePermanent    = "permanent"
	outcomeCanceled     = "cancelled"
	outcomeSkipped      = "skipped"
)

// Report summarizes one batch.
type Report struct {
	Requested int
	Enriched  int
	Dropped   int
	Attempts  int
	Duration  time.Duration
}

// Pipeline enriches targets concurrently. It is safe for concurrent use.
type Pipeline struct {
	catalog Catalog
	workers int
	policy  RetryPolicy
	logger  zerolog.Logger
}

// New creates a pipeline. workers < 1 uses DefaultWorkers.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(catalog Catalog, workers int, policy RetryPolicy, logger zerolog.Logger) (*Pipeline, error) {
	if catalog == nil {
		return nil, errors.New("enrich: catalog is required")
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("enrich: %w", err)
	}
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Pipeline{
		catalog: catalog,
		workers: workers,
		policy:  policy,
		logger:  logger.With().Str("component", "enrich").Logger(),
	}, nil
}

// Policy returns the retry policy.
func (p *Pipeline) Policy() RetryPolicy {
	return p.policy
}

// EnrichIDs fetches details for catalog ids.
func (p *Pipeline) EnrichIDs(ctx context.Context, ids []int64) []tmdb.Details {
	targets := make([]Target, len(ids))
	for i, id := range ids {
		targets[i] = Target{ID: id}
	}
	out, _ := p.Enrich(ctx, targets)
	return out
}

// EnrichTitles searches each title and fetches details for the first hit.
func (p *Pipeline) EnrichTitles(ctx context.Context, titles []string) []tmdb.Details {
	targets := make([]Target, len(titles))
	for i, t := range titles {
		targets[i] = Target{Title: t}
	}
	out, _ := p.Enrich(ctx, targets)
	return out
}

// Enrich processes every target and returns the details that succeeded,
// in completion order. It returns once every target has finished. A
// failure of one target never cancels the others.
func (p *Pipeline) Enrich(ctx context.Context, targets []Target) ([]tmdb.Details, Report) {
	start := time.Now()
	batchID := logging.GenerateBatchID()
	ctx = logging.ContextWithBatchID(ctx, batchID)
	logger := p.logger.With().
		Str("batch_id", batchID).
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Logger()

	var (
		mu       sync.Mutex
		results  = make([]tmdb.Details, 0, len(targets))
		attempts int
	)

	g := new(errgroup.Group)
	g.SetLimit(p.workers)

	for _, target := range targets {
		g.Go(func() error {
			d, n, outcome := p.enrichOne(ctx, &logger, target)
			metrics.RecordEnrichItem(outcome)

			mu.Lock()
			attempts += n
			if d != nil {
				results = append(results, *d)
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	report := Report{
		Requested: len(targets),
		Enriched:  len(results),
		Dropped:   len(targets) - len(results),
		Attempts:  attempts,
		Duration:  time.Since(start),
	}
	metrics.RecordEnrichBatch(report.Duration)

	logger.Debug().
		Int("requested", report.Requested).
		Int("enriched", report.Enriched).
		Int("dropped", report.Dropped).
		Int("attempts", report.Attempts).
		Dur("duration", report.Duration).
		Msg("enrichment batch complete")

	return results, report
}

// enrichOne runs one target to a terminal state. It returns the details
// (nil when dropped), the number of catalog calls made and the outcome.
func (p *Pipeline) enrichOne(ctx context.Context, logger *zerolog.Logger, target Target) (*tmdb.Details, int, string) {
	calls := 0
	id := target.ID

	if id == 0 {
		title := strings.TrimSpace(target.Title)
		if len([]rune(title)) < minTitleLength {
			return nil, 0, outcomeSkipped
		}

		var hits []tmdb.MovieSummary
		n, err := p.policy.Do(ctx, func(ctx context.Context) error {
			var err error
			hits, err = p.catalog.SearchMovie(ctx, title)
			return err
		})
		calls += n
		if err != nil {
			return nil, calls, p.drop(logger, target, n, err)
		}
		id = hits[0].ID
	}

	var details *tmdb.Details
	n, err := p.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		details, err = p.catalog.MovieDetails(ctx, id)
		return err
	})
	calls += n
	if err != nil {
		return nil, calls, p.drop(logger, target, n, err)
	}
	return details, calls, outcomeOK
}

// drop logs why a target was dropped and returns its outcome label.
func (p *Pipeline) drop(logger *zerolog.Logger, target Target, attempts int, err error) string {
	outcome := outcomePermanent
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = outcomeCanceled
	case p.policy.retryable(err):
		outcome = outcomeConnectivity
	}

	ev := logger.Debug()
	if outcome == outcomeConnectivity {
		ev = logger.Warn()
	}
	ev.Int64("id", target.ID).
		Str("title", logging.Truncate(target.Title, 100)).
		Int("attempts", attempts).
		Str("outcome", outcome).
		Err(err).
		Msg("enrichment target dropped")
	return outcome
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/metrics"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/corpus"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/ranking"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/resolver"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/similarity"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/vectorizer"
)

var (
	// ErrNoMatch is returned when the requested title cannot be resolved.
	ErrNoMatch = resolver.ErrNoMatch

	// ErrCorpusEmpty is returned when the engine has no movies.
	ErrCorpusEmpty = errors.New("corpus is empty")
)

// Engine is the immutable content-based recommender. It is safe for
// concurrent use.
type Engine struct {
	config   Config
	logger   zerolog.Logger
	corpus   *corpus.Corpus
	movies   []corpus.Movie
	space    *vectorizer.Space
	source   similarity.Source
	resolver *resolver.Resolver
	stats    Stats
}

// Build validates raw records and assembles an Engine from them.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Build(records []corpus.Record, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	c, stats := corpus.Build(records)
	metrics.RecordCorpusBuild(stats.Kept, stats.MissingFields, stats.Duplicates, stats.TitleCollisions)

	logger.Info().
		Str("component", "recommend").
		Int("total", stats.Total).
		Int("kept", stats.Kept).
		Int("missing_fields", stats.MissingFields).
		Int("duplicates", stats.Duplicates).
		Int("title_collisions", stats.TitleCollisions).
		Msg("corpus built")

	eng, err := NewEngine(c, cfg, logger)
	if err != nil {
		return nil, err
	}
	eng.stats.Corpus = stats
	return eng, nil
}

// NewEngine fits the vector space and similarity source for c.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(c *corpus.Corpus, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	start := time.Now()
	space := vectorizer.Fit(c.Documents(), vectorizer.Options{})
	source, err := similarity.New(space, cfg.SimilarityMode)
	if err != nil {
		return nil, err
	}
	res, err := resolver.New(c.Index(), cfg.Resolver)
	if err != nil {
		return nil, fmt.Errorf("resolver: %w", err)
	}
	elapsed := time.Since(start)

	e := &Engine{
		config:   *cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		corpus:   c,
		movies:   c.Movies(),
		space:    space,
		source:   source,
		resolver: res,
		stats: Stats{
			Corpus:        corpus.BuildStats{Total: c.Len(), Kept: c.Len()},
			Movies:        c.Len(),
			Vocabulary:    space.Dim(),
			Mode:          cfg.SimilarityMode,
			BuildDuration: elapsed,
			BuiltAt:       time.Now(),
		},
	}

	metrics.RecordIndexBuild(string(cfg.SimilarityMode), space.Dim(), elapsed)
	e.logger.Info().
		Int("movies", c.Len()).
		Int("vocabulary", space.Dim()).
		Str("mode", string(cfg.SimilarityMode)).
		Dur("duration", elapsed).
		Msg("similarity index built")

	return e, nil
}

// Recommend resolves req.Title and returns up to N similar movies ordered
// by rating.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.corpus.IsEmpty() {
		return nil, ErrCorpusEmpty
	}

	logger := e.logger.With().Str("request_id", req.RequestID).Logger()
	n := e.config.count(req.N)

	match, err := e.Resolve(req.Title)
	if err != nil {
		logger.Debug().Str("query", req.Title).Err(err).Msg("title not resolved")
		return nil, err
	}

	items := ranking.Rank(e.source, e.movies, match.Position, n)

	logger.Debug().
		Str("query", req.Title).
		Str("matched", match.Title).
		Int("score", match.Score).
		Int("returned", len(items)).
		Msg("recommendation complete")

	return &Result{
		Match: match,
		Items: items,
		Metadata: ResultMetadata{
			RequestID: req.RequestID,
			Mode:      e.config.SimilarityMode,
			Requested: n,
			LatencyMS: time.Since(start).Milliseconds(),
			Timestamp: time.Now(),
		},
	}, nil
}

// Resolve maps free text to a corpus movie.
func (e *Engine) Resolve(title string) (Match, error) {
	m, err := e.resolver.Resolve(title)
	if err != nil {
		metrics.RecordResolution("no_match")
		return Match{}, err
	}

	exact := m.Score == 100 && m.Title == corpus.NormalizeTitle(title)
	if exact {
		metrics.RecordResolution("exact")
	} else {
		metrics.RecordResolution("fuzzy")
	}
	movie := e.movies[m.Position]
	return Match{ID: movie.ID, Title: movie.Title, Score: m.Score, Exact: exact, Position: m.Position}, nil
}

// Corpus returns the engine's corpus.
func (e *Engine) Corpus() *corpus.Corpus {
	return e.corpus
}

// Titles returns display titles in corpus order.
func (e *Engine) Titles() []string {
	return e.corpus.Titles()
}

// Stats returns build statistics.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Ready reports whether the engine can serve similarity requests.
func (e *Engine) Ready() bool {
	return !e.corpus.IsEmpty()
}

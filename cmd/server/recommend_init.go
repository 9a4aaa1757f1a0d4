// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/config"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/database"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/resolver"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/similarity"
)

// buildEngineConfig maps the recommend config section onto the engine's
// own config type.
func buildEngineConfig(cfg *config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		SimilarityMode: similarity.Mode(cfg.SimilarityMode),
		Resolver: resolver.Config{
			Threshold: cfg.MatchThreshold,
			Scorer:    cfg.Scorer,
		},
		DefaultCount: cfg.DefaultCount,
		MaxCount:     cfg.MaxCount,
	}
}

// initEngine loads the corpus CSV into db, builds the recommendation
// engine from it and stores the validated corpus for genre queries.
// An empty corpus is not an error; the engine then reports not ready.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(ctx context.Context, cfg *config.Config, db *database.DB, logger zerolog.Logger) (*recommend.Engine, error) {
	records, err := db.LoadMoviesCSV(ctx, cfg.Corpus.Path)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	engine, err := recommend.Build(records, buildEngineConfig(&cfg.Recommend), logger)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	if err := db.StoreCorpus(ctx, engine.Corpus().Movies()); err != nil {
		return nil, fmt.Errorf("store corpus: %w", err)
	}

	stats := engine.Stats()
	logger.Info().
		Int("movies", stats.Movies).
		Int("vocabulary", stats.Vocabulary).
		Str("mode", string(stats.Mode)).
		Bool("ready", engine.Ready()).
		Msg("Recommendation engine ready")

	return engine, nil
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package main

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/cache"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/config"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/supervisor/services"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

// CatalogCaches holds the catalog client's caches and, for the badger
// backend, the database they share.
type CatalogCaches struct {
	Details cache.Store[*tmdb.Details]
	Popular cache.Store[[]tmdb.MovieSummary]

	backend cache.Backend
	db      *badger.DB
}

// initCaches opens the configured cache backend.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initCaches(cfg *config.CacheConfig, logger zerolog.Logger) (*CatalogCaches, error) {
	backend, err := cache.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}

	c := &CatalogCaches{backend: backend}
	switch backend {
	case cache.BackendNone:
		c.Details = cache.NewNoop[*tmdb.Details]()
		c.Popular = cache.NewNoop[[]tmdb.MovieSummary]()

	case cache.BackendBadger:
		db, err := cache.OpenBadger(cache.BadgerOptions{Path: cfg.Path})
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		c.db = db
		c.Details = cache.NewBadger[*tmdb.Details](db, "tmdb_details", cfg.DetailTTL, logger)
		c.Popular = cache.NewBadger[[]tmdb.MovieSummary](db, "tmdb_popular", cfg.PopularTTL, logger)

	default:
		c.Details = cache.NewTTL[*tmdb.Details]("tmdb_details", cfg.DetailTTL)
		c.Popular = cache.NewTTL[[]tmdb.MovieSummary]("tmdb_popular", cfg.PopularTTL)
	}

	logger.Info().Str("backend", string(backend)).Str("path", cfg.Path).Msg("Catalog cache initialized")
	return c, nil
}

// Services returns the maintenance jobs for the open backend.
func (c *CatalogCaches) Services(cfg *config.CacheConfig) []suture.Service {
	if c.backend == cache.BackendNone {
		return nil
	}

	svcs := []suture.Service{
		services.NewCacheStatsService(map[string]services.StatsSource{
			"tmdb_details": c.Details,
			"tmdb_popular": c.Popular,
		}, cfg.StatsInterval),
	}
	if c.db != nil {
		db, ratio := c.db, cfg.GCDiscardRatio
		svcs = append(svcs, services.NewCacheGCService(func() (int, error) {
			return cache.RunGC(db, ratio)
		}, cfg.GCInterval))
	}
	return svcs
}

// Close releases the stores and the badger database.
func (c *CatalogCaches) Close() {
	if err := c.Details.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing detail cache")
	}
	if err := c.Popular.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing popular cache")
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing cache database")
		}
	}
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package services

import (
	"context"
	"sort"
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/cache"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
)

// StatsSource is a cache that reports statistics.
type StatsSource interface {
	GetStats() cache.Stats
	Len() int
}

// CacheStatsService logs statistics for each registered cache on a fixed
// interval.
type CacheStatsService struct {
	caches   map[string]StatsSource
	names    []string
	interval time.Duration
	name     string
}

// NewCacheStatsService creates a stats logger. A non-positive interval
// defaults to 5 minutes.
func NewCacheStatsService(caches map[string]StatsSource, interval time.Duration) *CacheStatsService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	names := make([]string, 0, len(caches))
	for name := range caches {
		names = append(names, name)
	}
	sort.Strings(names)

	return &CacheStatsService{
		caches:   caches,
		names:    names,
		interval: interval,
		name:     "cache-stats",
	}
}

// Serve implements suture.Service.
func (s *CacheStatsService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Report()
			return ctx.Err()
		case <-ticker.C:
			s.Report()
		}
	}
}

// Report logs one line per cache.
func (s *CacheStatsService) Report() {
	for _, name := range s.names {
		src := s.caches[name]
		stats := src.GetStats()
		logging.Info().
			Str("cache", name).
			Int("entries", src.Len()).
			Int64("hits", stats.Hits).
			Int64("misses", stats.Misses).
			Int64("evictions", stats.Evictions).
			Float64("hit_rate", stats.HitRate()).
			Msg("Cache statistics")
	}
}

// String implements fmt.Stringer.
func (s *CacheStatsService) String() string {
	return s.name
}

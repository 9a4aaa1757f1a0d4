// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package services

import (
	"context"
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
)

// GCRunner reclaims space in a persistent cache. It returns the number of
// files rewritten.
type GCRunner func() (int, error)

// CacheGCService runs GC on a fixed interval. GC errors are logged and do
// not stop the service.
type CacheGCService struct {
	run      GCRunner
	interval time.Duration
	name     string
}

// NewCacheGCService creates a GC service. A non-positive interval
// defaults to 10 minutes.
func NewCacheGCService(run GCRunner, interval time.Duration) *CacheGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &CacheGCService{
		run:      run,
		interval: interval,
		name:     "cache-gc",
	}
}

// Serve implements suture.Service.
func (s *CacheGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *CacheGCService) runOnce() {
	start := time.Now()
	rewritten, err := s.run()
	if err != nil {
		logging.Warn().Err(err).Str("service", s.name).Msg("Cache GC failed")
		return
	}
	logging.Debug().
		Str("service", s.name).
		Int("files_rewritten", rewritten).
		Dur("duration", time.Since(start)).
		Msg("Cache GC complete")
}

// String implements fmt.Stringer.
func (s *CacheGCService) String() string {
	return s.name
}

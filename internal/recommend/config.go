// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package recommend

import (
	"fmt"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/resolver"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/similarity"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// SimilarityMode selects the dense matrix or per-query rows.
	SimilarityMode similarity.Mode `json:"similarity_mode"`

	// Resolver holds the fuzzy match threshold and scorer.
	Resolver resolver.Config `json:"resolver"`

	// DefaultCount is used when a request does not set N.
	DefaultCount int `json:"default_count"`

	// MaxCount caps N.
	MaxCount int `json:"max_count"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SimilarityMode: similarity.ModeDense,
		Resolver:       resolver.DefaultConfig(),
		DefaultCount:   10,
		MaxCount:       50,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.SimilarityMode {
	case similarity.ModeDense, similarity.ModePerQuery:
	default:
		return fmt.Errorf("similarity_mode must be %q or %q, got %q",
			similarity.ModeDense, similarity.ModePerQuery, c.SimilarityMode)
	}
	if err := c.Resolver.Validate(); err != nil {
		return fmt.Errorf("resolver: %w", err)
	}
	if c.DefaultCount < 1 {
		return fmt.Errorf("default_count must be at least 1, got %d", c.DefaultCount)
	}
	if c.MaxCount < c.DefaultCount {
		return fmt.Errorf("max_count (%d) must be >= default_count (%d)", c.MaxCount, c.DefaultCount)
	}
	return nil
}

// count applies the default and the cap to a requested N.
func (c *Config) count(n int) int {
	if n <= 0 {
		n = c.DefaultCount
	}
	if n > c.MaxCount {
		n = c.MaxCount
	}
	return n
}

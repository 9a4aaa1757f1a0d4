// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

// Package resolver maps a free-text movie name to the closest known title.
//
// Every normalized title in the index is scored against the normalized
// query. The highest score wins and ties go to the earliest title in corpus
// order. A best score below the threshold is reported as ErrNoMatch.
package resolver

import (
	"errors"
	"fmt"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/corpus"
)

// ErrNoMatch is returned when no title scores at or above the threshold.
var ErrNoMatch = errors.New("no matching title")

// DefaultThreshold is the minimum score for a match.
const DefaultThreshold = 90

// Config selects the scorer and its acceptance threshold.
type Config struct {
	Threshold int    `koanf:"match_threshold"`
	Scorer    string `koanf:"scorer"`
}

// DefaultConfig returns the weighted ratio scorer with threshold 90.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold, Scorer: ScorerWRatio}
}

// Validate checks the threshold range and scorer name.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("match threshold must be between 0 and 100, got %d", c.Threshold)
	}
	if _, ok := ScorerByName(c.Scorer); !ok {
		return fmt.Errorf("unknown scorer %q (valid: %v)", c.Scorer, ScorerNames())
	}
	return nil
}

// Match is a resolved title. Title is the normalized index key.
type Match struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Score    int    `json:"score"`
}

// Resolver scores queries against a title index. It is safe for concurrent
// use.
type Resolver struct {
	index     *corpus.TitleIndex
	scorer    Scorer
	threshold int
}

// New builds a Resolver over index.
func New(index *corpus.TitleIndex, cfg Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scorer, _ := ScorerByName(cfg.Scorer)
	return &Resolver{index: index, scorer: scorer, threshold: cfg.Threshold}, nil
}

// Threshold returns the acceptance threshold.
func (r *Resolver) Threshold() int {
	return r.threshold
}

// Resolve returns the best-scoring title for query. An exact normalized hit
// short-circuits with score 100.
func (r *Resolver) Resolve(query string) (Match, error) {
	key := corpus.NormalizeTitle(query)
	if key == "" || r.index.Len() == 0 {
		return Match{}, ErrNoMatch
	}
	if pos, ok := r.index.Lookup(key); ok {
		return Match{Position: pos, Title: key, Score: 100}, nil
	}

	best := Match{Position: -1, Score: -1}
	for pos, title := range r.index.Keys() {
		score := r.scorer(key, title)
		if score > best.Score {
			best = Match{Position: pos, Title: title, Score: score}
			if score == 100 {
				break
			}
		}
	}

	if best.Score < r.threshold {
		return Match{}, fmt.Errorf("%w: best candidate %q scored %d, threshold %d",
			ErrNoMatch, best.Title, best.Score, r.threshold)
	}
	return best, nil
}

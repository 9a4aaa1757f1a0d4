// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package recommend

import (
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/corpus"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/ranking"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/similarity"
)

// Request represents a "more like this" request.
type Request struct {
	// Title is free text; it is resolved to a known title first.
	Title string `json:"title"`

	// N is the number of recommendations. Zero uses Config.DefaultCount.
	N int `json:"n,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// Match describes the corpus movie a request resolved to.
type Match struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Score int    `json:"score"`
	Exact bool   `json:"exact"`

	// Position is the movie's corpus row.
	Position int `json:"-"`
}

// Result is the ranked output of Recommend, ordered by rating.
type Result struct {
	Match    Match            `json:"match"`
	Items    []ranking.Ranked `json:"items"`
	Metadata ResultMetadata   `json:"metadata"`
}

// ResultMetadata contains request-level details.
type ResultMetadata struct {
	RequestID string          `json:"request_id,omitempty"`
	Mode      similarity.Mode `json:"mode"`
	Requested int             `json:"requested"`
	LatencyMS int64           `json:"latency_ms"`
	Timestamp time.Time       `json:"timestamp"`
}

// Stats describes how the engine was built.
type Stats struct {
	Corpus        corpus.BuildStats `json:"corpus"`
	Movies        int               `json:"movies"`
	Vocabulary    int               `json:"vocabulary"`
	Mode          similarity.Mode   `json:"mode"`
	BuildDuration time.Duration     `json:"build_duration"`
	BuiltAt       time.Time         `json:"built_at"`
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

// Package recommend implements the content-based recommendation engine.
//
// # Architecture
//
// An Engine is assembled once from a corpus and never changes afterwards:
//
//   - corpus: validated movies and a one-to-one title index
//   - vectorizer: TF-IDF vectors over the combined text of each movie
//   - similarity: a dense matrix or a per-query row source
//   - resolver: fuzzy matching of user input to a known title
//   - ranking: top-N by similarity, re-ordered by rating
//
// # Usage
//
//	eng, err := recommend.Build(records, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	res, err := eng.Recommend(ctx, recommend.Request{Title: "Inceptoin", N: 10})
//	if errors.Is(err, recommend.ErrNoMatch) {
//	    // unknown title
//	}
//
// # Thread Safety
//
// The engine holds no mutable state after construction. All methods are
// safe for concurrent use without locking.
package recommend

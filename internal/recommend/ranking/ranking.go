// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

// Package ranking selects the movies most similar to a resolved movie and
// orders the shortlist by rating.
package ranking

import (
	"sort"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/corpus"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/similarity"
)

// Ranked is a recommended movie with its similarity to the query movie.
type Ranked struct {
	corpus.Movie
	Position   int     `json:"-"`
	Similarity float64 `json:"similarity"`
}

// Rank returns up to n movies most similar to the movie at pos, excluding
// pos itself. Candidates are chosen by similarity (ties keep corpus order)
// and then stably re-sorted by rating, highest first.
func Rank(src similarity.Source, movies []corpus.Movie, pos, n int) []Ranked {
	if n <= 0 || pos < 0 || pos >= len(movies) {
		return []Ranked{}
	}
	row := src.Row(pos)

	candidates := make([]int, 0, len(movies)-1)
	for i := range movies {
		if i != pos {
			candidates = append(candidates, i)
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return row[candidates[a]] > row[candidates[b]]
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}

	out := make([]Ranked, len(candidates))
	for k, i := range candidates {
		out[k] = Ranked{Movie: movies[i], Position: i, Similarity: row[i]}
	}
	SortByRating(out)
	return out
}

// SortByRating stably orders ranked movies by rating, highest first.
func SortByRating(ranked []Ranked) {
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Rating > ranked[b].Rating
	})
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

// Package corpus builds the fixed, deduplicated movie universe used by the
// recommendation engine.
//
// Raw rows arrive as Record values with nullable columns. Build validates
// them, concatenates the textual fields into a single lower-cased feature,
// drops duplicates, and derives a TitleIndex that maps each normalized title
// to exactly one corpus position.
//
// A Corpus is read-only after Build returns and is safe for concurrent use.
package corpus

import (
	"database/sql"
	"strings"
)

// Record is one raw row from the corpus source. Every column is nullable so
// that missing cells survive the load and can be rejected here.
type Record struct {
	MovieID   sql.NullInt64
	Title     sql.NullString
	Overview  sql.NullString
	Keywords  sql.NullString
	Cast      sql.NullString
	Crew      sql.NullString
	Genres    sql.NullString
	Rating    sql.NullFloat64
	VoteCount sql.NullInt64
}

// Movie is a validated corpus entry.
type Movie struct {
	ID           int64    `json:"id"`     // Catalog (TMDB) movie id
	Title        string   `json:"title"`  // Display title as loaded
	Rating       float64  `json:"rating"` // External average rating
	Genres       []string `json:"genres"`
	CombinedText string   `json:"-"` // Lower-cased overview, keywords, cast and crew
}

// HasGenre reports whether the movie is tagged with genre (case-insensitive).
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// NormalizeTitle trims and lower-cases a title for index lookups.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// SplitGenres splits a comma-separated genre column into trimmed names.
func SplitGenres(raw string) []string {
	parts := strings.Split(raw, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}

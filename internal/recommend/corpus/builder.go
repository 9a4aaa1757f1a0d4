// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package corpus

import (
	"database/sql"
	"strings"
)

// BuildStats counts what Build kept and why rows were excluded.
type BuildStats struct {
	Total           int `json:"total"`
	Kept            int `json:"kept"`
	MissingFields   int `json:"missing_fields"`
	Duplicates      int `json:"duplicates"`
	TitleCollisions int `json:"title_collisions"`
}

// Corpus is the ordered, validated set of movies plus its title index.
type Corpus struct {
	movies []Movie
	index  *TitleIndex
}

// Build validates raw records into a Corpus.
//
// Rows that occur more than once are dropped together with every copy.
// Row identity ignores vote_count and compares the lower-cased combined
// text, so rows that differ only there count as copies. Rows missing any of
// id, title, overview, keywords, cast, crew, genres or rating are dropped
// next, and a row whose normalized title is already taken is dropped so the
// title index stays one-to-one. An input with no valid rows yields an empty
// corpus.
func Build(records []Record) (*Corpus, BuildStats) {
	stats := BuildStats{Total: len(records)}
	movies := make([]Movie, 0, len(records))
	seenTitles := make(map[string]struct{}, len(records))

	copies := make(map[rowKey]int, len(records))
	for i := range records {
		copies[records[i].key()]++
	}

	for _, rec := range records {
		if copies[rec.key()] > 1 {
			stats.Duplicates++
			continue
		}
		if !rec.complete() {
			stats.MissingFields++
			continue
		}

		key := NormalizeTitle(rec.Title.String)
		if _, taken := seenTitles[key]; taken {
			stats.TitleCollisions++
			continue
		}
		seenTitles[key] = struct{}{}

		movies = append(movies, Movie{
			ID:           rec.MovieID.Int64,
			Title:        strings.TrimSpace(rec.Title.String),
			Rating:       rec.Rating.Float64,
			Genres:       SplitGenres(rec.Genres.String),
			CombinedText: combineText(rec),
		})
	}

	stats.Kept = len(movies)
	return &Corpus{movies: movies, index: newTitleIndex(movies)}, stats
}

// rowKey identifies a row for duplicate detection. Null fields compare
// equal to each other and the combined text is null when any part is.
type rowKey struct {
	id       sql.NullInt64
	title    sql.NullString
	genres   sql.NullString
	rating   sql.NullFloat64
	combined sql.NullString
}

func (r *Record) key() rowKey {
	k := rowKey{
		id:     nullInt(r.MovieID),
		title:  nullString(r.Title),
		genres: nullString(r.Genres),
		rating: nullFloat(r.Rating),
	}
	if r.Overview.Valid && r.Keywords.Valid && r.Cast.Valid && r.Crew.Valid {
		k.combined = sql.NullString{String: combineText(*r), Valid: true}
	}
	return k
}

func nullString(v sql.NullString) sql.NullString {
	if !v.Valid {
		return sql.NullString{}
	}
	return v
}

func nullInt(v sql.NullInt64) sql.NullInt64 {
	if !v.Valid {
		return sql.NullInt64{}
	}
	return v
}

func nullFloat(v sql.NullFloat64) sql.NullFloat64 {
	if !v.Valid {
		return sql.NullFloat64{}
	}
	return v
}

// complete reports whether every required column is present. vote_count is
// optional.
func (r *Record) complete() bool {
	return r.MovieID.Valid &&
		r.Title.Valid && strings.TrimSpace(r.Title.String) != "" &&
		r.Overview.Valid &&
		r.Keywords.Valid &&
		r.Cast.Valid &&
		r.Crew.Valid &&
		r.Genres.Valid &&
		r.Rating.Valid
}

func combineText(r Record) string {
	return strings.ToLower(strings.Join([]string{
		r.Overview.String,
		r.Keywords.String,
		r.Cast.String,
		r.Crew.String,
	}, " "))
}

// Len returns the number of movies.
func (c *Corpus) Len() int {
	return len(c.movies)
}

// IsEmpty reports whether the corpus has no movies.
func (c *Corpus) IsEmpty() bool {
	return len(c.movies) == 0
}

// Movie returns the movie at position i.
func (c *Corpus) Movie(i int) Movie {
	return c.movies[i]
}

// Movies returns a copy of the movies in corpus order.
func (c *Corpus) Movies() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Documents returns the combined text of every movie in corpus order.
func (c *Corpus) Documents() []string {
	docs := make([]string, len(c.movies))
	for i := range c.movies {
		docs[i] = c.movies[i].CombinedText
	}
	return docs
}

// Titles returns display titles in corpus order.
func (c *Corpus) Titles() []string {
	titles := make([]string, len(c.movies))
	for i := range c.movies {
		titles[i] = c.movies[i].Title
	}
	return titles
}

// Index returns the title index.
func (c *Corpus) Index() *TitleIndex {
	return c.index
}

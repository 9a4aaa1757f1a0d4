// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/metrics"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/corpus"
)

// RequiredColumns are the corpus CSV columns, in Record field order.
var RequiredColumns = []string{
	"movie_id", "title", "overview", "keywords", "cast", "crew", "genres", "rating", "vote_count",
}

// GenreMovie is a corpus movie returned by a genre query.
type GenreMovie struct {
	Position int     `json:"-"`
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Rating   float64 `json:"rating"`
}

// LoadMoviesCSV reads raw corpus rows from a CSV file with a header row.
// Empty cells load as NULL and numeric cells that do not parse load as
// NULL, so bad rows reach the corpus builder and are rejected there.
// Extra columns are ignored; missing required columns are an error.
func (db *DB) LoadMoviesCSV(ctx context.Context, path string) ([]corpus.Record, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCorpusFileNotFound, path)
		}
		return nil, fmt.Errorf("stat corpus file: %w", err)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	source := fmt.Sprintf("read_csv(%s, header = true, all_varchar = true)", quoteLiteral(path))

	columns, err := db.csvColumns(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("read corpus header: %w", err)
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Path: path, Columns: missing}
	}

	col := func(name string) string { return quoteIdent(columns[name]) }
	query := fmt.Sprintf(`SELECT
			TRY_CAST(trim(%s) AS BIGINT),
			%s, %s, %s, %s, %s, %s,
			TRY_CAST(trim(%s) AS DOUBLE),
			TRY_CAST(trim(%s) AS BIGINT)
		FROM %s`,
		col("movie_id"),
		col("title"), col("overview"), col("keywords"), col("cast"), col("crew"), col("genres"),
		col("rating"),
		col("vote_count"),
		source)

	records, err := queryAndScan(ctx, db.conn, "load_csv", query, nil, func(rows *sql.Rows) (corpus.Record, error) {
		var r corpus.Record
		err := rows.Scan(&r.MovieID, &r.Title, &r.Overview, &r.Keywords, &r.Cast, &r.Crew, &r.Genres, &r.Rating, &r.VoteCount)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("read corpus rows: %w", err)
	}

	logging.Info().Str("path", path).Int("rows", len(records)).Msg("Corpus CSV loaded")
	return records, nil
}

// csvColumns maps lower-cased header names to their spelling in the file.
func (db *DB) csvColumns(ctx context.Context, source string) (map[string]string, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT * FROM "+source+" LIMIT 0")
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	columns := make(map[string]string, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := columns[key]; !dup {
			columns[key] = name
		}
	}
	return columns, rows.Err()
}

// StoreCorpus replaces the movies table with the validated corpus.
func (db *DB) StoreCorpus(ctx context.Context, movies []corpus.Movie) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("store_corpus", "movies", time.Since(start), err)
	}()

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Ensure transaction is finalized
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().
					Err(rbErr).
					AnErr("original_error", err).
					Msg("Transaction rollback failed")
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM movies"); err != nil {
		return fmt.Errorf("failed to clear movies: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO movies (position, movie_id, title, rating, genres) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i := range movies {
		m := &movies[i]
		if _, err = stmt.ExecContext(ctx, i, m.ID, m.Title, m.Rating, strings.Join(m.Genres, ",")); err != nil {
			return fmt.Errorf("failed to insert movie %d: %w", m.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logging.Debug().Int("movies", len(movies)).Msg("Corpus stored")
	return nil
}

// TopByGenre returns up to n movies tagged with genre (case-insensitive),
// highest rated first. Equal ratings keep corpus order.
func (db *DB) TopByGenre(ctx context.Context, genre string, n int) ([]GenreMovie, error) {
	genre = strings.ToLower(strings.TrimSpace(genre))
	if genre == "" || n <= 0 {
		return []GenreMovie{}, nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT position, movie_id, title, rating
		FROM movies
		WHERE list_contains(string_split(lower(genres), ','), ?)
		ORDER BY rating DESC, position ASC
		LIMIT ?`

	return queryAndScan(ctx, db.conn, "top_by_genre", query, []interface{}{genre, n}, func(rows *sql.Rows) (GenreMovie, error) {
		var m GenreMovie
		err := rows.Scan(&m.Position, &m.ID, &m.Title, &m.Rating)
		return m, err
	})
}

// Genres returns the distinct genres in the corpus, sorted.
func (db *DB) Genres(ctx context.Context) ([]string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT DISTINCT genre
		FROM (SELECT unnest(string_split(genres, ',')) AS genre FROM movies)
		WHERE genre <> ''
		ORDER BY genre`

	return queryAndScan(ctx, db.conn, "genres", query, nil, func(rows *sql.Rows) (string, error) {
		var g string
		err := rows.Scan(&g)
		return g, err
	})
}

// CountMovies returns the number of stored corpus movies.
func (db *DB) CountMovies(ctx context.Context) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var n int64
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&n); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

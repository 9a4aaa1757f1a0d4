// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the corpus tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// tableCreationQueries returns the table creation SQL statements.
//
// movies holds the validated corpus in corpus order. genres is the
// comma-joined genre list without padding, so a genre matches when it is
// an element of string_split(genres, ',').
func tableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS movies (
			position INTEGER PRIMARY KEY,
			movie_id BIGINT NOT NULL,
			title TEXT NOT NULL,
			rating DOUBLE NOT NULL,
			genres TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_movies_rating ON movies (rating)`,
	}
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/metrics"
)

// scanFunc is a function that scans a single row into a result type
type scanFunc[T any] func(*sql.Rows) (T, error)

// queryAndScan executes a query and scans all rows using the provided scan
// function. The query is timed under operation in the DB metrics.
func queryAndScan[T any](ctx context.Context, db *sql.DB, operation, query string, args []interface{}, scan scanFunc[T]) (results []T, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery(operation, "movies", time.Since(start), err)
	}()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	results = []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

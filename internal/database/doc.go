// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

// Package database is the DuckDB-backed corpus store.
//
// # Overview
//
// The corpus arrives as a CSV file. LoadMoviesCSV reads it with DuckDB's
// read_csv table function into nullable corpus.Record values; validation
// and deduplication happen in the corpus package. The validated corpus is
// then written back with StoreCorpus so that genre browsing can run as SQL.
//
// Core files:
//   - database.go: lifecycle (open, initialize, ping, close with checkpoint)
//   - database_schema.go: the movies table and its rating index
//   - database_connection.go: connection pool configuration
//   - database_utils.go: context timeouts, checkpoint and SQL quoting
//   - movies.go: CSV load, corpus store, genre queries
//   - query_helpers.go: generic row scanning with query metrics
//
// # Storage
//
// An empty DatabaseConfig.Path keeps the database in memory. The corpus
// is reloaded from CSV on every start, so nothing needs to persist.
//
// # Thread Safety
//
// DB is safe for concurrent use. After StoreCorpus the movies table is
// only read.
//
// # Usage Example
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	records, err := db.LoadMoviesCSV(ctx, cfg.Corpus.Path)
//	engine, err := recommend.Build(records, recCfg, logger)
//	err = db.StoreCorpus(ctx, engine.Corpus().Movies())
//	top, err := db.TopByGenre(ctx, "Drama", 30)
package database

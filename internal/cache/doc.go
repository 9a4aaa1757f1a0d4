// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

/*
Package cache provides typed key/value caches with expiration.

Three implementations satisfy Store[V]:

  - TTL: thread-safe in-memory map with a background cleanup loop
  - Badger: persistent store on BadgerDB with per-entry TTL and JSON values
  - Noop: never stores anything, used when caching is disabled

The catalog client caches movie details through a Store chosen by the
cache.backend setting, so repeated lookups of the same movie survive
restarts when the badger backend is on.

# Usage

	details := cache.NewTTL[*tmdb.MovieDetail]("tmdb_detail", 24*time.Hour)
	defer details.Close()

	details.Set("detail:27205", d)
	if d, ok := details.Get("detail:27205"); ok {
	    // cached
	}

# Thread Safety

All implementations are safe for concurrent use.
*/
package cache

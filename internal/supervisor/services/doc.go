// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

/*
Package services provides suture.Service wrappers for server components.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the ListenAndServe pattern to Serve

Cache GC (CacheGCService):
  - Runs BadgerDB value log GC on a ticker
  - Only registered for the badger cache backend

Cache Stats (CacheStatsService):
  - Logs hit/miss statistics for each named cache on a ticker

# Error Handling

	nil         -> service stopped cleanly, not restarted
	error       -> service crashed, restarted by the supervisor
	ctx.Err()   -> shutdown requested

All services implement fmt.Stringer; suture uses the name in its events.
*/
package services

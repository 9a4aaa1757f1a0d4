// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
are exposed by the API at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Corpus and index:
  - corpus_movies
  - corpus_rows_dropped{reason}
  - index_vocabulary_size
  - index_build_duration_seconds{mode}

Recommendations:
  - title_resolutions_total{outcome}
  - recommendation_requests_total{strategy, outcome}
  - recommendation_duration_seconds{strategy}

Enrichment and upstreams:
  - enrich_items_total{outcome}
  - enrich_retries_total
  - enrich_batch_duration_seconds
  - tmdb_requests_total{endpoint, status}
  - tmdb_request_duration_seconds{endpoint}
  - llm_requests_total{outcome}
  - llm_request_duration_seconds
  - llm_titles_parsed

Storage and resilience:
  - duckdb_query_duration_seconds{operation, table}
  - duckdb_query_errors_total{operation, table, error_type}
  - cache_hits_total{cache}, cache_misses_total{cache}, cache_entries{cache}
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

# Usage

Callers use the Record* helpers rather than touching collectors directly:

	start := time.Now()
	rows, err := db.QueryContext(ctx, query)
	metrics.RecordDBQuery("select", "movies", time.Since(start), err)
*/
package metrics

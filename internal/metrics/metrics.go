// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Corpus and Index Metrics
	CorpusMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_movies",
			Help: "Number of movies in the loaded corpus",
		},
	)

	CorpusRowsDropped = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "corpus_rows_dropped",
			Help: "Rows excluded by the last corpus build",
		},
		[]string{"reason"}, // missing_fields, duplicate, title_collision
	)

	IndexVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_vocabulary_size",
			Help: "Number of terms in the TF-IDF vocabulary",
		},
	)

	IndexBuildDuration = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "index_build_duration_seconds",
			Help: "Time spent building the vector space and similarity source",
		},
		[]string{"mode"},
	)

	// Recommendation Metrics
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "title_resolutions_total",
			Help: "Total number of title resolutions by outcome",
		},
		[]string{"outcome"}, // exact, fuzzy, no_match
	)

	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"strategy", "outcome"}, // strategy: similar, genre, criteria
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Recommendation latency including enrichment",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"strategy"},
	)

	// Enrichment Metrics
	EnrichItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrich_items_total",
			Help: "Enrichment items by terminal outcome",
		},
		[]string{"outcome"}, // ok, connectivity, permanent, cancelled
	)

	EnrichRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrich_retries_total",
			Help: "Total number of enrichment retries after connectivity failures",
		},
	)

	EnrichDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "enrich_batch_duration_seconds",
			Help:    "Duration of one enrichment batch",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// Catalog (TMDB) Metrics
	TMDBRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of catalog API requests",
		},
		[]string{"endpoint", "status"},
	)

	TMDBRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "Catalog API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	// LLM Metrics
	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of language model requests",
		},
		[]string{"outcome"}, // success, error, rejected
	)

	LLMRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Language model request duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	LLMTitlesParsed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "llm_titles_parsed",
			Help:    "Number of titles parsed from one language model reply",
			Buckets: []float64{0, 1, 2, 5, 10, 20},
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of entries in the cache",
		},
		[]string{"cache"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCorpusBuild publishes the result of a corpus build.
func RecordCorpusBuild(kept, missingFields, duplicates, titleCollisions int) {
	CorpusMovies.Set(float64(kept))
	CorpusRowsDropped.WithLabelValues("missing_fields").Set(float64(missingFields))
	CorpusRowsDropped.WithLabelValues("duplicate").Set(float64(duplicates))
	CorpusRowsDropped.WithLabelValues("title_collision").Set(float64(titleCollisions))
}

// RecordIndexBuild publishes vocabulary size and build time.
func RecordIndexBuild(mode string, vocabulary int, duration time.Duration) {
	IndexVocabularySize.Set(float64(vocabulary))
	IndexBuildDuration.WithLabelValues(mode).Set(duration.Seconds())
}

// RecordResolution counts a title resolution outcome.
func RecordResolution(outcome string) {
	ResolutionsTotal.WithLabelValues(outcome).Inc()
}

// RecordRecommendation records one recommendation request. outcome is a
// short label such as success, no_match or error.
func RecordRecommendation(strategy, outcome string, duration time.Duration) {
	RecommendationRequests.WithLabelValues(strategy, outcome).Inc()
	RecommendationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

// RecordEnrichItem counts an enrichment item's terminal outcome.
func RecordEnrichItem(outcome string) {
	EnrichItems.WithLabelValues(outcome).Inc()
}

// RecordEnrichRetry counts one retry.
func RecordEnrichRetry() {
	EnrichRetries.Inc()
}

// RecordEnrichBatch records the duration of one enrichment batch.
func RecordEnrichBatch(duration time.Duration) {
	EnrichDuration.Observe(duration.Seconds())
}

// RecordTMDBRequest records a catalog API call. status is the HTTP status
// code, or 0 when no response was received.
func RecordTMDBRequest(endpoint string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	TMDBRequests.WithLabelValues(endpoint, label).Inc()
	TMDBRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordLLMRequest records one language model call and how many titles it
// produced.
func RecordLLMRequest(outcome string, duration time.Duration, titles int) {
	LLMRequests.WithLabelValues(outcome).Inc()
	LLMRequestDuration.Observe(duration.Seconds())
	if outcome == "success" {
		LLMTitlesParsed.Observe(float64(titles))
	}
}

// RecordCacheHit counts a hit on the named cache.
func RecordCacheHit(cache string) {
	CacheHits.WithLabelValues(cache).Inc()
}

// RecordCacheMiss counts a miss on the named cache.
func RecordCacheMiss(cache string) {
	CacheMisses.WithLabelValues(cache).Inc()
}

// SetCacheEntries publishes the entry count of the named cache.
func SetCacheEntries(cache string, n int) {
	CacheEntries.WithLabelValues(cache).Set(float64(n))
}

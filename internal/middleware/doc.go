// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

/*
Package middleware provides chi-compatible HTTP middleware.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - Compression: gzip for clients that send Accept-Encoding: gzip
  - PerformanceMonitor: sliding window of per-route latency percentiles

All middleware has the func(http.Handler) http.Handler shape and is
installed with chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perfMon.Middleware)
	r.Use(middleware.Compression)

PrometheusMetrics and PerformanceMonitor read the route pattern after the
wrapped handler returns, so they must be installed on the router (or a
route group), not around it.
*/
package middleware

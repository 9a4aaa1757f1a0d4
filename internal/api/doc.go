// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

/*
Package api serves the recommendation HTTP API on a chi router.

Endpoints (all under /api/v1):

	GET  /recommendations/similar?title=&n=   more-like-this by content
	GET  /recommendations/genre?genre=&n=     top rated in a genre
	POST /recommendations/criteria            {"query": "..."} via the language model
	GET  /movies/titles                       corpus titles in corpus order
	GET  /movies/popular                      catalog popular list
	GET  /genres                              distinct corpus genres
	GET  /health, /health/live, /health/ready, /health/performance

GET /metrics serves Prometheus metrics outside the /api/v1 prefix.

Every response uses the models.APIResponse envelope. Errors carry a
machine-readable code:

	VALIDATION_ERROR      400  bad query or body
	NO_MATCH              404  title did not resolve
	CORPUS_EMPTY          503  engine has no movies
	UPSTREAM_UNAVAILABLE  502  catalog or language model failed
	DATABASE_ERROR        500  DuckDB query failed

Recommendation lists are enriched with posters from the catalog. An item
whose lookup fails keeps its place in the list with a null poster_url,
so catalog outages degrade the response instead of failing it.

Middleware order: request ID, real IP, panic recovery, CORS, then per-group
rate limiting, security headers, metrics, latency sampling, gzip and a
request timeout.
*/
package api

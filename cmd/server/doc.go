// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

/*
Package main is the entry point for the movie recommendation server.

The server answers three kinds of question over HTTP: movies similar to a
title from the corpus (TF-IDF and cosine similarity), the top-rated corpus
movies in a genre, and movies matching a free-text description (a language
model proposes titles, the TMDB catalog fills in details).

# Application Architecture

	RootSupervisor ("movie-recommender")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── CacheStatsService
	│   └── CacheGCService (badger backend)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog with JSON/console output modes
 3. Database: in-memory DuckDB
 4. Corpus: CSV load through DuckDB, validation, TF-IDF fit, similarity index
 5. Catalog cache: memory, badger or none
 6. TMDB client, enrichment pipeline, LLM client and criteria service
 7. Supervisor Tree: Suture v4 process supervision
 8. HTTP Server: Chi router with middleware stack

The engine is built once; a missing corpus file or missing CSV columns
abort startup. A corpus with no valid rows starts the server with
similar-title requests answering CORPUS_EMPTY.

# Configuration

Sources, highest priority first:
  - Environment variables
  - Config file (CONFIG_PATH, ./config.yaml, /etc/movie-recommender/config.yaml)
  - Built-in defaults

Common variables:

	CORPUS_PATH=data/movies.csv
	HTTP_PORT=8501
	TMDB_API_KEY=...          # posters, popular list, criteria details
	OPENAI_API_KEY=...        # criteria recommendations
	SIMILARITY_MODE=dense     # or per_query
	MATCH_THRESHOLD=90
	CACHE_BACKEND=memory      # badger, none
	LOG_LEVEL=info
	LOG_FORMAT=json

Without TMDB_API_KEY recommendation records carry no poster and
/movies/popular and /recommendations/criteria answer UPSTREAM_UNAVAILABLE.
Without an LLM key only the criteria endpoint is unavailable.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT; services that do not
stop in time are reported.

# Example Usage

	export CORPUS_PATH=./movies.csv
	export TMDB_API_KEY=your-tmdb-key
	export OPENAI_API_KEY=your-openai-key
	./server

	curl 'http://localhost:8501/api/v1/recommendations/similar?title=Heat&n=5'
	curl -X POST -d '{"query":"90s heist films"}' http://localhost:8501/api/v1/recommendations/criteria
*/
package main

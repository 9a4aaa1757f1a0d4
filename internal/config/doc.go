// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

/*
Package config provides centralized configuration management for the movie
recommendation service.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file, then environment variables. Load validates the merged result and
returns descriptive errors for anything out of range.

# Configuration File

The first existing file among config.yaml, config.yml,
/etc/movie-recommender/config.yaml and /etc/movie-recommender/config.yml is
used. CONFIG_PATH overrides the search.

Example:

	corpus:
	  path: /data/movies.csv
	recommend:
	  similarity_mode: dense
	  match_threshold: 90
	  scorer: wratio
	tmdb:
	  api_key: "..."
	enrich:
	  workers: 10
	  max_attempts: 3
	  retry_delay: 1s
	cache:
	  backend: badger
	  path: /data/cache

# Environment Variables

Only mapped variables are read. The most common:

  - CORPUS_PATH: movie metadata CSV (default: data/movies.csv)
  - TMDB_API_KEY: catalog API key
  - OPENAI_API_KEY: chat completion API key; criteria search is off without it
  - HTTP_PORT, HTTP_HOST: listener (default: 0.0.0.0:8501)
  - SIMILARITY_MODE: dense or per_query
  - MATCH_THRESHOLD, MATCH_SCORER: fuzzy title matching
  - ENRICH_WORKERS, ENRICH_MAX_ATTEMPTS, ENRICH_RETRY_DELAY, ENRICH_BACKOFF
  - CACHE_BACKEND: memory, badger or none
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - CORS_ORIGINS: comma-separated list

See envMappings in koanf.go for the complete list.
*/
package config

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional config file, and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Data:
//     - Corpus: Location of the movie metadata CSV
//     - Database: DuckDB settings for the corpus store
//
//  2. Recommendation:
//     - Recommend: Similarity mode, title matching and result counts
//     - Enrich: Worker pool and retry policy for catalog lookups
//
//  3. Upstreams:
//     - TMDB: Movie catalog API
//     - LLM: Chat completion API for criteria-driven suggestions
//
//  4. Infrastructure:
//     - Cache: Catalog detail cache backend and TTLs
//     - Server, API: HTTP listener, timeouts, rate limiting and CORS
//     - Logging: Log levels and output formats
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Database)
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Corpus    CorpusConfig    `koanf:"corpus"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Enrich    EnrichConfig    `koanf:"enrich"`
	LLM       LLMConfig       `koanf:"llm"`
	Cache     CacheConfig     `koanf:"cache"`
	API       APIConfig       `koanf:"api"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// CorpusConfig locates the movie metadata file.
type CorpusConfig struct {
	// Path is a CSV file with columns movie_id, title, overview, keywords,
	// cast, crew, genres, rating, vote_count.
	Path string `koanf:"path"`
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	// Path is the DuckDB file. Empty keeps the database in memory, which is
	// enough because the corpus is reloaded from CSV on every start.
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = DuckDB default
}

// RecommendConfig holds content-based recommender settings
type RecommendConfig struct {
	// SimilarityMode is "dense" (precomputed n×n matrix) or "per_query".
	SimilarityMode string `koanf:"similarity_mode"`

	// MatchThreshold is the minimum fuzzy score (0-100) for a title match.
	MatchThreshold int `koanf:"match_threshold"`

	// Scorer names the fuzzy scorer: ratio, partial_ratio,
	// token_sort_ratio, token_set_ratio, wratio.
	Scorer string `koanf:"scorer"`

	DefaultCount int `koanf:"default_count"`
	MaxCount     int `koanf:"max_count"`

	// GenreCount is the default size of a genre listing.
	GenreCount int `koanf:"genre_count"`
}

// TMDBConfig holds movie catalog API settings
type TMDBConfig struct {
	APIKey  string        `koanf:"api_key"`
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`

	// Language is sent with search and detail requests.
	Language string `koanf:"language"`

	// PopularLanguage is sent with the popular list request.
	PopularLanguage string `koanf:"popular_language"`

	// RateLimit is the sustained outbound request rate per second.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	// MaxRateLimitRetries bounds retries after HTTP 429.
	MaxRateLimitRetries int `koanf:"max_rate_limit_retries"`
}

// EnrichConfig holds enrichment pipeline settings
type EnrichConfig struct {
	Workers     int           `koanf:"workers"`
	MaxAttempts int           `koanf:"max_attempts"`
	RetryDelay  time.Duration `koanf:"retry_delay"`
	Backoff     string        `koanf:"backoff"` // fixed or exponential
	MaxDelay    time.Duration `koanf:"max_delay"`
}

// LLMConfig holds chat completion API settings
type LLMConfig struct {
	APIKey      string        `koanf:"api_key"`
	BaseURL     string        `koanf:"base_url"`
	Model       string        `koanf:"model"`
	Timeout     time.Duration `koanf:"timeout"`
	Temperature float64       `koanf:"temperature"`
	MaxTokens   int           `koanf:"max_tokens"`
}

// Enabled reports whether an API key is configured.
func (c *LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

// CacheConfig holds catalog cache settings
type CacheConfig struct {
	// Backend is memory, badger or none.
	Backend string `koanf:"backend"`

	// Path is the BadgerDB directory for the badger backend.
	Path string `koanf:"path"`

	DetailTTL  time.Duration `koanf:"detail_ttl"`
	PopularTTL time.Duration `koanf:"popular_ttl"`

	GCInterval     time.Duration `koanf:"gc_interval"`
	GCDiscardRatio float64       `koanf:"gc_discard_ratio"`

	// StatsInterval is how often cache statistics are logged.
	StatsInterval time.Duration `koanf:"stats_interval"`
}

// APIConfig holds HTTP API settings
type APIConfig struct {
	RequestTimeout    time.Duration `koanf:"request_timeout"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// Load reads configuration using Koanf v2 with layered sources.
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

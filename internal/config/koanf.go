// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/movie-recommender/config.yaml",
	"/etc/movie-recommender/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8501,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Corpus: CorpusConfig{
			Path: "data/movies.csv",
		},
		Database: DatabaseConfig{
			Path:      "", // in-memory
			MaxMemory: "1GB",
			Threads:   0,
		},
		Recommend: RecommendConfig{
			SimilarityMode: "dense",
			MatchThreshold: 90,
			Scorer:         "wratio",
			DefaultCount:   10,
			MaxCount:       50,
			GenreCount:     30,
		},
		TMDB: TMDBConfig{
			APIKey:              "",
			BaseURL:             "https://api.themoviedb.org/3",
			Timeout:             30 * time.Second,
			Language:            "en-EN",
			PopularLanguage:     "en-US",
			RateLimit:           40,
			RateBurst:           20,
			MaxRateLimitRetries: 5,
		},
		Enrich: EnrichConfig{
			Workers:     10,
			MaxAttempts: 3,
			RetryDelay:  time.Second,
			Backoff:     "fixed",
			MaxDelay:    10 * time.Second,
		},
		LLM: LLMConfig{
			APIKey:      "",
			BaseURL:     "https://api.openai.com/v1",
			Model:       "gpt-3.5-turbo",
			Timeout:     60 * time.Second,
			Temperature: 0.7,
			MaxTokens:   300,
		},
		Cache: CacheConfig{
			Backend:        "memory",
			Path:           "data/cache",
			DetailTTL:      24 * time.Hour,
			PopularTTL:     time.Hour,
			GCInterval:     10 * time.Minute,
			GCDiscardRatio: 0.5,
			StatsInterval:  5 * time.Minute,
		},
		API: APIConfig{
			RequestTimeout:    60 * time.Second,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
	}
}

// Defaults returns the built-in configuration without reading any file or
// environment variable.
func Defaults() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Built-in defaults (lowest priority)
//  2. Config file (config.yaml) if present
//  3. Environment variables (highest priority)
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path of the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths lists config paths that may arrive as comma-separated
// strings from the environment.
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields converts comma-separated strings to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"corpus_path": "corpus.path",

	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	"similarity_mode":         "recommend.similarity_mode",
	"match_threshold":         "recommend.match_threshold",
	"match_scorer":            "recommend.scorer",
	"recommend_default_count": "recommend.default_count",
	"recommend_max_count":     "recommend.max_count",
	"genre_count":             "recommend.genre_count",

	"tmdb_api_key":          "tmdb.api_key",
	"tmdb_base_url":         "tmdb.base_url",
	"tmdb_timeout":          "tmdb.timeout",
	"tmdb_language":         "tmdb.language",
	"tmdb_popular_language": "tmdb.popular_language",
	"tmdb_rate_limit":       "tmdb.rate_limit",
	"tmdb_rate_burst":       "tmdb.rate_burst",
	"tmdb_max_retries":      "tmdb.max_rate_limit_retries",

	"enrich_workers":      "enrich.workers",
	"enrich_max_attempts": "enrich.max_attempts",
	"enrich_retry_delay":  "enrich.retry_delay",
	"enrich_backoff":      "enrich.backoff",
	"enrich_max_delay":    "enrich.max_delay",

	"openai_api_key":  "llm.api_key",
	"llm_api_key":     "llm.api_key",
	"llm_base_url":    "llm.base_url",
	"llm_model":       "llm.model",
	"llm_timeout":     "llm.timeout",
	"llm_temperature": "llm.temperature",
	"llm_max_tokens":  "llm.max_tokens",

	"cache_backend":          "cache.backend",
	"cache_path":             "cache.path",
	"cache_detail_ttl":       "cache.detail_ttl",
	"cache_popular_ttl":      "cache.popular_ttl",
	"cache_gc_interval":      "cache.gc_interval",
	"cache_gc_discard_ratio": "cache.gc_discard_ratio",
	"cache_stats_interval":   "cache.stats_interval",

	"api_request_timeout": "api.request_timeout",
	"rate_limit_requests": "api.rate_limit_reqs",
	"rate_limit_window":   "api.rate_limit_window",
	"disable_rate_limit":  "api.rate_limit_disabled",
	"cors_origins":        "api.cors_origins",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Returns empty string for unmapped variables so they are skipped.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package config

import (
	"fmt"
	"strings"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/cache"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/resolver"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/similarity"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCorpus(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateTMDB(); err != nil {
		return err
	}

	if err := c.validateEnrich(); err != nil {
		return err
	}

	if err := c.validateLLM(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

func (c *Config) validateCorpus() error {
	if strings.TrimSpace(c.Corpus.Path) == "" {
		return fmt.Errorf("CORPUS_PATH is required")
	}
	return nil
}

// validateRecommend validates similarity mode, matching and result counts
func (c *Config) validateRecommend() error {
	r := c.Recommend
	switch similarity.Mode(r.SimilarityMode) {
	case similarity.ModeDense, similarity.ModePerQuery:
	default:
		return fmt.Errorf("SIMILARITY_MODE must be one of: dense, per_query (got %q)", r.SimilarityMode)
	}
	if r.MatchThreshold < 0 || r.MatchThreshold > 100 {
		return fmt.Errorf("MATCH_THRESHOLD must be between 0 and 100 (got %d)", r.MatchThreshold)
	}
	if _, ok := resolver.ScorerByName(r.Scorer); !ok {
		return fmt.Errorf("MATCH_SCORER must be one of: %s (got %q)",
			strings.Join(resolver.ScorerNames(), ", "), r.Scorer)
	}
	if r.DefaultCount < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_COUNT must be at least 1")
	}
	if r.MaxCount < r.DefaultCount {
		return fmt.Errorf("RECOMMEND_MAX_COUNT must be >= RECOMMEND_DEFAULT_COUNT")
	}
	if r.GenreCount < 1 {
		return fmt.Errorf("GENRE_COUNT must be at least 1")
	}
	return nil
}

// validateTMDB validates the catalog client. The API key is optional so the
// content-based recommender can run offline.
func (c *Config) validateTMDB() error {
	if err := validateBaseURL(c.TMDB.BaseURL, "TMDB_BASE_URL"); err != nil {
		return err
	}
	if containsPlaceholder(c.TMDB.APIKey) {
		return fmt.Errorf("TMDB_API_KEY contains a placeholder value")
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive")
	}
	if c.TMDB.RateLimit <= 0 {
		return fmt.Errorf("TMDB_RATE_LIMIT must be positive")
	}
	if c.TMDB.RateBurst < 1 {
		return fmt.Errorf("TMDB_RATE_BURST must be at least 1")
	}
	if c.TMDB.MaxRateLimitRetries < 0 {
		return fmt.Errorf("TMDB_MAX_RETRIES must not be negative")
	}
	return nil
}

// validBackoffs defines the allowed enrichment retry backoff strategies
var validBackoffs = map[string]bool{
	"fixed":       true,
	"exponential": true,
}

// validateEnrich validates worker pool and retry policy
func (c *Config) validateEnrich() error {
	e := c.Enrich
	if e.Workers < 1 {
		return fmt.Errorf("ENRICH_WORKERS must be at least 1")
	}
	if e.MaxAttempts < 1 {
		return fmt.Errorf("ENRICH_MAX_ATTEMPTS must be at least 1")
	}
	if e.RetryDelay < 0 {
		return fmt.Errorf("ENRICH_RETRY_DELAY must not be negative")
	}
	if !validBackoffs[e.Backoff] {
		return fmt.Errorf("ENRICH_BACKOFF must be one of: fixed, exponential")
	}
	if e.MaxDelay > 0 && e.MaxDelay < e.RetryDelay {
		return fmt.Errorf("ENRICH_MAX_DELAY must be >= ENRICH_RETRY_DELAY")
	}
	return nil
}

// validateLLM validates the chat completion client (only if enabled)
func (c *Config) validateLLM() error {
	if !c.LLM.Enabled() {
		return nil
	}
	if containsPlaceholder(c.LLM.APIKey) {
		return fmt.Errorf("OPENAI_API_KEY contains a placeholder value")
	}
	if err := validateBaseURL(c.LLM.BaseURL, "LLM_BASE_URL"); err != nil {
		return err
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return fmt.Errorf("LLM_MODEL is required when OPENAI_API_KEY is set")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2")
	}
	return nil
}

// validateCache validates the catalog cache backend
func (c *Config) validateCache() error {
	backend, err := cache.ParseBackend(c.Cache.Backend)
	if err != nil {
		return fmt.Errorf("CACHE_BACKEND: %w", err)
	}
	if backend == cache.BackendBadger && strings.TrimSpace(c.Cache.Path) == "" {
		return fmt.Errorf("CACHE_PATH is required for the badger backend")
	}
	if c.Cache.DetailTTL <= 0 || c.Cache.PopularTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	if c.Cache.GCDiscardRatio <= 0 || c.Cache.GCDiscardRatio >= 1 {
		return fmt.Errorf("CACHE_GC_DISCARD_RATIO must be between 0 and 1 (exclusive)")
	}
	return nil
}

// validateAPI validates HTTP API rate limits and timeouts
func (c *Config) validateAPI() error {
	if c.API.RequestTimeout <= 0 {
		return fmt.Errorf("API_REQUEST_TIMEOUT must be positive")
	}
	if c.API.RateLimitDisabled {
		return nil
	}
	if c.API.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	return c.validateLogFormat()
}

// validateLogLevel validates the log level configuration
func (c *Config) validateLogLevel() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	return nil
}

// validateLogFormat validates the log format configuration
func (c *Config) validateLogFormat() error {
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns defines common placeholder patterns that indicate
// the user forgot to set a real value.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_KEY",
	"YOUR_API_KEY",
	"PLACEHOLDER",
	"TODO",
	"FIXME",
	"EXAMPLE",
}

// containsPlaceholder checks if a value contains common placeholder patterns
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	return containsAnyPattern(upperValue, placeholderPatterns)
}

// containsAnyPattern checks if a string contains any of the provided patterns
func containsAnyPattern(s string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(s, pattern) {
			return true
		}
	}
	return false
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

// Package tmdb is a client for the TMDB movie catalog API.
//
// Every call goes through an outbound rate limiter, a circuit breaker named
// "tmdb-api" and HTTP 429 backoff that honors Retry-After. The breaker only
// counts failures that affect every request: rejected credentials and
// exhausted rate-limit retries. Detail lookups and
// the popular list are cached. Errors are classified so callers can tell
// transient failures (ErrConnectivity) from permanent ones (ErrNoResults,
// ErrNotFound, APIError).
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/breaker"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/cache"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/config"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/metrics"
)

// BreakerName labels the catalog circuit breaker in metrics and health checks.
const BreakerName = "tmdb-api"

// Endpoint labels for metrics.
const (
	endpointSearch  = "search"
	endpointDetail  = "detail"
	endpointPopular = "popular"
)

// Client talks to the TMDB v3 API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	popularLng string

	limiter *rate.Limiter
	breaker *breaker.Breaker

	details cache.Store[*Details]
	popular cache.Store[[]MovieSummary]

	maxRateLimitRetries int
	rateLimitBaseDelay  time.Duration

	logger zerolog.Logger
}

// NewClient creates a catalog client. Nil stores disable the corresponding
// cache.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewClient(cfg *config.TMDBConfig, details cache.Store[*Details], popular cache.Store[[]MovieSummary], logger zerolog.Logger) *Client {
	if details == nil {
		details = cache.NewNoop[*Details]()
	}
	if popular == nil {
		popular = cache.NewNoop[[]MovieSummary]()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		language:   cfg.Language,
		popularLng: cfg.PopularLanguage,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		breaker: breaker.New(BreakerName, breaker.Settings{
			IsSuccessful: countsAsSuccess,
		}),
		details:             details,
		popular:             popular,
		maxRateLimitRetries: cfg.MaxRateLimitRetries,
		rateLimitBaseDelay:  time.Second,
		logger:              logger.With().Str("component", "tmdb").Logger(),
	}
}

// countsAsSuccess lets only account-wide failures trip the breaker:
// rejected credentials and exhausted 429 retries. Per-movie failures, such
// as an unreachable lookup, a 5xx or a 404, stay with the caller's retry
// policy so one bad item cannot reject its siblings.
func countsAsSuccess(err error) bool {
	return !errors.Is(err, ErrUnauthorized) && !errors.Is(err, ErrRateLimited)
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Breaker exposes the circuit breaker for health reporting.
func (c *Client) Breaker() *breaker.Breaker {
	return c.breaker
}

// SearchMovie returns catalog matches for title, best first. A search with
// no matches returns ErrNoResults.
func (c *Client) SearchMovie(ctx context.Context, title string) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("query", title)
	params.Set("language", c.language)

	var resp listResponse
	if err := c.get(ctx, endpointSearch, "/search/movie", params, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", title, err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("search %q: %w", title, ErrNoResults)
	}
	return resp.Results, nil
}

// MovieDetails returns display details for id, including the director.
func (c *Client) MovieDetails(ctx context.Context, id int64) (*Details, error) {
	key := strconv.FormatInt(id, 10) + ":" + c.language
	if d, ok := c.details.Get(key); ok {
		return d, nil
	}

	params := url.Values{}
	params.Set("append_to_response", "credits")
	params.Set("language", c.language)

	var resp detailResponse
	if err := c.get(ctx, endpointDetail, "/movie/"+strconv.FormatInt(id, 10), params, &resp); err != nil {
		return nil, fmt.Errorf("movie %d: %w", id, err)
	}

	d := resp.toDetails()
	c.details.Set(key, d)
	return d, nil
}

// Popular returns the first page of currently popular movies.
func (c *Client) Popular(ctx context.Context) ([]MovieSummary, error) {
	key := cache.GenerateKey("popular", map[string]interface{}{"language": c.popularLng, "page": 1})
	if list, ok := c.popular.Get(key); ok {
		return list, nil
	}

	params := url.Values{}
	params.Set("language", c.popularLng)
	params.Set("page", "1")

	var resp listResponse
	if err := c.get(ctx, endpointPopular, "/movie/popular", params, &resp); err != nil {
		return nil, fmt.Errorf("popular: %w", err)
	}

	c.popular.Set(key, resp.Results)
	return resp.Results, nil
}

// get performs one GET under rate limiting and circuit breaker protection
// and decodes a 200 response into out.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.do(ctx, endpoint, path, params, out)
	})
	return err
}

func (c *Client) do(ctx context.Context, endpoint, path string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.doRequestWithRateLimit(req, endpoint)
	if err != nil {
		metrics.RecordTMDBRequest(endpoint, 0, time.Since(start))
		c.logger.Debug().Err(err).Str("url", logging.RedactURL(reqURL)).Msg("catalog request failed")
		return err
	}
	defer resp.Body.Close()
	metrics.RecordTMDBRequest(endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return statusError(endpoint, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// doRequestWithRateLimit executes req, retrying on HTTP 429 with
// exponential backoff or the server's Retry-After value. Exhausting the
// retries is reported as a connectivity failure.
func (c *Client) doRequestWithRateLimit(req *http.Request, endpoint string) (*http.Response, error) {
	maxRetries := c.maxRateLimitRetries

	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, classifyTransportError(req.Context(), err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		resp.Body.Close()

		if attempt == maxRetries {
			return nil, fmt.Errorf("%w: %w: %s after %d retries", ErrConnectivity, ErrRateLimited, endpoint, maxRetries)
		}

		retryDelay := c.rateLimitBaseDelay * (1 << attempt) // 1s, 2s, 4s, 8s, 16s

		// Retry-After in seconds (RFC 6585)
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				retryDelay = seconds
			}
		}

		c.logger.Warn().Str("endpoint", endpoint).Dur("retry_delay", retryDelay).Int("attempt", attempt+1).Int("max_retries", maxRetries).Msg("TMDB API rate limited (HTTP 429), retrying")

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(retryDelay):
		}
	}

	return nil, fmt.Errorf("unreachable code: retry loop should return or error")
}

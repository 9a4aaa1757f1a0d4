// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

// Package llm asks a chat completion model for movie titles matching
// free-text criteria.
//
// Client speaks the OpenAI-compatible /chat/completions protocol behind a
// circuit breaker named "llm-api". Every failure it returns wraps
// ErrUnavailable so callers can map it to a single upstream error.
package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/breaker"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/config"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/metrics"
)

// BreakerName labels the model circuit breaker in metrics and health checks.
const BreakerName = "llm-api"

// maxErrorBodySize limits the amount of response body read for error reporting.
const maxErrorBodySize = 4 * 1024

var (
	// ErrUnavailable wraps every generation failure.
	ErrUnavailable = errors.New("text generation unavailable")

	// ErrNotConfigured is returned when no API key is set.
	ErrNotConfigured = errors.New("language model API key not configured")
)

// Generator produces free text for a prompt.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client is a chat completion Generator. It is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	breaker     *breaker.Breaker
	logger      zerolog.Logger
}

// NewClient creates a chat completion client.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewClient(cfg *config.LLMConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		breaker: breaker.New(BreakerName, breaker.Settings{
			MinRequests: 5,
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
		}),
		logger: logger.With().Str("component", "llm").Logger(),
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Breaker exposes the circuit breaker for health reporting.
func (c *Client) Breaker() *breaker.Breaker {
	return c.breaker
}

// Generate returns the first choice's message content.
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, ErrNotConfigured)
	}

	start := time.Now()
	text, err := breaker.Cast[string](c.breaker.Execute(func() (interface{}, error) {
		content, err := c.complete(ctx, system, prompt)
		if err != nil {
			return nil, err
		}
		return &content, nil
	}))
	duration := time.Since(start)

	if err != nil {
		outcome := "error"
		if breaker.IsRejected(err) {
			outcome = "rejected"
		}
		metrics.RecordLLMRequest(outcome, duration, 0)
		logging.Ctx(ctx).Warn().Err(err).Str("outcome", outcome).Dur("duration", duration).Msg("text generation failed")
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	metrics.RecordLLMRequest("success", duration, len(ParseTitles(*text)))
	return *text, nil
}

func (c *Client) complete(ctx context.Context, system, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return "", fmt.Errorf("chat completion: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat completion: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	c.logger.Debug().Str("model", c.model).Int("choices", len(out.Choices)).Msg("chat completion received")
	return out.Choices[0].Message.Content, nil
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package llm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/breaker"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/config"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.LLMConfig{
		APIKey:      "sk-test",
		BaseURL:     srv.URL + "/v1/",
		Model:       "gpt-3.5-turbo",
		Timeout:     5 * time.Second,
		Temperature: 0.7,
		MaxTokens:   300,
	}, logging.NewTestLogger(io.Discard))
}

func writeCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":` + quote(content) + `}}]}`))
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerate(t *testing.T) {
	var got chatRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s, want /v1/chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("Authorization = %q, want Bearer sk-test", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		writeCompletion(w, "Heat\nRonin\nThief")
	})

	text, err := c.Generate(context.Background(), SystemPrompt, BuildPrompt("heist movies"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "Heat\nRonin\nThief" {
		t.Errorf("Generate() = %q, want three titles", text)
	}

	if got.Model != "gpt-3.5-turbo" {
		t.Errorf("model = %q, want gpt-3.5-turbo", got.Model)
	}
	if got.MaxTokens != 300 || got.Temperature != 0.7 {
		t.Errorf("max_tokens = %d temperature = %v, want 300 and 0.7", got.MaxTokens, got.Temperature)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != SystemPrompt {
		t.Errorf("messages[0] = %+v, want system prompt", got.Messages[0])
	}
	if got.Messages[1].Role != "user" || got.Messages[1].Content != BuildPrompt("heist movies") {
		t.Errorf("messages[1] = %+v, want user prompt", got.Messages[1])
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, `{"error":"overloaded"}`, http.StatusInternalServerError)
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, `{"error":"invalid key"}`, http.StatusUnauthorized)
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			text, err := c.Generate(context.Background(), SystemPrompt, "q")
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("Generate() error = %v, want ErrUnavailable", err)
			}
			if text != "" {
				t.Errorf("Generate() = %q, want empty", text)
			}
		})
	}
}

func TestGenerateNotConfigured(t *testing.T) {
	c := NewClient(&config.LLMConfig{BaseURL: "http://127.0.0.1:1"}, logging.NewTestLogger(io.Discard))
	if c.Configured() {
		t.Error("Configured() = true, want false")
	}
	_, err := c.Generate(context.Background(), SystemPrompt, "q")
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Generate() error = %v, want ErrUnavailable and ErrNotConfigured", err)
	}
}

func TestGenerateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(&config.LLMConfig{APIKey: "k", BaseURL: url, Timeout: time.Second}, logging.NewTestLogger(io.Discard))
	_, err := c.Generate(context.Background(), SystemPrompt, "q")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Generate() error = %v, want ErrUnavailable", err)
	}
}

func TestGenerateBreakerOpens(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for i := 0; i < 5; i++ {
		_, _ = c.Generate(context.Background(), SystemPrompt, "q")
	}
	if !c.Breaker().Open() {
		t.Fatalf("breaker state = %s, want open", c.Breaker().State())
	}

	before := hits.Load()
	_, err := c.Generate(context.Background(), SystemPrompt, "q")
	if !errors.Is(err, ErrUnavailable) || !breaker.IsRejected(err) {
		t.Errorf("Generate() error = %v, want rejected ErrUnavailable", err)
	}
	if hits.Load() != before {
		t.Error("open breaker should not reach the server")
	}
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package criteria

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/enrich"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/llm"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

type mockGenerator struct {
	reply  string
	err    error
	prompt string
	system string
	calls  int
}

func (m *mockGenerator) Generate(_ context.Context, system, prompt string) (string, error) {
	m.calls++
	m.system = system
	m.prompt = prompt
	return m.reply, m.err
}

// mockEnricher finds every title except those listed in missing.
type mockEnricher struct {
	missing map[string]bool
	got     []enrich.Target
}

func (m *mockEnricher) Enrich(_ context.Context, targets []enrich.Target) ([]tmdb.Details, enrich.Report) {
	m.got = targets
	var out []tmdb.Details
	for i, tg := range targets {
		if m.missing[tg.Title] {
			continue
		}
		out = append(out, tmdb.Details{ID: int64(i + 1), Title: tg.Title})
	}
	return out, enrich.Report{Requested: len(targets), Enriched: len(out), Dropped: len(targets) - len(out)}
}

func newTestService(gen llm.Generator, enr Enricher) *Service {
	return NewService(gen, enr, logging.NewTestLogger(io.Discard))
}

func TestRecommend(t *testing.T) {
	gen := &mockGenerator{reply: "1. Heat\n2. Ronin\n\n3. Thief\n"}
	enr := &mockEnricher{missing: map[string]bool{"Thief": true}}
	s := newTestService(gen, enr)

	res, err := s.Recommend(context.Background(), "  gritty heist films ")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if gen.system != llm.SystemPrompt {
		t.Errorf("system prompt = %q, want %q", gen.system, llm.SystemPrompt)
	}
	if gen.prompt != llm.BuildPrompt("gritty heist films") {
		t.Errorf("prompt = %q", gen.prompt)
	}
	if res.Query != "gritty heist films" {
		t.Errorf("Query = %q, want trimmed query", res.Query)
	}

	wantTitles := []string{"Heat", "Ronin", "Thief"}
	if strings.Join(res.Titles, "|") != strings.Join(wantTitles, "|") {
		t.Errorf("Titles = %q, want %q", res.Titles, wantTitles)
	}
	if len(enr.got) != 3 {
		t.Errorf("enriched %d targets, want 3", len(enr.got))
	}
	if len(res.Movies) != 2 {
		t.Errorf("len(Movies) = %d, want 2", len(res.Movies))
	}
	if res.Report.Dropped != 1 {
		t.Errorf("Report.Dropped = %d, want 1", res.Report.Dropped)
	}
}

func TestRecommendErrors(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		gen       *mockGenerator
		wantErr   error
		wantCalls int
	}{
		{
			name:      "blank query",
			query:     "   ",
			gen:       &mockGenerator{reply: "Heat"},
			wantErr:   ErrEmptyQuery,
			wantCalls: 0,
		},
		{
			name:      "model unavailable",
			query:     "heist",
			gen:       &mockGenerator{err: fmt.Errorf("%w: HTTP 500", llm.ErrUnavailable)},
			wantErr:   llm.ErrUnavailable,
			wantCalls: 1,
		},
		{
			name:      "empty reply",
			query:     "heist",
			gen:       &mockGenerator{reply: "\n  \n"},
			wantErr:   ErrNoTitles,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enr := &mockEnricher{}
			s := newTestService(tt.gen, enr)

			res, err := s.Recommend(context.Background(), tt.query)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Recommend() error = %v, want %v", err, tt.wantErr)
			}
			if res != nil {
				t.Errorf("Recommend() result = %+v, want nil", res)
			}
			if tt.gen.calls != tt.wantCalls {
				t.Errorf("generator calls = %d, want %d", tt.gen.calls, tt.wantCalls)
			}
			if enr.got != nil {
				t.Error("enricher should not be called")
			}
		})
	}
}

func TestRecommendNothingFound(t *testing.T) {
	gen := &mockGenerator{reply: "Heat\nRonin"}
	enr := &mockEnricher{missing: map[string]bool{"Heat": true, "Ronin": true}}
	s := newTestService(gen, enr)

	res, err := s.Recommend(context.Background(), "heist")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(res.Movies) != 0 {
		t.Errorf("len(Movies) = %d, want 0", len(res.Movies))
	}
	if len(res.Titles) != 2 {
		t.Errorf("len(Titles) = %d, want 2", len(res.Titles))
	}
}

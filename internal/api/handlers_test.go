// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/breaker"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/config"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/criteria"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/database"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/llm"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/middleware"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/models"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/corpus"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/ranking"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

// ===================================================================================================
// Fakes
// ===================================================================================================

type mockEngine struct {
	result  *recommend.Result
	err     error
	titles  []string
	ready   bool
	lastReq recommend.Request
}

func (m *mockEngine) Recommend(_ context.Context, req recommend.Request) (*recommend.Result, error) {
	m.lastReq = req
	return m.result, m.err
}
func (m *mockEngine) Titles() []string       { return m.titles }
func (m *mockEngine) Stats() recommend.Stats { return recommend.Stats{Movies: len(m.titles)} }
func (m *mockEngine) Ready() bool            { return m.ready }

type mockStore struct {
	movies    []database.GenreMovie
	genres    []string
	err       error
	pingErr   error
	lastGenre string
	lastN     int
}

func (m *mockStore) TopByGenre(_ context.Context, genre string, n int) ([]database.GenreMovie, error) {
	m.lastGenre, m.lastN = genre, n
	return m.movies, m.err
}
func (m *mockStore) Genres(context.Context) ([]string, error) { return m.genres, m.err }
func (m *mockStore) Ping(context.Context) error               { return m.pingErr }

// mockEnricher returns details for ids in posters, in reverse order, to
// show that listings do not depend on enrichment order.
type mockEnricher struct {
	posters map[int64]string
	calls   int
}

func (m *mockEnricher) EnrichIDs(_ context.Context, ids []int64) []tmdb.Details {
	m.calls++
	var out []tmdb.Details
	for i := len(ids) - 1; i >= 0; i-- {
		if p, ok := m.posters[ids[i]]; ok {
			out = append(out, tmdb.Details{ID: ids[i], PosterURL: tmdb.PosterURL(p)})
		}
	}
	return out
}

type mockPopular struct {
	movies []tmdb.MovieSummary
	err    error
}

func (m *mockPopular) Popular(context.Context) ([]tmdb.MovieSummary, error) { return m.movies, m.err }

type mockCriteria struct {
	result    *criteria.Result
	err       error
	lastQuery string
}

func (m *mockCriteria) Recommend(_ context.Context, query string) (*criteria.Result, error) {
	m.lastQuery = query
	return m.result, m.err
}

// ===================================================================================================
// Helpers
// ===================================================================================================

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func movie(id int64, title string, rating float64) ranking.Ranked {
	return ranking.Ranked{Movie: corpus.Movie{ID: id, Title: title, Rating: rating}}
}

func newTestServer(t *testing.T, deps Dependencies, mutate ...func(*config.Config)) http.Handler {
	t.Helper()
	cfg := config.Defaults()
	for _, m := range mutate {
		m(cfg)
	}
	return NewRouter(NewHandler(cfg, deps), cfg).SetupChi()
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

// ===================================================================================================
// Similar
// ===================================================================================================

func TestSimilar_Success(t *testing.T) {
	engine := &mockEngine{
		ready: true,
		result: &recommend.Result{
			Match: recommend.Match{ID: 949, Title: "Heat", Score: 100, Exact: true},
			Items: []ranking.Ranked{
				movie(11, "Ronin", 7.9),
				movie(12, "Collateral", 7.3),
				movie(13, "Thief", 7.0),
			},
		},
	}
	enricher := &mockEnricher{posters: map[int64]string{11: "/ronin.jpg", 13: "/thief.jpg"}}

	h := newTestServer(t, Dependencies{Engine: engine, Store: &mockStore{}, Enricher: enricher})
	rec, env := do(t, h, http.MethodGet, "/api/v1/recommendations/similar?title=heat&n=3", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if env.Status != models.StatusSuccess {
		t.Errorf("status = %q, want success", env.Status)
	}
	if engine.lastReq.Title != "heat" || engine.lastReq.N != 3 {
		t.Errorf("engine request = %+v, want title heat n 3", engine.lastReq)
	}
	if engine.lastReq.RequestID == "" {
		t.Error("engine request has no request ID")
	}

	var data models.SimilarResponse
	decodeData(t, env, &data)

	if data.Match.Title != "Heat" {
		t.Errorf("Match.Title = %q, want Heat", data.Match.Title)
	}
	wantTitles := []string{"Ronin", "Collateral", "Thief"}
	if len(data.Recommendations) != len(wantTitles) {
		t.Fatalf("len(Recommendations) = %d, want %d", len(data.Recommendations), len(wantTitles))
	}
	for i, want := range wantTitles {
		if got := data.Recommendations[i].Title; got != want {
			t.Errorf("Recommendations[%d].Title = %q, want %q", i, got, want)
		}
	}

	first := data.Recommendations[0]
	if first.ExternalLink != "https://www.themoviedb.org/movie/11" {
		t.Errorf("ExternalLink = %q", first.ExternalLink)
	}
	if first.PosterURL == nil || *first.PosterURL != "https://image.tmdb.org/t/p/w500/ronin.jpg" {
		t.Errorf("PosterURL = %v, want w500 ronin poster", first.PosterURL)
	}
	if data.Recommendations[1].PosterURL != nil {
		t.Errorf("Recommendations[1].PosterURL = %v, want null for failed lookup", *data.Recommendations[1].PosterURL)
	}
	if env.Metadata.Count == nil || *env.Metadata.Count != 3 {
		t.Errorf("Metadata.Count = %v, want 3", env.Metadata.Count)
	}
	if !strings.Contains(rec.Body.String(), `"poster_url":null`) {
		t.Error("missing poster not serialized as null")
	}
}

func TestSimilar_WithoutCatalog(t *testing.T) {
	engine := &mockEngine{ready: true, result: &recommend.Result{Items: []ranking.Ranked{movie(1, "A", 5)}}}
	h := newTestServer(t, Dependencies{Engine: engine, Store: &mockStore{}})

	rec, env := do(t, h, http.MethodGet, "/api/v1/recommendations/similar?title=x", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var data models.SimilarResponse
	decodeData(t, env, &data)
	if len(data.Recommendations) != 1 || data.Recommendations[0].PosterURL != nil {
		t.Errorf("Recommendations = %+v, want one record with null poster", data.Recommendations)
	}
	if engine.lastReq.N != 0 {
		t.Errorf("N = %d, want 0 so the engine applies its default", engine.lastReq.N)
	}
}

func TestSimilar_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		engineErr  error
		wantStatus int
		wantCode   string
	}{
		{"missing title", "", nil, http.StatusBadRequest, ErrCodeValidation},
		{"blank title", "title=%20%20", nil, http.StatusBadRequest, ErrCodeValidation},
		{"n not an integer", "title=heat&n=ten", nil, http.StatusBadRequest, ErrCodeValidation},
		{"n negative", "title=heat&n=-1", nil, http.StatusBadRequest, ErrCodeValidation},
		{"n above max", "title=heat&n=51", nil, http.StatusBadRequest, ErrCodeValidation},
		{"no match", "title=zzzz", recommend.ErrNoMatch, http.StatusNotFound, ErrCodeNoMatch},
		{"corpus empty", "title=heat", recommend.ErrCorpusEmpty, http.StatusServiceUnavailable, ErrCodeCorpusEmpty},
		{"unexpected", "title=heat", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &mockEngine{err: tt.engineErr}
			h := newTestServer(t, Dependencies{Engine: engine, Store: &mockStore{}})

			rec, env := do(t, h, http.MethodGet, "/api/v1/recommendations/similar?"+tt.query, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Status != models.StatusError {
				t.Errorf("status = %q, want error", env.Status)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
			if string(env.Data) != "null" {
				t.Errorf("data = %s, want null", env.Data)
			}
		})
	}
}

func TestSimilar_InternalErrorsHideDetails(t *testing.T) {
	engine := &mockEngine{err: errors.New("secret connection string")}
	h := newTestServer(t, Dependencies{Engine: engine, Store: &mockStore{}})

	rec, _ := do(t, h, http.MethodGet, "/api/v1/recommendations/similar?title=heat", "")
	if strings.Contains(rec.Body.String(), "secret") {
		t.Errorf("response leaks internal error: %s", rec.Body.String())
	}
}

// ===================================================================================================
// Genre
// ===================================================================================================

func TestGenre(t *testing.T) {
	store := &mockStore{movies: []database.GenreMovie{
		{ID: 1, Title: "The Godfather", Rating: 8.7},
		{ID: 2, Title: "Heat", Rating: 7.9},
	}}
	enricher := &mockEnricher{posters: map[int64]string{2: "/heat.jpg"}}
	h := newTestServer(t, Dependencies{Engine: &mockEngine{}, Store: store, Enricher: enricher})

	t.Run("default count", func(t *testing.T) {
		rec, env := do(t, h, http.MethodGet, "/api/v1/recommendations/genre?genre=%20Crime%20", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
		if store.lastN != 30 {
			t.Errorf("n = %d, want default 30", store.lastN)
		}
		var data models.GenreResponse
		decodeData(t, env, &data)
		if data.Genre != "Crime" {
			t.Errorf("Genre = %q, want Crime", data.Genre)
		}
		if len(data.Recommendations) != 2 || data.Recommendations[0].Title != "The Godfather" {
			t.Fatalf("Recommendations = %+v", data.Recommendations)
		}
		if data.Recommendations[0].PosterURL != nil || data.Recommendations[1].PosterURL == nil {
			t.Errorf("posters = %v, %v, want null then set", data.Recommendations[0].PosterURL, data.Recommendations[1].PosterURL)
		}
	})

	t.Run("explicit count", func(t *testing.T) {
		rec, _ := do(t, h, http.MethodGet, "/api/v1/recommendations/genre?genre=Crime&n=5", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if store.lastN != 5 {
			t.Errorf("n = %d, want 5", store.lastN)
		}
	})

	t.Run("missing genre", func(t *testing.T) {
		rec, env := do(t, h, http.MethodGet, "/api/v1/recommendations/genre", "")
		if rec.Code != http.StatusBadRequest || env.Error.Code != ErrCodeValidation {
			t.Errorf("got %d %+v, want 400 VALIDATION_ERROR", rec.Code, env.Error)
		}
	})
}

func TestGenre_DatabaseError(t *testing.T) {
	store := &mockStore{err: errors.New("duckdb: connection closed")}
	h := newTestServer(t, Dependencies{Engine: &mockEngine{}, Store: store})

	rec, env := do(t, h, http.MethodGet, "/api/v1/recommendations/genre?genre=Drama", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if env.Error.Code != ErrCodeDatabase {
		t.Errorf("code = %s, want %s", env.Error.Code, ErrCodeDatabase)
	}
}

// ===================================================================================================
// Criteria
// ===================================================================================================

func TestCriteria_Success(t *testing.T) {
	svc := &mockCriteria{result: &criteria.Result{
		Query:  "heist films",
		Titles: []string{"Heat", "Ronin", "Unfindable"},
		Movies: []tmdb.Details{{ID: 949, Title: "Heat"}, {ID: 8195, Title: "Ronin"}},
	}}
	h := newTestServer(t, Dependencies{Engine: &mockEngine{}, Store: &mockStore{}, Criteria: svc})

	rec, env := do(t, h, http.MethodPost, "/api/v1/recommendations/criteria", `{"query":"heist films"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if svc.lastQuery != "heist films" {
		t.Errorf("query = %q, want heist films", svc.lastQuery)
	}

	var data models.CriteriaResponse
	decodeData(t, env, &data)
	if len(data.Titles) != 3 || len(data.Movies) != 2 {
		t.Errorf("titles %d movies %d, want 3 and 2", len(data.Titles), len(data.Movies))
	}
	if *env.Metadata.Count != 2 {
		t.Errorf("Metadata.Count = %d, want 2", *env.Metadata.Count)
	}
}

func TestCriteria_EmptyResultSerializesArrays(t *testing.T) {
	svc := &mockCriteria{result: &criteria.Result{Query: "q1"}}
	h := newTestServer(t, Dependencies{Engine: &mockEngine{}, Store: &mockStore{}, Criteria: svc})

	rec, _ := do(t, h, http.MethodPost, "/api/v1/recommendations/criteria", `{"query":"q1"}`)
	if !strings.Contains(rec.Body.String(), `"movies":[]`) || !strings.Contains(rec.Body.String(), `"titles":[]`) {
		t.Errorf("body = %s, want empty arrays", rec.Body.String())
	}
}

func TestCriteria_Errors(t *testing.T) {
	unavailable := fmt.Errorf("%w: HTTP 500", llm.ErrUnavailable)

	tests := []struct {
		name       string
		body       string
		svc        CriteriaRecommender
		wantStatus int
		wantCode   string
	}{
		{"malformed json", `{"query":`, &mockCriteria{}, http.StatusBadRequest, ErrCodeValidation},
		{"unknown field", `{"query":"heist","mood":"dark"}`, &mockCriteria{}, http.StatusBadRequest, ErrCodeValidation},
		{"missing query", `{}`, &mockCriteria{}, http.StatusBadRequest, ErrCodeValidation},
		{"query too short", `{"query":"a"}`, &mockCriteria{}, http.StatusBadRequest, ErrCodeValidation},
		{"query blank", `{"query":"    "}`, &mockCriteria{}, http.StatusBadRequest, ErrCodeValidation},
		{"model unavailable", `{"query":"heist"}`, &mockCriteria{err: unavailable}, http.StatusBadGateway, ErrCodeUpstreamUnavailable},
		{"model returned nothing", `{"query":"heist"}`, &mockCriteria{err: criteria.ErrNoTitles}, http.StatusBadGateway, ErrCodeUpstreamUnavailable},
		{"model not configured", `{"query":"heist"}`, nil, http.StatusBadGateway, ErrCodeUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := Dependencies{Engine: &mockEngine{}, Store: &mockStore{}}
			if tt.svc != nil {
				deps.Criteria = tt.svc
			}
			h := newTestServer(t, deps)

			rec, env := do(t, h, http.MethodPost, "/api/v1/recommendations/criteria", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

// ===================================================================================================
// Listings
// ===================================================================================================

func TestTitles(t *testing.T) {
	engine := &mockEngine{titles: []string{"Heat", "Ronin", "Alien"}}
	h := newTestServer(t, Dependencies{Engine: engine, Store: &mockStore{}})

	rec, env := do(t, h, http.MethodGet, "/api/v1/movies/titles", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var titles []string
	decodeData(t, env, &titles)
	if strings.Join(titles, ",") != "Heat,Ronin,Alien" {
		t.Errorf("titles = %v, want corpus order", titles)
	}
}

func TestPopular(t *testing.T) {
	tests := []struct {
		name       string
		source     PopularSource
		wantStatus int
		wantCount  int
	}{
		{
			name: "success",
			source: &mockPopular{movies: []tmdb.MovieSummary{
				{ID: 1, Title: "New Film", VoteAverage: 7.1, PosterPath: "/p.jpg"},
				{ID: 2, Title: "No Poster", VoteAverage: 6.0},
			}},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{"catalog unreachable", &mockPopular{err: fmt.Errorf("popular: %w", tmdb.ErrConnectivity)}, http.StatusBadGateway, 0},
		{"catalog error status", &mockPopular{err: &tmdb.APIError{Endpoint: "popular", StatusCode: 500}}, http.StatusBadGateway, 0},
		{"catalog not configured", nil, http.StatusBadGateway, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := Dependencies{Engine: &mockEngine{}, Store: &mockStore{}}
			if tt.source != nil {
				deps.Popular = tt.source
			}
			h := newTestServer(t, deps)

			rec, env := do(t, h, http.MethodGet, "/api/v1/movies/popular", "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var records []models.RecommendationRecord
			decodeData(t, env, &records)
			if len(records) != tt.wantCount {
				t.Fatalf("len = %d, want %d", len(records), tt.wantCount)
			}
			if records[0].PosterURL == nil || records[1].PosterURL != nil {
				t.Errorf("posters = %v, %v", records[0].PosterURL, records[1].PosterURL)
			}
			if records[0].Rating != 7.1 {
				t.Errorf("Rating = %v, want 7.1", records[0].Rating)
			}
		})
	}
}

func TestGenres(t *testing.T) {
	h := newTestServer(t, Dependencies{Engine: &mockEngine{}, Store: &mockStore{genres: []string{"Action", "Drama"}}})

	rec, env := do(t, h, http.MethodGet, "/api/v1/genres", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var genres []string
	decodeData(t, env, &genres)
	if len(genres) != 2 {
		t.Errorf("genres = %v", genres)
	}
}

// ===================================================================================================
// Health
// ===================================================================================================

func TestHealthReady(t *testing.T) {
	tests := []struct {
		name       string
		engine     *mockEngine
		store      *mockStore
		wantStatus int
	}{
		{"ready", &mockEngine{ready: true}, &mockStore{}, http.StatusOK},
		{"engine empty", &mockEngine{ready: false}, &mockStore{}, http.StatusServiceUnavailable},
		{"database down", &mockEngine{ready: true}, &mockStore{pingErr: errors.New("closed")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := breaker.New("tmdb-api", breaker.Settings{})
			h := newTestServer(t, Dependencies{Engine: tt.engine, Store: tt.store, Breakers: []*breaker.Breaker{b}})

			rec, env := do(t, h, http.MethodGet, "/api/v1/health/ready", "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var data models.ReadinessStatus
			decodeData(t, env, &data)
			if data.Ready != (tt.wantStatus == http.StatusOK) {
				t.Errorf("Ready = %v", data.Ready)
			}
			if data.Breakers["tmdb-api"] != "closed" {
				t.Errorf("Breakers = %v, want tmdb-api closed", data.Breakers)
			}
		})
	}
}

func TestHealthAndLive(t *testing.T) {
	h := newTestServer(t, Dependencies{Engine: &mockEngine{ready: true, titles: []string{"A"}}, Store: &mockStore{}})

	for _, path := range []string{"/api/v1/health", "/api/v1/health/live"} {
		rec, env := do(t, h, http.MethodGet, path, "")
		if rec.Code != http.StatusOK || env.Status != models.StatusSuccess {
			t.Errorf("%s: got %d %q, want 200 success", path, rec.Code, env.Status)
		}
	}

	_, env := do(t, h, http.MethodGet, "/api/v1/health", "")
	var health models.HealthStatus
	decodeData(t, env, &health)
	if health.Status != "healthy" || health.CatalogConfigured || health.LLMConfigured {
		t.Errorf("health = %+v", health)
	}
}

func TestHealthPerformance(t *testing.T) {
	perfMon := middleware.NewPerformanceMonitor(10, 0)
	h := newTestServer(t, Dependencies{
		Engine:  &mockEngine{titles: []string{"A"}},
		Store:   &mockStore{},
		PerfMon: perfMon,
	})

	do(t, h, http.MethodGet, "/api/v1/movies/titles", "")
	do(t, h, http.MethodGet, "/api/v1/movies/titles", "")

	_, env := do(t, h, http.MethodGet, "/api/v1/health/performance", "")
	var stats []middleware.EndpointStats
	decodeData(t, env, &stats)
	if len(stats) != 1 {
		t.Fatalf("stats = %+v, want one route", stats)
	}
	if stats[0].Route != "GET /api/v1/movies/titles" || stats[0].RequestCount != 2 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
}

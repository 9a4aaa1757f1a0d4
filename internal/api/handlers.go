// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package api

import (
	"context"
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/breaker"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/config"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/criteria"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/database"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/middleware"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

// Recommender is the content-based engine.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Result, error)
	Titles() []string
	Stats() recommend.Stats
	Ready() bool
}

// MovieStore answers genre queries over the stored corpus.
type MovieStore interface {
	TopByGenre(ctx context.Context, genre string, n int) ([]database.GenreMovie, error)
	Genres(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// PosterEnricher fetches catalog details for corpus ids. Results may be
// unordered and shorter than ids.
type PosterEnricher interface {
	EnrichIDs(ctx context.Context, ids []int64) []tmdb.Details
}

// PopularSource lists currently popular catalog movies.
type PopularSource interface {
	Popular(ctx context.Context) ([]tmdb.MovieSummary, error)
}

// CriteriaRecommender answers free-text queries.
type CriteriaRecommender interface {
	Recommend(ctx context.Context, query string) (*criteria.Result, error)
}

// Dependencies are the services a Handler serves. Enricher, Popular and
// Criteria may be nil when the catalog or the language model is not
// configured; the affected endpoints then degrade or report
// UPSTREAM_UNAVAILABLE.
type Dependencies struct {
	Engine   Recommender
	Store    MovieStore
	Enricher PosterEnricher
	Popular  PopularSource
	Criteria CriteriaRecommender
	Breakers []*breaker.Breaker
	PerfMon  *middleware.PerformanceMonitor
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and parameter helpers
//   - handlers_recommend.go: similar, genre and criteria recommendations
//   - handlers_movies.go: titles, popular and genre listings
//   - handlers_health.go: health and performance endpoints
type Handler struct {
	engine    Recommender
	store     MovieStore
	enricher  PosterEnricher
	popular   PopularSource
	criteria  CriteriaRecommender
	breakers  []*breaker.Breaker
	perfMon   *middleware.PerformanceMonitor
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(cfg, api.Dependencies{
//	    Engine:   engine,
//	    Store:    db,
//	    Enricher: pipeline,
//	    Popular:  catalog,
//	    Criteria: criteriaSvc,
//	    Breakers: []*breaker.Breaker{catalog.Breaker(), llmClient.Breaker()},
//	    PerfMon:  perfMon,
//	})
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(cfg *config.Config, deps Dependencies) *Handler {
	return &Handler{
		engine:    deps.Engine,
		store:     deps.Store,
		enricher:  deps.Enricher,
		popular:   deps.Popular,
		criteria:  deps.Criteria,
		breakers:  deps.Breakers,
		perfMon:   deps.PerfMon,
		config:    cfg,
		startTime: time.Now(),
	}
}

// maxCount is the largest n a listing request may ask for.
func (h *Handler) maxCount() int {
	return h.config.Recommend.MaxCount
}

// genreCount is the default size of a genre listing.
func (h *Handler) genreCount() int {
	return h.config.Recommend.GenreCount
}

// breakerStates reports each breaker's current state by name.
func (h *Handler) breakerStates() map[string]string {
	states := make(map[string]string, len(h.breakers))
	for _, b := range h.breakers {
		if b != nil {
			states[b.Name()] = b.State()
		}
	}
	return states
}

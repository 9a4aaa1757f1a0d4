// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/criteria"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/database"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/llm"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/metrics"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/models"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/ranking"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

// listedMovie is the part of a corpus movie a listing needs.
type listedMovie struct {
	ID     int64
	Title  string
	Rating float64
}

// Similar handles GET /api/v1/recommendations/similar?title=&n=
// Returns movies similar in content to title, highest rated first.
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	n, apiErr := parseIntParam(r, "n")
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	req := SimilarRequest{Title: r.URL.Query().Get("title"), N: n}
	if apiErr := h.validateListing(&req, req.N); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	result, err := h.engine.Recommend(r.Context(), recommend.Request{
		Title:     req.Title,
		N:         req.N,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		metrics.RecordRecommendation("similar", strings.ToLower(classifyError(err).code), time.Since(start))
		respondServiceError(w, r, err)
		return
	}

	records := h.buildRecords(r.Context(), rankedMovies(result.Items))
	metrics.RecordRecommendation("similar", "ok", time.Since(start))
	respondList(w, r, models.SimilarResponse{
		Match:           result.Match,
		Recommendations: records,
	}, len(records), start)
}

// Genre handles GET /api/v1/recommendations/genre?genre=&n=
// Returns the top rated corpus movies tagged with genre. An unknown genre
// yields an empty list.
func (h *Handler) Genre(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	n, apiErr := parseIntParam(r, "n")
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	req := GenreRequest{Genre: r.URL.Query().Get("genre"), N: n}
	if apiErr := h.validateListing(&req, req.N); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	if req.N == 0 {
		req.N = h.genreCount()
	}

	movies, err := h.store.TopByGenre(r.Context(), req.Genre, req.N)
	if err != nil {
		metrics.RecordRecommendation("genre", "error", time.Since(start))
		respondError(w, http.StatusInternalServerError, ErrCodeDatabase, publicMessage(ErrCodeDatabase), err)
		return
	}

	records := h.buildRecords(r.Context(), genreMovies(movies))
	metrics.RecordRecommendation("genre", "ok", time.Since(start))
	respondList(w, r, models.GenreResponse{
		Genre:           strings.TrimSpace(req.Genre),
		Recommendations: records,
	}, len(records), start)
}

// Criteria handles POST /api/v1/recommendations/criteria
// Asks the language model for titles matching a description and returns
// the ones the catalog could find, in no particular order.
func (h *Handler) Criteria(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CriteriaRequest
	if apiErr := decodeJSONBody(w, r, &req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	if h.criteria == nil {
		respondError(w, http.StatusBadGateway, ErrCodeUpstreamUnavailable,
			publicMessage(ErrCodeUpstreamUnavailable), fmt.Errorf("%w: %w", llm.ErrUnavailable, llm.ErrNotConfigured))
		return
	}

	result, err := h.criteria.Recommend(r.Context(), req.Query)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondList(w, r, criteriaResponse(result), len(result.Movies), start)
}

// validateListing validates a listing DTO and bounds n by the configured
// maximum.
func (h *Handler) validateListing(req interface{}, n int) *models.APIError {
	if apiErr := validateRequest(req); apiErr != nil {
		return apiErr
	}
	if limit := h.maxCount(); n > limit {
		return validationError("n", fmt.Sprintf("n must be at most %d", limit))
	}
	return nil
}

// buildRecords turns movies into recommendation records, keeping their
// order. Posters come from the catalog; a movie whose lookup failed gets
// a null poster rather than being dropped.
func (h *Handler) buildRecords(ctx context.Context, movies []listedMovie) []models.RecommendationRecord {
	posters := make(map[int64]*string, len(movies))
	if h.enricher != nil && len(movies) > 0 {
		ids := make([]int64, len(movies))
		for i, m := range movies {
			ids[i] = m.ID
		}
		for _, d := range h.enricher.EnrichIDs(ctx, ids) {
			posters[d.ID] = d.PosterURL
		}
	}

	records := make([]models.RecommendationRecord, len(movies))
	for i, m := range movies {
		records[i] = models.RecommendationRecord{
			ID:           m.ID,
			Title:        m.Title,
			Rating:       m.Rating,
			ExternalLink: tmdb.MovieLink(m.ID),
			PosterURL:    posters[m.ID],
		}
	}
	return records
}

func rankedMovies(items []ranking.Ranked) []listedMovie {
	out := make([]listedMovie, len(items))
	for i, it := range items {
		out[i] = listedMovie{ID: it.ID, Title: it.Title, Rating: it.Rating}
	}
	return out
}

func genreMovies(items []database.GenreMovie) []listedMovie {
	out := make([]listedMovie, len(items))
	for i, it := range items {
		out[i] = listedMovie{ID: it.ID, Title: it.Title, Rating: it.Rating}
	}
	return out
}

func criteriaResponse(result *criteria.Result) models.CriteriaResponse {
	titles := result.Titles
	if titles == nil {
		titles = []string{}
	}
	movies := result.Movies
	if movies == nil {
		movies = []tmdb.Details{}
	}
	return models.CriteriaResponse{
		Query:  result.Query,
		Titles: titles,
		Movies: movies,
	}
}

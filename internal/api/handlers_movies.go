// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package api

import (
	"net/http"
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/models"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

// Titles handles GET /api/v1/movies/titles
// Returns every corpus title in corpus order, for title pickers.
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	titles := h.engine.Titles()
	if titles == nil {
		titles = []string{}
	}
	respondList(w, r, titles, len(titles), start)
}

// Popular handles GET /api/v1/movies/popular
// Returns the catalog's popular list. The catalog client caches it.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.popular == nil {
		respondError(w, http.StatusBadGateway, ErrCodeUpstreamUnavailable,
			publicMessage(ErrCodeUpstreamUnavailable), tmdb.ErrNotConfigured)
		return
	}

	movies, err := h.popular.Popular(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	records := make([]models.RecommendationRecord, len(movies))
	for i, m := range movies {
		records[i] = models.RecommendationRecord{
			ID:           m.ID,
			Title:        m.Title,
			Rating:       m.VoteAverage,
			ExternalLink: tmdb.MovieLink(m.ID),
			PosterURL:    tmdb.PosterURL(m.PosterPath),
		}
	}
	respondList(w, r, records, len(records), start)
}

// Genres handles GET /api/v1/genres
// Returns the distinct corpus genres, sorted.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	genres, err := h.store.Genres(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeDatabase, publicMessage(ErrCodeDatabase), err)
		return
	}
	respondList(w, r, genres, len(genres), start)
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package models

import (
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

// RecommendationRecord is one listed movie. PosterURL is null when the
// catalog lookup failed or the movie has no poster.
type RecommendationRecord struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Rating       float64 `json:"rating"`
	ExternalLink string  `json:"external_link"`
	PosterURL    *string `json:"poster_url"`
}

// SimilarResponse is the payload of GET /recommendations/similar.
type SimilarResponse struct {
	Match           recommend.Match        `json:"match"`
	Recommendations []RecommendationRecord `json:"recommendations"`
}

// GenreResponse is the payload of GET /recommendations/genre.
type GenreResponse struct {
	Genre           string                 `json:"genre"`
	Recommendations []RecommendationRecord `json:"recommendations"`
}

// CriteriaResponse is the payload of POST /recommendations/criteria.
// Movies is unordered and may be shorter than Titles.
type CriteriaResponse struct {
	Query  string         `json:"query"`
	Titles []string       `json:"titles"`
	Movies []tmdb.Details `json:"movies"`
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package api

// Request DTOs validated with go-playground/validator tags. N is checked
// against the configured maximum after tag validation, since the limit
// is not known at compile time.
//
// Example usage:
//
//	req := SimilarRequest{Title: r.URL.Query().Get("title"), N: n}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
//	    return
//	}

// SimilarRequest is the query of GET /recommendations/similar.
type SimilarRequest struct {
	Title string `query:"title" validate:"required,notblank,max=200"`
	N     int    `query:"n" validate:"omitempty,min=1"`
}

// GenreRequest is the query of GET /recommendations/genre.
type GenreRequest struct {
	Genre string `query:"genre" validate:"required,notblank,max=100"`
	N     int    `query:"n" validate:"omitempty,min=1"`
}

// CriteriaRequest is the body of POST /recommendations/criteria.
type CriteriaRequest struct {
	Query string `json:"query" validate:"required,notblank,min=2,max=500"`
}

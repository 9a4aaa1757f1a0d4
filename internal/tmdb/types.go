// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package tmdb

import (
	"fmt"
)

const (
	// movieLinkBase is the public page for a movie id.
	movieLinkBase = "https://www.themoviedb.org/movie/"

	// posterBase serves w500 poster images; poster paths start with "/".
	posterBase = "https://image.tmdb.org/t/p/w500"
)

// MovieLink returns the public TMDB page for id.
func MovieLink(id int64) string {
	return fmt.Sprintf("%s%d", movieLinkBase, id)
}

// PosterURL returns the w500 poster URL for path, or nil when the movie has
// no poster.
func PosterURL(path string) *string {
	if path == "" {
		return nil
	}
	u := posterBase + path
	return &u
}

// MovieSummary is one entry of a search or popular listing.
type MovieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Overview    string  `json:"overview"`
}

// listResponse is the paged envelope of /search/movie and /movie/popular.
type listResponse struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type crewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// detailResponse is /movie/{id}?append_to_response=credits.
type detailResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Runtime     *int    `json:"runtime"`
	Genres      []genre `json:"genres"`
	Credits     struct {
		Crew []crewMember `json:"crew"`
	} `json:"credits"`
}

// Details is the display record for one movie.
type Details struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	PosterURL   *string  `json:"poster_url"`
	Rating      float64  `json:"rating"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date"`
	Genres      []string `json:"genres"`
	Runtime     *int     `json:"runtime,omitempty"`
	Director    string   `json:"director,omitempty"`
	Link        string   `json:"link"`
}

// toDetails flattens a detail response. The director is the first crew
// member whose job is exactly "Director".
func (r *detailResponse) toDetails() *Details {
	d := &Details{
		ID:          r.ID,
		Title:       r.Title,
		Rating:      r.VoteAverage,
		Overview:    r.Overview,
		ReleaseDate: r.ReleaseDate,
		Runtime:     r.Runtime,
		Genres:      make([]string, 0, len(r.Genres)),
		Link:        MovieLink(r.ID),
	}
	if r.PosterPath != nil {
		d.PosterURL = PosterURL(*r.PosterPath)
	}
	for _, g := range r.Genres {
		d.Genres = append(d.Genres, g.Name)
	}
	for _, c := range r.Credits.Crew {
		if c.Job == "Director" {
			d.Director = c.Name
			break
		}
	}
	return d
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

// Package similarity provides pairwise cosine similarity over a fitted
// vector space.
//
// Two sources are available. Dense precomputes the full symmetric matrix at
// build time and serves rows by lookup. PerQuery keeps only the vectors and
// computes one row per request. Both call Cosine with the same operands, so
// they yield bit-identical scores and therefore identical rankings.
package similarity

import (
	"fmt"
	"math"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend/vectorizer"
)

// Mode selects a Source implementation.
type Mode string

const (
	ModeDense    Mode = "dense"
	ModePerQuery Mode = "per_query"
)

// Source yields similarity rows. Row(i)[j] is the similarity between
// documents i and j, in [0, 1]. Returned slices must not be modified.
type Source interface {
	Len() int
	Row(i int) []float64
}

// Cosine returns the cosine similarity of a and b. It is 0 when either
// vector is zero and is clamped to [0, 1].
func Cosine(a, b vectorizer.Vector) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}
	denom := a.Norm() * b.Norm()
	if denom == 0 {
		return 0
	}
	sim := vectorizer.Dot(a, b) / denom
	switch {
	case math.IsNaN(sim) || sim < 0:
		return 0
	case sim > 1:
		return 1
	}
	return sim
}

// New builds the Source selected by mode.
func New(space *vectorizer.Space, mode Mode) (Source, error) {
	switch mode {
	case ModeDense, "":
		return NewDense(space), nil
	case ModePerQuery:
		return NewPerQuery(space), nil
	default:
		return nil, fmt.Errorf("unknown similarity mode %q", mode)
	}
}

// Dense is a precomputed N×N similarity matrix stored row-major.
type Dense struct {
	n      int
	values []float64
}

// NewDense computes every pairwise similarity once. Memory is O(N²).
func NewDense(space *vectorizer.Space) *Dense {
	n := space.Len()
	d := &Dense{n: n, values: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		vi := space.Vector(i)
		d.values[i*n+i] = Cosine(vi, vi)
		for j := i + 1; j < n; j++ {
			sim := Cosine(vi, space.Vector(j))
			d.values[i*n+j] = sim
			d.values[j*n+i] = sim
		}
	}
	return d
}

// Len returns N.
func (d *Dense) Len() int { return d.n }

// Row returns a view of row i.
func (d *Dense) Row(i int) []float64 {
	return d.values[i*d.n : (i+1)*d.n : (i+1)*d.n]
}

// At returns the similarity between i and j.
func (d *Dense) At(i, j int) float64 {
	return d.values[i*d.n+j]
}

// PerQuery computes rows on demand. Each Row call is O(N·k) where k is the
// average number of non-zero terms.
type PerQuery struct {
	space *vectorizer.Space
}

// NewPerQuery wraps a vector space.
func NewPerQuery(space *vectorizer.Space) *PerQuery {
	return &PerQuery{space: space}
}

// Len returns N.
func (p *PerQuery) Len() int { return p.space.Len() }

// Row computes a fresh row i.
func (p *PerQuery) Row(i int) []float64 {
	n := p.space.Len()
	row := make([]float64, n)
	vi := p.space.Vector(i)
	for j := 0; j < n; j++ {
		row[j] = Cosine(vi, p.space.Vector(j))
	}
	return row
}

// Matrix is a Source over explicit rows. It is used for fixed scores such
// as fixtures and externally computed matrices.
type Matrix [][]float64

// Len returns the number of rows.
func (m Matrix) Len() int { return len(m) }

// Row returns row i.
func (m Matrix) Row(i int) []float64 { return m[i] }

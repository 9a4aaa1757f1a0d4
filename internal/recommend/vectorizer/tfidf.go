// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

// Package vectorizer turns documents into L2-normalized TF-IDF vectors.
//
// The weighting follows the common smoothed formulation:
//
//	tf(t, d)  = raw count of t in d
//	idf(t)    = ln((1 + n) / (1 + df(t))) + 1
//	w(t, d)   = tf(t, d) * idf(t), then each row is scaled to unit length
//
// Tokens are runs of two or more letters, digits or underscores taken from
// lower-cased text. Stop words are removed before counting. The vocabulary is
// sorted lexically, so fitting the same documents twice yields identical
// term ids and identical vectors.
package vectorizer

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vector is a sparse vector with strictly increasing term ids.
type Vector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether the vector has no non-zero weights.
func (v Vector) IsZero() bool {
	return len(v.Indices) == 0
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of two sparse vectors.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Options controls tokenization.
type Options struct {
	// StopWords are excluded from the vocabulary. Nil uses EnglishStopWords.
	StopWords map[string]struct{}
}

// Space holds the fitted vocabulary, idf weights and one vector per document.
// It is immutable after Fit.
type Space struct {
	vocabulary []string
	terms      map[string]int
	idf        []float64
	vectors    []Vector
	stopWords  map[string]struct{}
}

// Fit builds a vector space from documents.
func Fit(docs []string, opts Options) *Space {
	stop := opts.StopWords
	if stop == nil {
		stop = EnglishStopWords
	}

	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := tokenize(doc, stop)
		tokenized[i] = tokens

		unique := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			unique[tok] = struct{}{}
		}
		for tok := range unique {
			df[tok]++
		}
	}

	vocabulary := make([]string, 0, len(df))
	for term := range df {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)

	terms := make(map[string]int, len(vocabulary))
	idf := make([]float64, len(vocabulary))
	n := float64(len(docs))
	for i, term := range vocabulary {
		terms[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	s := &Space{
		vocabulary: vocabulary,
		terms:      terms,
		idf:        idf,
		vectors:    make([]Vector, len(docs)),
		stopWords:  stop,
	}
	for i, tokens := range tokenized {
		s.vectors[i] = s.weigh(tokens)
	}
	return s
}

// Transform vectorizes a document against the fitted vocabulary. Unknown
// terms are ignored.
func (s *Space) Transform(doc string) Vector {
	return s.weigh(tokenize(doc, s.stopWords))
}

func (s *Space) weigh(tokens []string) Vector {
	counts := make(map[int]float64, len(tokens))
	for _, tok := range tokens {
		if id, ok := s.terms[tok]; ok {
			counts[id]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	indices := make([]int, 0, len(counts))
	for id := range counts {
		indices = append(indices, id)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var sumSq float64
	for k, id := range indices {
		w := counts[id] * s.idf[id]
		values[k] = w
		sumSq += w * w
	}
	norm := math.Sqrt(sumSq)
	for k := range values {
		values[k] /= norm
	}
	return Vector{Indices: indices, Values: values}
}

func tokenize(doc string, stop map[string]struct{}) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if _, skip := stop[tok]; !skip {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Len returns the number of document vectors.
func (s *Space) Len() int {
	return len(s.vectors)
}

// Dim returns the vocabulary size.
func (s *Space) Dim() int {
	return len(s.vocabulary)
}

// Vector returns the vector of document i.
func (s *Space) Vector(i int) Vector {
	return s.vectors[i]
}

// Vocabulary returns the sorted vocabulary. The slice must not be modified.
func (s *Space) Vocabulary() []string {
	return s.vocabulary
}

// IDF returns the idf weight of term, or 0 when the term is not in the
// vocabulary.
func (s *Space) IDF(term string) float64 {
	if id, ok := s.terms[term]; ok {
		return s.idf[id]
	}
	return 0
}

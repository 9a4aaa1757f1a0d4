// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package resolver

import (
	"math"
	"sort"
	"strings"
	"unicode"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Scorer rates the similarity of two strings from 0 to 100.
type Scorer func(a, b string) int

// Scorer names accepted by ScorerByName.
const (
	ScorerRatio          = "ratio"
	ScorerPartialRatio   = "partial_ratio"
	ScorerTokenSortRatio = "token_sort_ratio"
	ScorerTokenSetRatio  = "token_set_ratio"
	ScorerWRatio         = "wratio"
)

var scorers = map[string]Scorer{
	ScorerRatio:          Ratio,
	ScorerPartialRatio:   PartialRatio,
	ScorerTokenSortRatio: TokenSortRatio,
	ScorerTokenSetRatio:  TokenSetRatio,
	ScorerWRatio:         WRatio,
}

// ScorerByName returns the named scorer.
func ScorerByName(name string) (Scorer, bool) {
	s, ok := scorers[name]
	return s, ok
}

// ScorerNames lists the accepted scorer names in sorted order.
func ScorerNames() []string {
	names := make([]string, 0, len(scorers))
	for name := range scorers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Process lower-cases s, replaces every rune that is not a letter, digit or
// underscore with a space, and trims the result. Unlike fuzzy.Cleanse it
// keeps underscores.
func Process(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, s))
}

// Ratio is the normalized indel similarity: 1 - dist / (len(a)+len(b)),
// where a substitution costs two edits.
func Ratio(a, b string) int {
	return percent(ratio([]rune(a), []rune(b)))
}

// PartialRatio scores the shorter string against its best-aligned window
// in the longer one.
func PartialRatio(a, b string) int {
	return percent(partialRatio([]rune(a), []rune(b)))
}

// TokenSortRatio compares the processed strings after sorting their tokens.
func TokenSortRatio(a, b string) int {
	return tokenSort(Process(a), Process(b), false)
}

// TokenSetRatio compares the shared and distinct token sets of both
// processed strings and keeps the best pairing.
func TokenSetRatio(a, b string) int {
	return tokenSet(Process(a), Process(b), false)
}

// WRatio combines the other scorers, weighting partial matches down when the
// lengths differ a lot. Non-ASCII runes are dropped before processing and
// identical processed strings score 100.
func WRatio(a, b string) int {
	p1, p2 := Process(fuzzy.ASCIIOnly(a)), Process(fuzzy.ASCIIOnly(b))
	if p1 == "" || p2 == "" {
		return 0
	}

	const unbaseScale = 0.95
	partialScale := 0.90

	base := float64(Ratio(p1, p2))
	l1, l2 := float64(runeLen(p1)), float64(runeLen(p2))
	lenRatio := math.Max(l1, l2) / math.Min(l1, l2)

	if lenRatio < 1.5 {
		tsor := float64(tokenSort(p1, p2, false)) * unbaseScale
		tser := float64(tokenSet(p1, p2, false)) * unbaseScale
		return roundScore(max(base, tsor, tser))
	}

	if lenRatio > 8 {
		partialScale = 0.6
	}
	partial := float64(PartialRatio(p1, p2)) * partialScale
	ptsor := float64(tokenSort(p1, p2, true)) * unbaseScale * partialScale
	ptser := float64(tokenSet(p1, p2, true)) * unbaseScale * partialScale
	return roundScore(max(base, partial, ptsor, ptser))
}

func tokenSort(p1, p2 string, partial bool) int {
	s1, s2 := sortedTokens(p1), sortedTokens(p2)
	if partial {
		return PartialRatio(s1, s2)
	}
	return Ratio(s1, s2)
}

func tokenSet(p1, p2 string, partial bool) int {
	if p1 == "" || p2 == "" {
		return 0
	}
	set1 := fuzzy.NewStringSet(strings.Fields(p1))
	set2 := fuzzy.NewStringSet(strings.Fields(p2))

	sect := sortedSlice(set1.Intersect(set2))
	only1 := sortedSlice(set1.Difference(set2))
	only2 := sortedSlice(set2.Difference(set1))

	sorted := strings.Join(sect, " ")
	combined1 := strings.TrimSpace(sorted + " " + strings.Join(only1, " "))
	combined2 := strings.TrimSpace(sorted + " " + strings.Join(only2, " "))

	score := Ratio
	if partial {
		score = PartialRatio
	}
	return max(score(sorted, combined1), score(sorted, combined2), score(combined1, combined2))
}

func sortedSlice(s *fuzzy.StringSet) []string {
	out := s.ToSlice()
	sort.Strings(out)
	return out
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func ratio(a, b []rune) float64 {
	total := len(a) + len(b)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	dist := fuzzy.LevEditDistance(string(a), string(b), 1)
	return float64(total-dist) / float64(total)
}

func partialRatio(a, b []rune) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	best := 0.0
	for start := 0; start+len(shorter) <= len(longer); start++ {
		r := ratio(shorter, longer[start:start+len(shorter)])
		if r > 0.995 {
			return 1
		}
		if r > best {
			best = r
		}
	}
	return best
}

// percent scales a 0..1 ratio to a 0..100 score, rounding halves to even.
func percent(r float64) int {
	return roundScore(100 * r)
}

// roundScore rounds halves to even, so 62.5 scores 62 and 87.5 scores 88.
func roundScore(x float64) int {
	return int(math.RoundToEven(x))
}

func runeLen(s string) int {
	return len([]rune(s))
}

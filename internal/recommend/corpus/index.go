// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package corpus

// TitleIndex maps normalized titles to corpus positions. Keys()[i] is the
// normalized title of the movie at position i, and Lookup(Keys()[i]) == i.
type TitleIndex struct {
	positions map[string]int
	keys      []string
}

func newTitleIndex(movies []Movie) *TitleIndex {
	idx := &TitleIndex{
		positions: make(map[string]int, len(movies)),
		keys:      make([]string, len(movies)),
	}
	for i := range movies {
		key := NormalizeTitle(movies[i].Title)
		idx.positions[key] = i
		idx.keys[i] = key
	}
	return idx
}

// Lookup returns the corpus position of title after normalization.
func (x *TitleIndex) Lookup(title string) (int, bool) {
	pos, ok := x.positions[NormalizeTitle(title)]
	return pos, ok
}

// Keys returns the normalized titles in corpus order. The slice must not be
// modified.
func (x *TitleIndex) Keys() []string {
	return x.keys
}

// Len returns the number of indexed titles.
func (x *TitleIndex) Len() int {
	return len(x.keys)
}

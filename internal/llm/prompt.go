// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package llm

import (
	"regexp"
	"strings"
)

// SystemPrompt frames the model as a recommender that answers with titles only.
const SystemPrompt = "You are a movie recommendation expert. Provide only movie titles without any additional text."

// BuildPrompt renders the user message for a criteria query.
func BuildPrompt(query string) string {
	return "List 10 movies that match these criteria: " + strings.TrimSpace(query) +
		". Just list the movie titles, one per line, without any additional text or numbering."
}

// listMarker matches leading "1.", "2)", "-", "*" or "•" list decoration.
var listMarker = regexp.MustCompile(`^(?:\d{1,3}[.)]|[-*•])\s+`)

// ParseTitles splits a model reply into titles: one per line, trimmed,
// blank lines dropped. List numbering and bullets are stripped because
// models do not always follow the no-numbering instruction.
func ParseTitles(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	titles := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		titles = append(titles, line)
	}
	return titles
}

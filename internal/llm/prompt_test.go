// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package llm

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("  90s heist thrillers ")
	want := "List 10 movies that match these criteria: 90s heist thrillers. Just list the movie titles, one per line, without any additional text or numbering."
	if got != want {
		t.Errorf("BuildPrompt() = %q, want %q", got, want)
	}
}

func TestParseTitles(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"only whitespace", " \n\n\t\n", []string{}},
		{"plain lines", "Heat\nRonin\nThief", []string{"Heat", "Ronin", "Thief"}},
		{"trims and drops blanks", "  Heat  \n\n Ronin\r\n\n", []string{"Heat", "Ronin"}},
		{"numbered dot", "1. Heat\n2. Ronin\n10. Thief", []string{"Heat", "Ronin", "Thief"}},
		{"numbered paren", "1) Heat\n2) Ronin", []string{"Heat", "Ronin"}},
		{"bullets", "- Heat\n* Ronin\n• Thief", []string{"Heat", "Ronin", "Thief"}},
		{"number in title kept", "2001: A Space Odyssey\n12 Angry Men\nSe7en", []string{"2001: A Space Odyssey", "12 Angry Men", "Se7en"}},
		{"hyphenated title kept", "Spider-Man", []string{"Spider-Man"}},
		{"marker without space kept", "-Heat", []string{"-Heat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTitles(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseTitles() = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ParseTitles()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseTitlesNoBlankEntries(t *testing.T) {
	text := strings.Repeat("Heat\n   \n", 50)
	for i, title := range ParseTitles(text) {
		if strings.TrimSpace(title) == "" || title != strings.TrimSpace(title) {
			t.Errorf("ParseTitles()[%d] = %q, want trimmed non-blank", i, title)
		}
	}
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package logging

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// sensitiveParams are query parameters whose values never reach the logs.
var sensitiveParams = []string{"api_key", "apikey", "token", "access_token"}

// MaskSecret masks a credential, showing only the first and last 4
// characters. Short values are fully masked.
//
//	MaskSecret("sk-abcdefghijklmnop") == "sk-a...mnop"
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 12 {
		return "***"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

// RedactURL masks credential query parameters in a URL so it can be logged.
// Unparseable input is replaced entirely.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable url]"
	}
	q := u.Query()
	changed := false
	for _, p := range sensitiveParams {
		if q.Has(p) {
			q.Set(p, "***")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// Truncate shortens user-provided text for log fields. It cuts on a rune
// boundary and appends "..." when anything was removed.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut]) + "..."
}

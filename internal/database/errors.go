// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package database

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
)

var (
	// ErrCorpusFileNotFound is returned when the corpus CSV does not exist.
	ErrCorpusFileNotFound = errors.New("corpus file not found")

	// ErrMissingColumns is returned when the corpus CSV lacks required columns.
	ErrMissingColumns = errors.New("corpus file is missing required columns")
)

// MissingColumnsError lists the required columns absent from a corpus file.
type MissingColumnsError struct {
	Path    string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing columns: %s", e.Path, strings.Join(e.Columns, ", "))
}

// Unwrap lets errors.Is match ErrMissingColumns.
func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}

// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/models"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/validation"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 16 * 1024

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if status == http.StatusOK {
		w.Header().Set("ETag", generateETag(data))
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     data,
		Metadata: newMetadata(r, start),
	})
}

// respondList is respondSuccess with an item count in the metadata.
func respondList(w http.ResponseWriter, r *http.Request, data interface{}, count int, start time.Time) {
	meta := newMetadata(r, start)
	meta.Count = &count
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     data,
		Metadata: meta,
	})
}

func newMetadata(r *http.Request, start time.Time) models.Metadata {
	meta := models.Metadata{
		Timestamp: time.Now().UTC(),
		RequestID: logging.RequestIDFromContext(r.Context()),
	}
	if !start.IsZero() {
		meta.QueryTimeMS = time.Since(start).Milliseconds()
	}
	return meta
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondErrorDetails(w, status, &models.APIError{Code: code, Message: message}, err)
}

// respondErrorDetails sends an error response carrying apiErr as-is.
func respondErrorDetails(w http.ResponseWriter, status int, apiErr *models.APIError, err error) {
	if err != nil {
		logging.Error().
			Str("code", sanitizeLogValue(apiErr.Code)).
			Str("error", sanitizeLogValue(err.Error())).
			Int("status", status).
			Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusError,
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: apiErr,
	})
}

// respondServiceError maps err with classifyError and responds. Errors
// mapped to 4xx are expected outcomes and are not logged as errors.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	m := classifyError(err)
	if m.status < http.StatusInternalServerError {
		logging.Ctx(r.Context()).Debug().Err(err).Str("code", m.code).Msg("Request rejected")
		respondError(w, m.status, m.code, err.Error(), nil)
		return
	}
	respondError(w, m.status, m.code, publicMessage(m.code), err)
}

// publicMessage is the client-facing text for server-side failures, which
// must not leak upstream error bodies.
func publicMessage(code string) string {
	switch code {
	case ErrCodeUpstreamUnavailable:
		return "An upstream service is unavailable"
	case ErrCodeCorpusEmpty:
		return "The movie corpus is empty"
	case ErrCodeTimeout:
		return "The request timed out"
	case ErrCodeDatabase:
		return "A database error occurred"
	default:
		return "Internal server error"
	}
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// validationError builds a VALIDATION_ERROR for one field.
func validationError(field, message string) *models.APIError {
	return &models.APIError{
		Code:    ErrCodeValidation,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// parseIntParam reads an optional integer query parameter. Absent or
// blank values yield 0.
func parseIntParam(r *http.Request, key string) (int, *models.APIError) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, validationError(key, key+" must be an integer")
	}
	return n, nil
}

// decodeJSONBody decodes a bounded JSON body into dst, rejecting unknown
// fields.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) *models.APIError {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &models.APIError{
			Code:    ErrCodeValidation,
			Message: "Request body must be a JSON object",
			Details: map[string]interface{}{"error": sanitizeLogValue(err.Error())},
		}
	}
	return nil
}

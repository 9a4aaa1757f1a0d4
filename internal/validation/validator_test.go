// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type similarRequest struct {
	Title string `query:"title" validate:"required,notblank,max=20"`
	N     int    `query:"n" validate:"omitempty,min=1,max=50"`
}

type criteriaRequest struct {
	Query string `json:"query" validate:"required,notblank,min=2,max=500"`
	Mode  string `json:"mode,omitempty" validate:"omitempty,oneof=fast full"`
	Skip  string `json:"-" validate:"max=3"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"valid", &similarRequest{Title: "Heat", N: 10}, "", "", ""},
		{"n omitted", &similarRequest{Title: "Heat"}, "", "", ""},
		{"title missing", &similarRequest{}, "title", "required", "title is required"},
		{"title blank", &similarRequest{Title: "   "}, "title", "notblank", "title must not be blank"},
		{"title too long", &similarRequest{Title: strings.Repeat("x", 21)}, "title", "max", "title must be at most 20 characters"},
		{"n too large", &similarRequest{Title: "Heat", N: 51}, "n", "max", "n must be at most 50"},
		{"n negative", &similarRequest{Title: "Heat", N: -1}, "n", "min", "n must be at least 1"},
		{"valid criteria", &criteriaRequest{Query: "heist films"}, "", "", ""},
		{"query too short", &criteriaRequest{Query: "a"}, "query", "min", "query must be at least 2 characters"},
		{"mode not allowed", &criteriaRequest{Query: "heist", Mode: "slow"}, "mode", "oneof", "mode must be one of: fast full"},
		{"json dash uses struct field name", &criteriaRequest{Query: "heist", Skip: "long"}, "Skip", "max", "Skip must be at most 3 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantTag == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(err.Errors()) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1", len(err.Errors()))
			}
			fe := err.Errors()[0]
			if fe.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", fe.Field(), tt.wantField)
			}
			if fe.Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", fe.Tag(), tt.wantTag)
			}
			if tt.wantMsg != "" && fe.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", fe.Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		err := ValidateStruct(&similarRequest{})
		apiErr := err.ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
		}
		if apiErr.Message != "title is required" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "title" {
			t.Errorf("Details[field] = %v, want title", apiErr.Details["field"])
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		err := ValidateStruct(&similarRequest{Title: "", N: 99})
		apiErr := err.ToAPIError()
		if !strings.Contains(apiErr.Message, "title: title is required") || !strings.Contains(apiErr.Message, "n: n must be at most 50") {
			t.Errorf("Message = %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Errorf("Details[fields] = %v, want 2 entries", apiErr.Details["fields"])
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" || apiErr.Message != "Validation failed" {
			t.Errorf("ToAPIError() = %+v", apiErr)
		}
	})
}

func TestRequestValidationError_Error(t *testing.T) {
	if got := (&RequestValidationError{}).Error(); got != "validation failed" {
		t.Errorf("Error() = %q, want validation failed", got)
	}
	err := ValidateStruct(&similarRequest{Title: "", N: 99})
	if got := err.Error(); got != "title is required; n must be at most 50" {
		t.Errorf("Error() = %q", got)
	}
}

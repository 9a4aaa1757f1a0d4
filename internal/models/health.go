// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package models

import "github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/recommend"

// ReadinessStatus is the payload of GET /health/ready.
type ReadinessStatus struct {
	Ready             bool              `json:"ready_to_serve"`
	EngineReady       bool              `json:"engine_ready"`
	DatabaseConnected bool              `json:"database_connected"`
	Breakers          map[string]string `json:"breakers"`
	Uptime            float64           `json:"uptime"`
}

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status            string            `json:"status"`
	Version           string            `json:"version"`
	DatabaseConnected bool              `json:"database_connected"`
	CatalogConfigured bool              `json:"catalog_configured"`
	LLMConfigured     bool              `json:"llm_configured"`
	Engine            *recommend.Stats  `json:"engine,omitempty"`
	Breakers          map[string]string `json:"breakers"`
	Uptime            float64           `json:"uptime"`
}

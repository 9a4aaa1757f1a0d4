// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package api

import (
	"net/http"
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/middleware"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/models"
)

// Version is reported by the health endpoint. Overridden at build time.
var Version = "dev"

// Health handles GET /api/v1/health
// Reports component status. Always 200; the status field is "healthy"
// or "degraded".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.store != nil && h.store.Ping(r.Context()) == nil
	engineReady := h.engine != nil && h.engine.Ready()

	status := "healthy"
	if !dbConnected || !engineReady {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:            status,
		Version:           Version,
		DatabaseConnected: dbConnected,
		CatalogConfigured: h.popular != nil,
		LLMConfigured:     h.criteria != nil,
		Breakers:          h.breakerStates(),
		Uptime:            time.Since(h.startTime).Seconds(),
	}
	if h.engine != nil {
		stats := h.engine.Stats()
		health.Engine = &stats
	}

	respondSuccess(w, r, health, time.Time{})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Time{})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Ready means the engine has a corpus and DuckDB answers a ping. Open
// breakers are reported but do not fail readiness, since similarity and
// genre requests still succeed without posters.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.store != nil && h.store.Ping(r.Context()) == nil
	engineReady := h.engine != nil && h.engine.Ready()
	ready := dbConnected && engineReady

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: models.ReadinessStatus{
			Ready:             ready,
			EngineReady:       engineReady,
			DatabaseConnected: dbConnected,
			Breakers:          h.breakerStates(),
			Uptime:            time.Since(h.startTime).Seconds(),
		},
		Metadata: newMetadata(r, time.Time{}),
	})
}

// HealthPerformance handles GET /api/v1/health/performance
// Returns per-route latency percentiles over the recent request window.
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	stats := []middleware.EndpointStats{}
	if h.perfMon != nil {
		stats = h.perfMon.GetStats()
	}
	respondList(w, r, stats, len(stats), time.Time{})
}

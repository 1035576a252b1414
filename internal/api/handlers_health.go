// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package api

import (
	"net/http"
	"time"

	"github.com/Shinsina/most-popular-content/internal/logging"
	"github.com/Shinsina/most-popular-content/internal/models"
)

// HandleHealth serves GET /api/v1/health: overall service health including
// database reachability.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	httpStatus := http.StatusOK

	dbStatus := "up"
	if err := h.db.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Health check database ping failed")
		dbStatus = "down"
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	respondJSON(w, r, httpStatus, models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"database": dbStatus,
		},
		Metadata: &models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HandleHealthLive serves GET /api/v1/health/live: process liveness only,
// no dependency checks.
func (h *Handler) HandleHealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.APIResponse{
		Status: "alive",
		Metadata: &models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HandleHealthReady serves GET /api/v1/health/ready: readiness to serve
// traffic, gated on the database.
func (h *Handler) HandleHealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check database ping failed")
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Database is not reachable")
		return
	}

	respondJSON(w, r, http.StatusOK, models.APIResponse{
		Status: "ready",
		Metadata: &models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

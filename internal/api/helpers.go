// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

// Package api exposes the HTTP surface: the popular-content retrieval
// endpoint, health probes, and the Prometheus scrape endpoint.
package api

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/Shinsina/most-popular-content/internal/logging"
	"github.com/Shinsina/most-popular-content/internal/models"
)

// respondJSON writes an arbitrary payload as JSON. Encode failures after
// the header is written cannot be recovered, only logged.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// respondError writes a structured error envelope.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	respondJSON(w, r, status, models.APIResponse{
		Status: "error",
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
		Metadata: &models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

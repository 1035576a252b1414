// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Shinsina/most-popular-content/internal/logging"
	"github.com/Shinsina/most-popular-content/internal/popularity"
)

// Response headers reporting cache behavior to clients.
const (
	cacheStatusHeader = "x-cache"
	cacheAgeHeader    = "age"
)

// HandlePopularContent serves GET /api/v1/popular: the ranked most popular
// content for a tenant/realm over a sliding week or month window.
//
// The x-cache header reports hit or miss; age carries the entry age in
// seconds on hits only. The success body is the bare result payload, not
// the error envelope, matching what existing consumers parse.
func (h *Handler) HandlePopularContent(w http.ResponseWriter, r *http.Request) {
	retrieval, err := h.svc.Retrieve(r.Context(), r.URL.Query())
	if err != nil {
		var verr *popularity.ValidationError
		if errors.As(err, &verr) {
			respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", verr.Message)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Popular content retrieval failed")
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve popular content")
		return
	}

	w.Header().Set(cacheStatusHeader, string(retrieval.Status))
	if retrieval.Status == popularity.CacheHit {
		w.Header().Set(cacheAgeHeader, strconv.FormatInt(retrieval.AgeSeconds, 10))
	}
	respondJSON(w, r, http.StatusOK, retrieval.Result)
}

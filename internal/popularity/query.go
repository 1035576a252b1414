// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

// Package popularity implements the retrieval core: request normalization,
// sliding-window derivation, deterministic cache-key derivation, and the
// cache-or-aggregate orchestration.
package popularity

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/Shinsina/most-popular-content/internal/models"
	"github.com/Shinsina/most-popular-content/internal/validation"
)

// ValidationError reports a request that cannot be normalized. It maps to
// an HTTP 400 at the API layer; no store access happens after one.
type ValidationError struct {
	Message string
}

// Error returns the human-readable validation message.
func (e *ValidationError) Error() string {
	return e.Message
}

// rawPopularityParams carries the string-typed inbound parameters through
// struct validation.
type rawPopularityParams struct {
	Tenant      string `validate:"required"`
	Realm       string `validate:"required"`
	Granularity string `validate:"omitempty,oneof=week month"`
}

// Normalize validates and canonicalizes raw query parameters.
//
// Rules:
//   - tenant and realm are required; granularity must be week or month when
//     supplied (default week). Violations return *ValidationError.
//   - limit: base-10 parse; missing, zero, negative, or unparseable falls
//     back to defaultLimit; values above maxLimit are silently clamped.
//     Never an error, so the endpoint stays answerable with sane bounds.
//   - types and includeIds: comma-separated, trimmed, invalid tokens
//     dropped, deduplicated, sorted. Only membership matters downstream;
//     the sort gives the cache-key serialization a canonical order.
func Normalize(params url.Values, defaultLimit, maxLimit int) (*models.PopularityQuery, error) {
	raw := rawPopularityParams{
		Tenant:      params.Get("tenant"),
		Realm:       params.Get("realm"),
		Granularity: params.Get("granularity"),
	}
	if verr := validation.ValidateStruct(&raw); verr != nil {
		return nil, &ValidationError{Message: verr.Errors()[0].Error()}
	}

	granularity := models.Granularity(raw.Granularity)
	if granularity == "" {
		granularity = models.GranularityWeek
	}

	limit := defaultLimit
	if parsed, err := strconv.Atoi(params.Get("limit")); err == nil && parsed >= 1 {
		limit = parsed
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return &models.PopularityQuery{
		Tenant:      raw.Tenant,
		Realm:       raw.Realm,
		Granularity: granularity,
		Limit:       limit,
		Types:       parseTypeSet(params.Get("types")),
		IncludeIDs:  parseIDSet(params.Get("includeIds")),
	}, nil
}

// parseTypeSet parses a comma-separated string into a sorted, deduplicated
// slice. Empty tokens are dropped.
func parseTypeSet(value string) []string {
	if value == "" {
		return nil
	}

	seen := make(map[string]struct{})
	for _, part := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			seen[trimmed] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	result := make([]string, 0, len(seen))
	for t := range seen {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

// parseIDSet parses a comma-separated string into a sorted, deduplicated
// slice of content ids. Non-numeric and zero tokens are dropped.
func parseIDSet(value string) []int64 {
	if value == "" {
		return nil
	}

	seen := make(map[int64]struct{})
	for _, part := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		id, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil || id == 0 {
			continue
		}
		seen[id] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}

	result := make([]int64, 0, len(seen))
	for id := range seen {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package models

import "time"

// APIResponse is the envelope used for error and operational responses
// (health, errors). The popular-content endpoint itself returns the bare
// PopularityResult for wire compatibility with existing consumers.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Metadata *Metadata   `json:"metadata,omitempty"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response observability fields.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is a machine-readable error with a human-readable message.
//
// Common codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - DATABASE_ERROR: the hourly-usage store failed
//   - NOT_FOUND, METHOD_NOT_ALLOWED, INTERNAL_ERROR
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

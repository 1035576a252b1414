// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

// Package models defines the domain types shared across the application:
// normalized queries, time windows, hourly usage records, and the ranked
// popularity results returned to API clients.
package models

import (
	"time"
)

// Granularity is the size of the retrieval time window.
type Granularity string

// Supported granularities. The window is one week or one calendar month
// ending at the top of the current hour.
const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Valid reports whether g is a supported granularity.
func (g Granularity) Valid() bool {
	return g == GranularityWeek || g == GranularityMonth
}

// PopularityQuery is the canonical form of an incoming request.
//
// Invariants maintained by the normalizer:
//   - Tenant and Realm are non-empty
//   - Granularity is one of the supported values (default: week)
//   - Limit is in [1,50] (default: 10)
//   - Types and IncludeIDs are deduplicated and sorted; membership, not
//     order, is what matters downstream, but the canonical order keeps
//     cache-key serialization stable
type PopularityQuery struct {
	Tenant      string
	Realm       string
	Granularity Granularity
	Limit       int
	Types       []string
	IncludeIDs  []int64
}

// TimeWindow is the half-open-looking but inclusive [Start, End] range the
// aggregation covers. Derived from "now" truncated to the hour; never
// persisted, so an identical query shape issued in a different hour covers
// a different window.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// UsageFilter is the match predicate applied to hourly usage records: the
// inclusive [Start, End] window, exact tenant/realm, and the optional
// content-id and type membership filters (empty slices are no-ops, not
// "match nothing").
//
// The struct doubles as the canonical cache-key input: field order is
// fixed, slices are kept sorted by the normalizer, and timestamps are
// hour-truncated UTC, so its JSON serialization is deterministic for
// semantically identical queries.
type UsageFilter struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Tenant     string    `json:"tenant"`
	Realm      string    `json:"realm"`
	ContentIDs []int64   `json:"contentIds,omitempty"`
	Types      []string  `json:"types,omitempty"`
}

// ContentRef identifies a piece of content.
type ContentRef struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// ContentPopularity is one ranked row of the result.
//
// UniqueUsers and the top-level ID are deprecated aliases (of Users and
// Content.ID respectively) kept for wire compatibility with existing
// consumers.
type ContentPopularity struct {
	Users       int64      `json:"users"`
	UniqueUsers int64      `json:"uniqueUsers"`
	Views       int64      `json:"views"`
	Content     ContentRef `json:"content"`
	ID          int64      `json:"id"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PopularityResult is the ranked top-N payload for a tenant/realm window.
// UpdatedAt is present only when at least one content item matched.
type PopularityResult struct {
	Granularity Granularity         `json:"granularity"`
	Tenant      string              `json:"tenant"`
	Realm       string              `json:"realm"`
	StartsAt    time.Time           `json:"startsAt"`
	EndsAt      time.Time           `json:"endsAt"`
	UpdatedAt   *time.Time          `json:"updatedAt,omitempty"`
	Data        []ContentPopularity `json:"data"`
}

// HourlyUsageRecord is one pre-aggregated usage counter row: per content
// item, per hour, per tenant/realm. The rows are produced by an external
// materialized-view job; this service only reads them (and writes them in
// tests and mock seeding, which share the job's schema contract).
type HourlyUsageRecord struct {
	Hour      time.Time
	Tenant    string
	Realm     string
	ContentID int64
	Type      string
	Users     int64
	Views     int64
	UpdatedAt time.Time
}

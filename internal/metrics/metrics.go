// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

// Package metrics defines the Prometheus instrumentation for the service:
// result-cache efficiency, DuckDB query performance, and API throughput.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Result Cache Metrics
	ResultCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "popular_content_cache_hits_total",
			Help: "Total number of popular-content result cache hits",
		},
	)

	ResultCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "popular_content_cache_misses_total",
			Help: "Total number of popular-content result cache misses",
		},
	)

	ResultCacheWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "popular_content_cache_write_errors_total",
			Help: "Total number of failed result cache writes (non-fatal)",
		},
	)

	ResultCacheDecodeErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "popular_content_cache_decode_errors_total",
			Help: "Total number of malformed cached envelopes treated as misses",
		},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

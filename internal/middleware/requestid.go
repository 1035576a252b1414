// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

// Package middleware provides the HTTP middleware stack: request-id
// propagation and Prometheus request instrumentation.
package middleware

import (
	"net/http"

	"github.com/Shinsina/most-popular-content/internal/logging"
)

// RequestIDHeader carries the request id on both requests and responses.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a request id to the request context and echoes it on
// the response. An inbound X-Request-ID is trusted and reused so ids stay
// stable across proxy hops; otherwise a new one is generated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

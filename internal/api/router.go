// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Shinsina/most-popular-content/internal/middleware"
)

// NewRouter builds the chi router with the full middleware stack and all
// routes.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{cacheStatusHeader, cacheAgeHeader, middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if h.cfg.Server.RateLimitReqs > 0 {
		r.Use(httprate.LimitByIP(h.cfg.Server.RateLimitReqs, h.cfg.Server.RateLimitWindow))
	}
	r.Use(middleware.Prometheus)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/popular", h.HandlePopularContent)
		r.Get("/health", h.HandleHealth)
		r.Get("/health/live", h.HandleHealthLive)
		r.Get("/health/ready", h.HandleHealthReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package api

import (
	"context"

	"github.com/Shinsina/most-popular-content/internal/config"
	"github.com/Shinsina/most-popular-content/internal/popularity"
)

// Pinger is the readiness dependency: anything that can confirm the
// backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler bundles the HTTP handlers and their dependencies.
type Handler struct {
	svc *popularity.Service
	db  Pinger
	cfg *config.Config
}

// NewHandler creates the handler set for the router.
func NewHandler(svc *popularity.Service, db Pinger, cfg *config.Config) *Handler {
	return &Handler{
		svc: svc,
		db:  db,
		cfg: cfg,
	}
}

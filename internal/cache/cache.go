// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

// Package cache provides the TTL'd key-value store that absorbs read
// traffic for computed popularity results.
//
// Two backends implement the Store interface:
//   - BadgerStore: durable, survives restarts, TTL enforced by BadgerDB
//   - MemoryStore: process-local map with expiry, for tests and dev
//
// The cache is a performance optimization, not a source of truth: callers
// must treat any read failure or malformed value as a miss.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Shinsina/most-popular-content/internal/config"
)

// ErrNotFound is returned by Get when the key is absent or expired.
var ErrNotFound = errors.New("cache: key not found")

// Store is a key-value store with per-entry TTL.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound when the key
	// is absent or its TTL has elapsed.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the given TTL. Entries are never
	// explicitly deleted by this service; they age out.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases the backing store.
	Close() error
}

// New creates the cache store selected by cfg.Backend.
func New(cfg *config.CacheConfig) (Store, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "badger":
		return NewBadgerStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
}

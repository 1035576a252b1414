// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package cache

import (
	"context"
	"sync"
	"time"
)

// memoryEntry is a cached value with its expiration time.
type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore implements Store with a mutex-guarded in-process map.
// Entries expire on read and are swept by a background cleanup loop.
// Intended for tests and single-process development setups; cached results
// do not survive restarts.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	stop    chan struct{}
	once    sync.Once
}

// cleanupInterval is how often the background sweep removes expired entries.
const cleanupInterval = 5 * time.Minute

// NewMemoryStore creates an in-memory store with a background cleanup
// goroutine. The goroutine runs until Close is called.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		stop:    make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

// Get returns the value stored under key, or ErrNotFound when absent or
// expired. Expired entries are removed on read.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	entry, exists := s.entries[key]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrNotFound
	}

	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	return entry.value, nil
}

// Set stores value under key with the given TTL, overwriting any existing
// entry.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	s.mu.Unlock()
	return nil
}

// Close stops the cleanup goroutine and drops all entries.
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.stop) })

	s.mu.Lock()
	s.entries = make(map[string]memoryEntry)
	s.mu.Unlock()
	return nil
}

// cleanupLoop periodically removes expired entries.
func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stop:
			return
		}
	}
}

// cleanup removes all expired entries.
func (s *MemoryStore) cleanup() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
}

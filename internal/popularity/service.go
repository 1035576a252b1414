// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package popularity

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"github.com/Shinsina/most-popular-content/internal/cache"
	"github.com/Shinsina/most-popular-content/internal/config"
	"github.com/Shinsina/most-popular-content/internal/logging"
	"github.com/Shinsina/most-popular-content/internal/metrics"
	"github.com/Shinsina/most-popular-content/internal/models"
)

// Store aggregates ranked popularity rows for a usage filter.
type Store interface {
	MostPopular(ctx context.Context, filter models.UsageFilter, limit int) ([]models.ContentPopularity, error)
}

// CacheStatus tells the caller whether a retrieval was served from the
// result cache.
type CacheStatus string

const (
	CacheHit  CacheStatus = "hit"
	CacheMiss CacheStatus = "miss"
)

// Envelope wraps a cached result with its storage timestamp so the age of
// a hit can be reported without a second cache lookup.
type Envelope struct {
	Payload        models.PopularityResult `json:"payload"`
	StoredAtMillis int64                   `json:"storedAtMillis"`
}

// Retrieval is the outcome of a single retrieve operation. AgeSeconds is
// only meaningful when Status is CacheHit.
type Retrieval struct {
	Result     *models.PopularityResult
	Status     CacheStatus
	AgeSeconds int64
}

// Service orchestrates retrieval: normalize, derive window and key, consult
// the result cache, aggregate on miss, cache the fresh result.
type Service struct {
	store        Store
	cache        cache.Store
	ttl          time.Duration
	defaultLimit int
	maxLimit     int

	// now is swapped in tests to pin the window and age computations.
	now func() time.Time
}

// NewService wires the aggregation store and result cache into a service.
func NewService(store Store, cacheStore cache.Store, apiCfg config.APIConfig, ttl time.Duration) *Service {
	return &Service{
		store:        store,
		cache:        cacheStore,
		ttl:          ttl,
		defaultLimit: apiCfg.DefaultLimit,
		maxLimit:     apiCfg.MaxLimit,
		now:          time.Now,
	}
}

// Retrieve serves the most-popular-content listing for the given raw query
// parameters.
//
// An unreadable or malformed cache entry is treated as a miss, never a
// failure. A failed cache write after a successful aggregation is logged
// and counted but the fresh result is still returned; the cache is an
// optimization, not a source of truth.
func (s *Service) Retrieve(ctx context.Context, params url.Values) (*Retrieval, error) {
	query, err := Normalize(params, s.defaultLimit, s.maxLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	window := Window(now, query.Granularity)
	filter := models.UsageFilter{
		Start:      window.Start,
		End:        window.End,
		Tenant:     query.Tenant,
		Realm:      query.Realm,
		ContentIDs: query.IncludeIDs,
		Types:      query.Types,
	}
	key := CacheKey(filter, query.Limit)

	data, cerr := s.cache.Get(ctx, key)
	switch {
	case cerr == nil:
		var env Envelope
		if uerr := json.Unmarshal(data, &env); uerr == nil {
			metrics.ResultCacheHits.Inc()
			return &Retrieval{
				Result:     &env.Payload,
				Status:     CacheHit,
				AgeSeconds: ageSeconds(now, env.StoredAtMillis),
			}, nil
		}
		metrics.ResultCacheDecodeErrors.Inc()
		logging.Ctx(ctx).Debug().Str("key", key).Msg("Discarding malformed result cache entry")
	case errors.Is(cerr, cache.ErrNotFound):
		// fall through to aggregation
	default:
		return nil, fmt.Errorf("result cache read failed: %w", cerr)
	}
	metrics.ResultCacheMisses.Inc()

	ranked, err := s.store.MostPopular(ctx, filter, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("popularity aggregation failed: %w", err)
	}
	result := buildResult(query, window, ranked)

	// Do not publish a result computed under a cancelled request.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if encoded, merr := json.Marshal(Envelope{Payload: *result, StoredAtMillis: now.UnixMilli()}); merr == nil {
		if werr := s.cache.Set(ctx, key, encoded, s.ttl); werr != nil {
			metrics.ResultCacheWriteErrors.Inc()
			logging.Ctx(ctx).Warn().Err(werr).Str("key", key).Msg("Result cache write failed")
		}
	}

	return &Retrieval{Result: result, Status: CacheMiss}, nil
}

// buildResult assembles the response payload from the ranked rows. The
// top-level UpdatedAt is the newest per-item timestamp, absent when the
// window matched nothing.
func buildResult(query *models.PopularityQuery, window models.TimeWindow, ranked []models.ContentPopularity) *models.PopularityResult {
	if ranked == nil {
		ranked = []models.ContentPopularity{}
	}

	result := &models.PopularityResult{
		Granularity: query.Granularity,
		Tenant:      query.Tenant,
		Realm:       query.Realm,
		StartsAt:    window.Start,
		EndsAt:      window.End,
		Data:        ranked,
	}
	for _, item := range ranked {
		if result.UpdatedAt == nil || item.UpdatedAt.After(*result.UpdatedAt) {
			updated := item.UpdatedAt
			result.UpdatedAt = &updated
		}
	}
	return result
}

// ageSeconds reports how long ago a cached envelope was stored, rounded to
// the nearest second and floored at zero.
func ageSeconds(now time.Time, storedAtMillis int64) int64 {
	delta := now.UnixMilli() - storedAtMillis
	if delta <= 0 {
		return 0
	}
	return (delta + 500) / 1000
}

// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package popularity

import (
	"crypto/sha256"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/Shinsina/most-popular-content/internal/models"
)

// cacheKeyNamespace prefixes every result-cache key so the cache store can
// be shared with other keyspaces without collisions.
const cacheKeyNamespace = "most_popular_content"

// cacheKeyPayload is the canonical serialization input for key derivation.
// Field order is fixed by the struct; slice order is fixed by Normalize.
type cacheKeyPayload struct {
	Match models.UsageFilter `json:"match"`
	Limit int                `json:"limit"`
}

// CacheKey derives the deterministic result-cache key for a normalized
// filter and limit: namespace, tenant, and the SHA-256 hex digest of the
// canonical JSON of the semantic query inputs. Two requests that normalize
// to the same filter and limit always produce the same key.
func CacheKey(filter models.UsageFilter, limit int) string {
	data, err := json.Marshal(cacheKeyPayload{Match: filter, Limit: limit})
	if err != nil {
		// Marshal of plain structs and slices cannot fail; keep a
		// deterministic fallback rather than panicking in the hot path.
		data = []byte(fmt.Sprintf("%+v:%d", filter, limit))
	}

	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s:%x", cacheKeyNamespace, filter.Tenant, sum[:])
}

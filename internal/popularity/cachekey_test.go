// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package popularity

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/Shinsina/most-popular-content/internal/models"
)

func testFilter() models.UsageFilter {
	return models.UsageFilter{
		Start:  time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC),
		End:    time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC),
		Tenant: "acme",
		Realm:  "default",
	}
}

var cacheKeyPattern = regexp.MustCompile(`^most_popular_content:acme:[0-9a-f]{64}$`)

func TestCacheKeyShape(t *testing.T) {
	key := CacheKey(testFilter(), 10)
	if !cacheKeyPattern.MatchString(key) {
		t.Errorf("key %q does not match namespace:tenant:sha256hex", key)
	}
}

func TestCacheKeyDeterministic(t *testing.T) {
	a := CacheKey(testFilter(), 10)
	b := CacheKey(testFilter(), 10)
	if a != b {
		t.Errorf("identical inputs produced different keys: %q vs %q", a, b)
	}
}

func TestCacheKeyVariesWithInputs(t *testing.T) {
	base := CacheKey(testFilter(), 10)

	tests := []struct {
		name   string
		mutate func(*models.UsageFilter)
		limit  int
	}{
		{"different limit", func(f *models.UsageFilter) {}, 20},
		{"different realm", func(f *models.UsageFilter) { f.Realm = "staging" }, 10},
		{"different window", func(f *models.UsageFilter) { f.End = f.End.Add(time.Hour) }, 10},
		{"type filter added", func(f *models.UsageFilter) { f.Types = []string{"video"} }, 10},
		{"id filter added", func(f *models.UsageFilter) { f.ContentIDs = []int64{7} }, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := testFilter()
			tt.mutate(&filter)
			key := CacheKey(filter, tt.limit)
			if key == base {
				t.Errorf("key did not change for %s", tt.name)
			}
		})
	}
}

func TestCacheKeyTenantPrefix(t *testing.T) {
	filter := testFilter()
	filter.Tenant = "globex"
	key := CacheKey(filter, 10)
	if !strings.HasPrefix(key, "most_popular_content:globex:") {
		t.Errorf("key %q missing tenant prefix", key)
	}
}

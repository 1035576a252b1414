// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package popularity

import (
	"time"

	"github.com/Shinsina/most-popular-content/internal/models"
)

// Window derives the sliding aggregation window for a granularity. The end
// boundary is the current instant truncated to the hour in UTC, so every
// request within the same wall-clock hour resolves to the same window and
// therefore the same cache key.
func Window(now time.Time, granularity models.Granularity) models.TimeWindow {
	end := now.UTC().Truncate(time.Hour)

	var start time.Time
	switch granularity {
	case models.GranularityMonth:
		start = end.AddDate(0, -1, 0)
		// AddDate normalizes a nonexistent day (Mar 31 minus one month
		// lands on Feb 31, i.e. Mar 3) and would silently shrink the
		// window by up to three days. Clamp to the last day of the
		// previous month instead.
		if start.Day() != end.Day() {
			start = start.AddDate(0, 0, -start.Day())
		}
	default:
		start = end.AddDate(0, 0, -7)
	}

	return models.TimeWindow{Start: start, End: end}
}

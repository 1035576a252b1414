// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package popularity

import (
	"testing"
	"time"

	"github.com/Shinsina/most-popular-content/internal/models"
)

func TestWindowWeek(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 37, 22, 123456789, time.UTC)

	window := Window(now, models.GranularityWeek)

	wantEnd := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	if !window.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", window.End, wantEnd)
	}
	wantStart := time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC)
	if !window.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", window.Start, wantStart)
	}
}

func TestWindowMonth(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 37, 22, 0, time.UTC)

	window := Window(now, models.GranularityMonth)

	wantStart := time.Date(2026, 2, 15, 14, 0, 0, 0, time.UTC)
	if !window.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", window.Start, wantStart)
	}
}

func TestWindowNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2026, 3, 15, 16, 37, 0, 0, loc)

	window := Window(now, models.GranularityWeek)

	wantEnd := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	if !window.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", window.End, wantEnd)
	}
	if window.End.Location() != time.UTC {
		t.Errorf("end location = %v, want UTC", window.End.Location())
	}
}

func TestWindowStableWithinHour(t *testing.T) {
	a := time.Date(2026, 3, 15, 14, 0, 1, 0, time.UTC)
	b := time.Date(2026, 3, 15, 14, 59, 59, 0, time.UTC)

	wa := Window(a, models.GranularityWeek)
	wb := Window(b, models.GranularityWeek)

	if !wa.Start.Equal(wb.Start) || !wa.End.Equal(wb.End) {
		t.Errorf("windows differ within the same hour: %+v vs %+v", wa, wb)
	}
}

// Calendar-month subtraction from a day the previous month does not have
// clamps to that month's last day, so late-month requests keep the full
// window.
func TestWindowMonthEndOfMonth(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
	}{
		{
			name:      "march 31 clamps to february 28",
			now:       time.Date(2026, 3, 31, 10, 12, 0, 0, time.UTC),
			wantStart: time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "march 29 clamps to february 28",
			now:       time.Date(2026, 3, 29, 10, 12, 0, 0, time.UTC),
			wantStart: time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "march 31 in leap year clamps to february 29",
			now:       time.Date(2028, 3, 31, 10, 12, 0, 0, time.UTC),
			wantStart: time.Date(2028, 2, 29, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "may 31 clamps to april 30",
			now:       time.Date(2026, 5, 31, 10, 12, 0, 0, time.UTC),
			wantStart: time.Date(2026, 4, 30, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "march 28 needs no clamp",
			now:       time.Date(2026, 3, 28, 10, 12, 0, 0, time.UTC),
			wantStart: time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "mid-month needs no clamp",
			now:       time.Date(2026, 7, 15, 10, 12, 0, 0, time.UTC),
			wantStart: time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := Window(tt.now, models.GranularityMonth)
			if !window.Start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", window.Start, tt.wantStart)
			}
		})
	}
}

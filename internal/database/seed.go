// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Shinsina/most-popular-content/internal/logging"
	"github.com/Shinsina/most-popular-content/internal/models"
)

// SeedMockData seeds the database with mock hourly usage rows.
// Intended for local development and CI only (SEED_MOCK_DATA=true); the
// real rows are maintained by the external materialized-view job.
func (db *DB) SeedMockData(ctx context.Context) error {
	logging.Info().Msg("Seeding database with mock hourly usage data...")

	const (
		numContentItems = 40
		hoursOfHistory  = 24 * 35 // a bit more than a month so both windows have data
	)

	tenants := []struct {
		tenant string
		realm  string
	}{
		{"acme", "default"},
		{"acme", "staging"},
		{"globex", "default"},
	}

	contentTypes := []string{"article", "video", "podcast", "gallery"}

	rng := rand.New(rand.NewSource(42)) // fixed seed for stable demo data
	now := time.Now().UTC().Truncate(time.Hour)

	var records []models.HourlyUsageRecord
	for _, tr := range tenants {
		for contentID := int64(1); contentID <= numContentItems; contentID++ {
			contentType := contentTypes[int(contentID)%len(contentTypes)]

			// Popular items get traffic most hours, the long tail rarely.
			activity := rng.Float64()
			for h := 0; h < hoursOfHistory; h++ {
				if rng.Float64() > activity {
					continue
				}
				hour := now.Add(-time.Duration(h) * time.Hour)
				users := int64(1 + rng.Intn(200))
				records = append(records, models.HourlyUsageRecord{
					Hour:      hour,
					Tenant:    tr.tenant,
					Realm:     tr.realm,
					ContentID: contentID,
					Type:      contentType,
					Users:     users,
					Views:     users + int64(rng.Intn(500)),
					UpdatedAt: hour.Add(30 * time.Minute),
				})
			}
		}
	}

	if err := db.InsertHourlyUsage(ctx, records); err != nil {
		return fmt.Errorf("failed to seed mock usage data: %w", err)
	}

	logging.Info().Int("rows", len(records)).Msg("Mock hourly usage data seeded")
	return nil
}

// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package database

import (
	"context"
	"fmt"

	"github.com/Shinsina/most-popular-content/internal/models"
)

// InsertHourlyUsage writes hourly usage rows, replacing any existing row
// for the same (tenant, realm, hour, content_id). The production rows come
// from the external materialized-view job; this method exists for mock
// seeding and tests, which share the job's schema contract.
func (db *DB) InsertHourlyUsage(ctx context.Context, records []models.HourlyUsageRecord) error {
	if len(records) == 0 {
		return nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin usage insert: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO content_hourly
			(hour, tenant, realm, content_id, type, users, views, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare usage insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx,
			rec.Hour, rec.Tenant, rec.Realm, rec.ContentID,
			rec.Type, rec.Users, rec.Views, rec.UpdatedAt,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert usage row for content %d: %w", rec.ContentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit usage insert: %w", err)
	}

	return nil
}

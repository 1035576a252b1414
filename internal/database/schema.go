// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables and indexes.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		// Hourly usage counters: one row per content item per hour per
		// tenant/realm. This schema is the write contract of the external
		// materialized-view job; changing it requires coordinating with
		// that job.
		`CREATE TABLE IF NOT EXISTS content_hourly (
			hour TIMESTAMP NOT NULL,
			tenant TEXT NOT NULL,
			realm TEXT NOT NULL,
			content_id BIGINT NOT NULL,
			type TEXT NOT NULL,
			users BIGINT NOT NULL,
			views BIGINT NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (tenant, realm, hour, content_id)
		)`,

		// The aggregation always filters on tenant/realm/hour; content_id
		// and type filters ride on top of that.
		`CREATE INDEX IF NOT EXISTS idx_content_hourly_window
			ON content_hourly (tenant, realm, hour)`,
		`CREATE INDEX IF NOT EXISTS idx_content_hourly_type
			ON content_hourly (tenant, realm, type)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Shinsina/most-popular-content/internal/metrics"
	"github.com/Shinsina/most-popular-content/internal/models"
)

// buildUsageWhereClause builds the WHERE clause for an hourly-usage filter.
// The window bounds are inclusive on both ends. ContentIDs and Types are
// AND-ed in only when non-empty; an omitted filter matches everything.
//
// Returns the clause string and query arguments.
func buildUsageWhereClause(filter models.UsageFilter) (string, []interface{}) {
	whereClauses := []string{"hour >= ?", "hour <= ?", "tenant = ?", "realm = ?"}
	args := []interface{}{filter.Start, filter.End, filter.Tenant, filter.Realm}

	if len(filter.ContentIDs) > 0 {
		placeholders := make([]string, len(filter.ContentIDs))
		for i, id := range filter.ContentIDs {
			placeholders[i] = "?"
			args = append(args, id)
		}
		whereClauses = append(whereClauses, fmt.Sprintf("content_id IN (%s)", strings.Join(placeholders, ", ")))
	}

	if len(filter.Types) > 0 {
		placeholders := make([]string, len(filter.Types))
		for i, contentType := range filter.Types {
			placeholders[i] = "?"
			args = append(args, contentType)
		}
		whereClauses = append(whereClauses, fmt.Sprintf("type IN (%s)", strings.Join(placeholders, ", ")))
	}

	return strings.Join(whereClauses, " AND "), args
}

// MostPopular runs the ranking aggregation over the hourly usage rows
// matching filter: per-content rollup (summed users/views, earliest-hour
// type, latest update), ranked by summed users descending with content_id
// ascending as the tie-break, capped at limit.
//
// Purely a read; any store failure propagates wrapped with no partial
// result.
func (db *DB) MostPopular(ctx context.Context, filter models.UsageFilter, limit int) ([]models.ContentPopularity, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	whereClause, args := buildUsageWhereClause(filter)

	// arg_min(type, hour) keeps the type of the earliest row in the window,
	// a deterministic reading of "first-seen" for ids that change type.
	query := fmt.Sprintf(`
		SELECT
			content_id,
			arg_min(type, hour) AS type,
			SUM(users) AS total_users,
			SUM(views) AS total_views,
			MAX(updated_at) AS updated_at
		FROM content_hourly
		WHERE %s
		GROUP BY content_id
		ORDER BY total_users DESC, content_id ASC
		LIMIT ?
	`, whereClause)
	args = append(args, limit)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.DBQueryDuration.WithLabelValues("most_popular", "content_hourly").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBQueryErrors.WithLabelValues("most_popular", "content_hourly").Inc()
		return nil, fmt.Errorf("failed to query most popular content: %w", err)
	}
	defer closeQuietly(rows)

	var ranked []models.ContentPopularity
	for rows.Next() {
		var (
			contentID   int64
			contentType string
			users       int64
			views       int64
			updatedAt   time.Time
		)
		if err := rows.Scan(&contentID, &contentType, &users, &views, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan most popular content: %w", err)
		}
		ranked = append(ranked, models.ContentPopularity{
			Users:       users,
			UniqueUsers: users, // deprecated alias
			Views:       views,
			Content: models.ContentRef{
				ID:   contentID,
				Type: contentType,
			},
			ID:        contentID, // deprecated alias
			UpdatedAt: updatedAt,
		})
	}

	if err := rows.Err(); err != nil {
		metrics.DBQueryErrors.WithLabelValues("most_popular", "content_hourly").Inc()
		return nil, fmt.Errorf("error iterating most popular content: %w", err)
	}

	return ranked, nil
}

// Package insight implements the ActivityInsight repository using
// PostgreSQL. Insights are derived snapshots recomputed from the log ledger;
// they are a cache and may lag behind it between refreshes.
package insight

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

// Repo provides activity-insight persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new insight repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const getInsightSQL = `
SELECT activity_id, total_points, log_count, last_logged_at, refreshed_at
FROM activity_insights
WHERE activity_id = $1`

// refreshAllSQL recomputes every insight from the ledger in one statement.
// Activities without logs get a zero row so the snapshot is complete.
const refreshAllSQL = `
INSERT INTO activity_insights (activity_id, total_points, log_count, last_logged_at, refreshed_at)
SELECT a.id,
	COALESCE(sum(l.points_earned), 0),
	count(l.id),
	max(l.created_at),
	now()
FROM activities a
LEFT JOIN logged_activities l ON l.activity_id = a.id
GROUP BY a.id
ON CONFLICT (activity_id) DO UPDATE
SET total_points = EXCLUDED.total_points,
	log_count = EXCLUDED.log_count,
	last_logged_at = EXCLUDED.last_logged_at,
	refreshed_at = EXCLUDED.refreshed_at`

const deleteInsightByActivitySQL = `DELETE FROM activity_insights WHERE activity_id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByActivityID returns the insight snapshot for an activity, or
// domain.ErrNotFound when no snapshot has been computed yet.
func (r *Repo) GetByActivityID(ctx context.Context, activityID uuid.UUID) (*domain.ActivityInsight, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		ins          domain.ActivityInsight
		lastLoggedAt pgtype.Timestamptz
	)
	err := querier.QueryRow(ctx, getInsightSQL, activityID).Scan(
		&ins.ActivityID, &ins.TotalPoints, &ins.LogCount, &lastLoggedAt, &ins.RefreshedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("insight %s: %w", activityID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("insight %s: %w", activityID, err)
	}

	if lastLoggedAt.Valid {
		ins.LastLoggedAt = &lastLoggedAt.Time
	}

	return &ins, nil
}

// RefreshAll rebuilds the whole snapshot table from logged_activities and
// returns the number of rows written.
func (r *Repo) RefreshAll(ctx context.Context) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, refreshAllSQL)
	if err != nil {
		return 0, fmt.Errorf("refresh insights: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteByActivityID removes the snapshot of one activity. Used inside the
// activity cascade-delete transaction.
func (r *Repo) DeleteByActivityID(ctx context.Context, activityID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteInsightByActivitySQL, activityID); err != nil {
		return fmt.Errorf("delete insight %s: %w", activityID, err)
	}

	return nil
}

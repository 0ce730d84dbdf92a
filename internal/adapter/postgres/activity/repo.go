// Package activity implements the Activity repository using PostgreSQL.
// Activities carry the scoring configuration (kind, scoring method, base
// points, focus table) used by the point calculator.
package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const activityColumns = `id, user_id, category_id, name, kind, scoring_method, base_points,
	focus_low, focus_medium, focus_good, focus_zen, created_at, updated_at`

const getActivityByIDSQL = `
SELECT ` + activityColumns + `
FROM activities
WHERE id = $1 AND user_id = $2`

const listActivitiesByUserSQL = `
SELECT ` + activityColumns + `
FROM activities
WHERE user_id = $1
ORDER BY name`

const listActivitiesByCategorySQL = `
SELECT ` + activityColumns + `
FROM activities
WHERE user_id = $1 AND category_id = $2
ORDER BY name`

const createActivitySQL = `
INSERT INTO activities (user_id, category_id, name, kind, scoring_method, base_points,
	focus_low, focus_medium, focus_good, focus_zen)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + activityColumns

const updateActivitySQL = `
UPDATE activities
SET category_id = $3, name = $4, kind = $5, scoring_method = $6, base_points = $7,
	focus_low = $8, focus_medium = $9, focus_good = $10, focus_zen = $11,
	updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + activityColumns

const deleteActivitySQL = `DELETE FROM activities WHERE id = $1 AND user_id = $2`

const countActivitiesByCategorySQL = `
SELECT count(*) FROM activities WHERE user_id = $1 AND category_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an activity by primary key with user_id filter.
// Returns domain.ErrNotFound if the activity does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, activityID uuid.UUID) (*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getActivityByIDSQL, activityID, userID)
	a, err := scanActivity(row)
	if err != nil {
		return nil, mapError(err, "activity", activityID)
	}

	return &a, nil
}

// List returns all activities for a user ordered by name. When categoryID is
// non-nil the result is restricted to that category. Returns an empty slice
// (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID) ([]*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		rows pgx.Rows
		err  error
	)
	if categoryID != nil {
		rows, err = querier.Query(ctx, listActivitiesByCategorySQL, userID, *categoryID)
	} else {
		rows, err = querier.Query(ctx, listActivitiesByUserSQL, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	activities := []*domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("list activities: %w", err)
		}
		activities = append(activities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return activities, nil
}

// CountByCategory returns the number of activities a user has in a category.
func (r *Repo) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countActivitiesByCategorySQL, userID, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new activity and returns the persisted domain.Activity.
// Returns domain.ErrAlreadyExists if the user already has an activity with
// the same name in the category, and domain.ErrNotFound if the referenced
// category does not exist.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, activity *domain.Activity) (*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createActivitySQL,
		userID,
		activity.CategoryID,
		activity.Name,
		activity.Kind,
		activity.ScoringMethod,
		activity.BasePoints,
		activity.FocusTable.Low,
		activity.FocusTable.Medium,
		activity.FocusTable.Good,
		activity.FocusTable.Zen,
	)
	a, err := scanActivity(row)
	if err != nil {
		return nil, mapError(err, "activity", uuid.Nil)
	}

	return &a, nil
}

// Update applies a partial update (nil fields keep current values) and
// returns the updated activity. Returns domain.ErrNotFound if the activity
// does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, activityID uuid.UUID, params domain.ActivityUpdateParams) (*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getActivityByIDSQL, activityID, userID)
	current, err := scanActivity(row)
	if err != nil {
		return nil, mapError(err, "activity", activityID)
	}

	categoryID := current.CategoryID
	if params.CategoryID != nil {
		categoryID = *params.CategoryID
	}

	name := current.Name
	if params.Name != nil {
		name = *params.Name
	}

	kind := current.Kind
	if params.Kind != nil {
		kind = *params.Kind
	}

	scoringMethod := current.ScoringMethod
	if params.ScoringMethod != nil {
		scoringMethod = *params.ScoringMethod
	}

	basePoints := current.BasePoints
	if params.BasePoints != nil {
		basePoints = *params.BasePoints
	}

	table := current.FocusTable
	if params.FocusTable != nil {
		table = *params.FocusTable
	}

	updatedRow := querier.QueryRow(ctx, updateActivitySQL,
		activityID, userID, categoryID, name, kind, scoringMethod, basePoints,
		table.Low, table.Medium, table.Good, table.Zen)
	updated, err := scanActivity(updatedRow)
	if err != nil {
		return nil, mapError(err, "activity", activityID)
	}

	return &updated, nil
}

// Delete removes an activity row. Logged activities and insights referencing
// it must be deleted first in the same transaction; the foreign keys are
// intentionally not ON DELETE CASCADE. Returns domain.ErrNotFound if the
// activity does not exist or belongs to another user, and domain.ErrConflict
// if dependent rows still reference it.
func (r *Repo) Delete(ctx context.Context, userID, activityID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteActivitySQL, activityID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("activity %s: %w", activityID, domain.ErrConflict)
		}
		return mapError(err, "activity", activityID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanActivity scans a single activity row (pgx.Row or pgx.Rows).
func scanActivity(row pgx.Row) (domain.Activity, error) {
	var (
		a             domain.Activity
		kind          string
		scoringMethod string
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := row.Scan(
		&a.ID, &a.UserID, &a.CategoryID, &a.Name, &kind, &scoringMethod, &a.BasePoints,
		&a.FocusTable.Low, &a.FocusTable.Medium, &a.FocusTable.Good, &a.FocusTable.Zen,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Activity{}, err
	}

	a.Kind = domain.ActivityKind(kind)
	a.ScoringMethod = domain.ScoringMethod(scoringMethod)
	a.CreatedAt = createdAt
	a.UpdatedAt = updatedAt

	return a, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

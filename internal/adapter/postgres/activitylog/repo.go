// Package activitylog implements the LoggedActivity repository using
// PostgreSQL. The logged_activities table is an append-only ledger: rows are
// inserted with a pre-computed points_earned and never updated.
package activitylog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

// Repo provides logged-activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new logged-activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const logColumns = `l.id, l.activity_id, l.log_date, l.focus_level, l.points_earned,
	l.start_time, l.end_time, l.notes, l.created_at`

const detailColumns = logColumns + `,
	a.name, a.category_id, c.name, c.color`

const createLogSQL = `
INSERT INTO logged_activities (activity_id, log_date, focus_level, points_earned,
	start_time, end_time, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, activity_id, log_date, focus_level, points_earned,
	start_time, end_time, notes, created_at`

const getLogByIDSQL = `
SELECT ` + detailColumns + `
FROM logged_activities l
JOIN activities a ON a.id = l.activity_id
JOIN categories c ON c.id = a.category_id
WHERE l.id = $1 AND a.user_id = $2`

const deleteLogSQL = `
DELETE FROM logged_activities l
USING activities a
WHERE l.id = $1 AND l.activity_id = a.id AND a.user_id = $2`

const deleteLogsByActivitySQL = `DELETE FROM logged_activities WHERE activity_id = $1`

const countLogsByActivitySQL = `SELECT count(*) FROM logged_activities WHERE activity_id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a logged activity. points_earned must already be computed
// by the caller; it is stored as-is and never recalculated. Returns
// domain.ErrNotFound if the referenced activity does not exist.
func (r *Repo) Create(ctx context.Context, log *domain.LoggedActivity) (*domain.LoggedActivity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createLogSQL,
		log.ActivityID,
		log.Date,
		ptrStringToPgText(log.FocusLevel),
		log.PointsEarned,
		ptrTimeToOfDay(log.StartTime),
		ptrTimeToOfDay(log.EndTime),
		ptrStringToPgText(log.Notes),
	)

	created, err := scanLog(row)
	if err != nil {
		return nil, mapError(err, "logged activity", log.ActivityID)
	}

	return &created, nil
}

// Delete removes a logged activity, enforcing ownership through the parent
// activity's user_id. Returns domain.ErrNotFound if the log does not exist
// or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, logID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteLogSQL, logID, userID)
	if err != nil {
		return mapError(err, "logged activity", logID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("logged activity %s: %w", logID, domain.ErrNotFound)
	}

	return nil
}

// DeleteByActivityID removes all logs of one activity. Used inside the
// activity cascade-delete transaction.
func (r *Repo) DeleteByActivityID(ctx context.Context, activityID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteLogsByActivitySQL, activityID); err != nil {
		return mapError(err, "logged activity", activityID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a logged activity with its activity/category display
// fields, ownership-checked via the parent activity.
func (r *Repo) GetByID(ctx context.Context, userID, logID uuid.UUID) (*domain.LoggedActivityDetail, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getLogByIDSQL, logID, userID)
	d, err := scanDetail(row)
	if err != nil {
		return nil, mapError(err, "logged activity", logID)
	}

	return &d, nil
}

// List returns logged activities for a user, newest first, narrowed by the
// filter. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*domain.LoggedActivityDetail, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	qb := psql.
		Select(
			"l.id", "l.activity_id", "l.log_date", "l.focus_level", "l.points_earned",
			"l.start_time", "l.end_time", "l.notes", "l.created_at",
			"a.name", "a.category_id", "c.name", "c.color",
		).
		From("logged_activities l").
		Join("activities a ON a.id = l.activity_id").
		Join("categories c ON c.id = a.category_id").
		Where(squirrel.Eq{"a.user_id": userID}).
		OrderBy("l.log_date DESC", "l.created_at DESC")

	qb = filter.apply(qb)

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list logs query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	logs := []*domain.LoggedActivityDetail{}
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("list logs: %w", err)
		}
		logs = append(logs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	return logs, nil
}

// ListPointFacts bulk-fetches (category_id, log_date, points_earned)
// projections for a user's logs in one query. The aggregator sums these in
// memory; no GROUP BY happens in the database. From/To bound log_date
// inclusively when non-nil.
func (r *Repo) ListPointFacts(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.PointFact, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	qb := psql.
		Select("a.category_id", "l.log_date", "l.points_earned").
		From("logged_activities l").
		Join("activities a ON a.id = l.activity_id").
		Where(squirrel.Eq{"a.user_id": userID})
	if from != nil {
		qb = qb.Where(squirrel.GtOrEq{"l.log_date": *from})
	}
	if to != nil {
		qb = qb.Where(squirrel.LtOrEq{"l.log_date": *to})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build point facts query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list point facts: %w", err)
	}
	defer rows.Close()

	facts := []domain.PointFact{}
	for rows.Next() {
		var f domain.PointFact
		if err := rows.Scan(&f.CategoryID, &f.Date, &f.Points); err != nil {
			return nil, fmt.Errorf("scan point fact: %w", err)
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list point facts: %w", err)
	}

	return facts, nil
}

// CountByActivityID returns the number of logs referencing an activity.
// Used to refuse a non-cascade activity delete.
func (r *Repo) CountByActivityID(ctx context.Context, activityID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countLogsByActivitySQL, activityID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count logs: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanLog(row pgx.Row) (domain.LoggedActivity, error) {
	var (
		l          domain.LoggedActivity
		focusLevel pgtype.Text
		startTime  pgtype.Time
		endTime    pgtype.Time
		notes      pgtype.Text
	)

	err := row.Scan(&l.ID, &l.ActivityID, &l.Date, &focusLevel, &l.PointsEarned,
		&startTime, &endTime, &notes, &l.CreatedAt)
	if err != nil {
		return domain.LoggedActivity{}, err
	}

	if focusLevel.Valid {
		l.FocusLevel = &focusLevel.String
	}
	l.StartTime = pgTimeToPtr(startTime)
	l.EndTime = pgTimeToPtr(endTime)
	if notes.Valid {
		l.Notes = &notes.String
	}

	return l, nil
}

func scanDetail(row pgx.Row) (domain.LoggedActivityDetail, error) {
	var (
		d          domain.LoggedActivityDetail
		focusLevel pgtype.Text
		startTime  pgtype.Time
		endTime    pgtype.Time
		notes      pgtype.Text
	)

	err := row.Scan(&d.ID, &d.ActivityID, &d.Date, &focusLevel, &d.PointsEarned,
		&startTime, &endTime, &notes, &d.CreatedAt,
		&d.ActivityName, &d.CategoryID, &d.CategoryName, &d.CategoryColor)
	if err != nil {
		return domain.LoggedActivityDetail{}, err
	}

	if focusLevel.Valid {
		d.FocusLevel = &focusLevel.String
	}
	d.StartTime = pgTimeToPtr(startTime)
	d.EndTime = pgTimeToPtr(endTime)
	if notes.Valid {
		d.Notes = &notes.String
	}

	return d, nil
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

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// ptrTimeToOfDay converts an anchored *time.Time into a pgtype.Time
// (microseconds since midnight), nil -> NULL.
func ptrTimeToOfDay(t *time.Time) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	micros := int64(t.Hour())*3600*1e6 + int64(t.Minute())*60*1e6 +
		int64(t.Second())*1e6 + int64(t.Nanosecond()/1000)
	return pgtype.Time{Microseconds: micros, Valid: true}
}

// pgTimeToPtr converts a pgtype.Time back into a *time.Time anchored to
// domain.TimeOfDayReference, NULL -> nil.
func pgTimeToPtr(t pgtype.Time) *time.Time {
	if !t.Valid {
		return nil
	}
	anchored := domain.TimeOfDayReference.Add(time.Duration(t.Microseconds) * time.Microsecond)
	return &anchored
}

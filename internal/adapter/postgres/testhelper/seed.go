package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewUserID returns a fresh user ID. Users are not stored locally; user_id
// columns hold the subject of the caller's access token.
func NewUserID() uuid.UUID {
	return uuid.New()
}

// SeedCategory creates a category for the user and returns it.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Category {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	category := domain.Category{
		UserID: userID,
		Name:   "Category " + suffix,
		Color:  "#3b82f6",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO categories (user_id, name, color)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		category.UserID, category.Name, category.Color,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert category: %v", err)
	}

	return category
}

// SeedBenchmark creates a benchmark threshold in a category.
func SeedBenchmark(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID, pointsRequired int) domain.Benchmark {
	t.Helper()
	ctx := context.Background()

	benchmark := domain.Benchmark{
		CategoryID:     categoryID,
		Name:           "Benchmark " + uniqueSuffix(),
		PointsRequired: pointsRequired,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO benchmarks (category_id, name, points_required)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		benchmark.CategoryID, benchmark.Name, benchmark.PointsRequired,
	).Scan(&benchmark.ID, &benchmark.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBenchmark insert benchmark: %v", err)
	}

	return benchmark
}

// SeedActivity creates an activity with the given kind and scoring method,
// base points 10 and the default focus multipliers.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, userID, categoryID uuid.UUID, kind domain.ActivityKind, method domain.ScoringMethod) domain.Activity {
	t.Helper()
	ctx := context.Background()

	activity := domain.Activity{
		UserID:        userID,
		CategoryID:    categoryID,
		Name:          "Activity " + uniqueSuffix(),
		Kind:          kind,
		ScoringMethod: method,
		BasePoints:    10,
		FocusTable:    domain.DefaultFocusMultipliers,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO activities (user_id, category_id, name, kind, scoring_method, base_points,
			focus_low, focus_medium, focus_good, focus_zen)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		activity.UserID, activity.CategoryID, activity.Name,
		string(activity.Kind), string(activity.ScoringMethod), activity.BasePoints,
		activity.FocusTable.Low, activity.FocusTable.Medium, activity.FocusTable.Good, activity.FocusTable.Zen,
	).Scan(&activity.ID, &activity.CreatedAt, &activity.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity insert activity: %v", err)
	}

	return activity
}

// SeedLoggedActivity appends a log row for the activity on the given day with
// the given points.
func SeedLoggedActivity(t *testing.T, pool *pgxpool.Pool, activityID uuid.UUID, date time.Time, points int) domain.LoggedActivity {
	t.Helper()
	ctx := context.Background()

	focus := string(domain.FocusLevelGood)
	log := domain.LoggedActivity{
		ActivityID:   activityID,
		Date:         date,
		FocusLevel:   &focus,
		PointsEarned: points,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO logged_activities (activity_id, log_date, focus_level, points_earned)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		log.ActivityID, log.Date, log.FocusLevel, log.PointsEarned,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLoggedActivity insert log: %v", err)
	}

	return log
}

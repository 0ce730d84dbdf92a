// Package category implements the Category repository using PostgreSQL.
// It provides CRUD for user-defined categories plus their benchmark
// thresholds (owned 1:N via the benchmarks table).
package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const categoryColumns = `id, user_id, name, color, description, created_at, updated_at`

const getCategoryByIDSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1 AND user_id = $2`

const listCategoriesByUserSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE user_id = $1
ORDER BY name`

const createCategorySQL = `
INSERT INTO categories (user_id, name, color, description)
VALUES ($1, $2, $3, $4)
RETURNING ` + categoryColumns

const updateCategorySQL = `
UPDATE categories
SET name = $3, color = $4, description = $5, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + categoryColumns

const countCategoriesByUserSQL = `SELECT count(*) FROM categories WHERE user_id = $1`

const benchmarkColumns = `id, category_id, name, points_required, created_at`

const listBenchmarksByCategoryIDsSQL = `
SELECT ` + benchmarkColumns + `
FROM benchmarks
WHERE category_id = ANY($1::uuid[])
ORDER BY category_id, points_required`

const createBenchmarkSQL = `
INSERT INTO benchmarks (category_id, name, points_required)
VALUES ($1, $2, $3)
RETURNING ` + benchmarkColumns

const deleteBenchmarkSQL = `DELETE FROM benchmarks WHERE id = $1 AND category_id = $2`

const countBenchmarksByCategorySQL = `SELECT count(*) FROM benchmarks WHERE category_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a category by primary key with user_id filter, including
// its benchmarks. Returns domain.ErrNotFound if the category does not exist
// or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getCategoryByIDSQL, categoryID, userID)
	c, err := scanCategory(row)
	if err != nil {
		return nil, mapError(err, "category", categoryID)
	}

	benchmarks, err := r.ListBenchmarksByCategoryIDs(ctx, []uuid.UUID{c.ID})
	if err != nil {
		return nil, fmt.Errorf("get category benchmarks: %w", err)
	}
	c.Benchmarks = benchmarks[c.ID]

	return &c, nil
}

// List returns all categories for a user ordered by name, each with its
// benchmarks attached. Returns an empty slice (not nil) when the user has
// no categories.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listCategoriesByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	ids := []uuid.UUID{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		categories = append(categories, &c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if len(ids) == 0 {
		return categories, nil
	}

	benchmarks, err := r.ListBenchmarksByCategoryIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list category benchmarks: %w", err)
	}
	for _, c := range categories {
		c.Benchmarks = benchmarks[c.ID]
	}

	return categories, nil
}

// Count returns the number of categories for a user.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countCategoriesByUserSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}

	return count, nil
}

// ListBenchmarksByCategoryIDs returns benchmarks for multiple categories at
// once, grouped by category ID (single bulk query for the aggregator and
// list reads). Categories without benchmarks are absent from the map.
func (r *Repo) ListBenchmarksByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) (map[uuid.UUID][]domain.Benchmark, error) {
	if len(categoryIDs) == 0 {
		return map[uuid.UUID][]domain.Benchmark{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listBenchmarksByCategoryIDsSQL, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("list benchmarks by category_ids: %w", err)
	}
	defer rows.Close()

	result := map[uuid.UUID][]domain.Benchmark{}
	for rows.Next() {
		var b domain.Benchmark
		if err := rows.Scan(&b.ID, &b.CategoryID, &b.Name, &b.PointsRequired, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan benchmark: %w", err)
		}
		result[b.CategoryID] = append(result[b.CategoryID], b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list benchmarks by category_ids: %w", err)
	}

	return result, nil
}

// CountBenchmarks returns the number of benchmarks in a category.
func (r *Repo) CountBenchmarks(ctx context.Context, categoryID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countBenchmarksByCategorySQL, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count benchmarks: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new category and returns the persisted domain.Category.
// Returns domain.ErrAlreadyExists if the user already has a category with
// the same name.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, category *domain.Category) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createCategorySQL,
		userID, category.Name, category.Color, ptrStringToPgText(category.Description))
	c, err := scanCategory(row)
	if err != nil {
		return nil, mapError(err, "category", uuid.Nil)
	}

	return &c, nil
}

// Update modifies a category's name, color and/or description using partial
// update params. Returns domain.ErrNotFound if the category does not exist
// or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, categoryID uuid.UUID, params domain.CategoryUpdateParams) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	// Read current values to apply the partial update against.
	row := querier.QueryRow(ctx, getCategoryByIDSQL, categoryID, userID)
	current, err := scanCategory(row)
	if err != nil {
		return nil, mapError(err, "category", categoryID)
	}

	name := current.Name
	if params.Name != nil {
		name = *params.Name
	}

	color := current.Color
	if params.Color != nil {
		color = *params.Color
	}

	description := ptrStringToPgText(current.Description)
	if params.Description != nil {
		if *params.Description == "" {
			// ptr("") means clear (set NULL in DB).
			description = pgtype.Text{}
		} else {
			description = pgtype.Text{String: *params.Description, Valid: true}
		}
	}

	updatedRow := querier.QueryRow(ctx, updateCategorySQL, categoryID, userID, name, color, description)
	updated, err := scanCategory(updatedRow)
	if err != nil {
		return nil, mapError(err, "category", categoryID)
	}

	benchmarks, err := r.ListBenchmarksByCategoryIDs(ctx, []uuid.UUID{updated.ID})
	if err != nil {
		return nil, fmt.Errorf("get category benchmarks: %w", err)
	}
	updated.Benchmarks = benchmarks[updated.ID]

	return &updated, nil
}

// AddBenchmark inserts a benchmark for a category. Ownership of the category
// must be checked by the caller. Returns domain.ErrAlreadyExists for a
// duplicate benchmark name within the category.
func (r *Repo) AddBenchmark(ctx context.Context, categoryID uuid.UUID, benchmark *domain.Benchmark) (*domain.Benchmark, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createBenchmarkSQL, categoryID, benchmark.Name, benchmark.PointsRequired)

	var b domain.Benchmark
	if err := row.Scan(&b.ID, &b.CategoryID, &b.Name, &b.PointsRequired, &b.CreatedAt); err != nil {
		return nil, mapError(err, "benchmark", categoryID)
	}

	return &b, nil
}

// DeleteBenchmark removes a benchmark from a category.
// Returns domain.ErrNotFound if no such benchmark exists in the category.
func (r *Repo) DeleteBenchmark(ctx context.Context, categoryID, benchmarkID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteBenchmarkSQL, benchmarkID, categoryID)
	if err != nil {
		return mapError(err, "benchmark", benchmarkID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("benchmark %s: %w", benchmarkID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanCategory scans a single category row (pgx.Row or pgx.Rows).
func scanCategory(row pgx.Row) (domain.Category, error) {
	var (
		c           domain.Category
		description pgtype.Text
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &description, &createdAt, &updatedAt); err != nil {
		return domain.Category{}, err
	}

	c.CreatedAt = createdAt
	c.UpdatedAt = updatedAt
	if description.Valid {
		c.Description = &description.String
	}

	return c, nil
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

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a user-owned grouping label for activities, with a display
// color, optional description, and a set of benchmark thresholds.
// Name is unique per user.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Color       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Benchmarks []Benchmark
}

// Benchmark is a named point threshold within a category representing an
// achievement goal.
type Benchmark struct {
	ID             uuid.UUID
	CategoryID     uuid.UUID
	Name           string
	PointsRequired int
	CreatedAt      time.Time
}

// CategoryUpdateParams describes a partial category update.
// nil fields are left unchanged; a pointer to "" clears Description.
type CategoryUpdateParams struct {
	Name        *string
	Color       *string
	Description *string
}

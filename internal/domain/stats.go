package domain

import (
	"time"

	"github.com/google/uuid"
)

// PointFact is a minimal projection of a logged activity used by the
// aggregator: one completion's category, calendar day and earned points.
// Aggregation itself happens in memory over these facts.
type PointFact struct {
	CategoryID uuid.UUID
	Date       time.Time
	Points     int
}

// BenchmarkProgress pairs a category benchmark with whether the aggregated
// total has reached its threshold.
type BenchmarkProgress struct {
	ID             uuid.UUID
	Name           string
	PointsRequired int
	Achieved       bool
}

// CategoryTotal is the aggregated point sum for one category over a
// requested range, with benchmark progress for display.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Color        string
	TotalPoints  int64
	LogCount     int64
	Benchmarks   []BenchmarkProgress
}

// CategoryAggregate is the per-category report plus the grand total across
// all of the user's categories.
type CategoryAggregate struct {
	Categories []CategoryTotal
	GrandTotal int64
}

// PeriodTotal is the aggregated point sum for one time bucket
// (day, ISO week or month) within a requested range.
type PeriodTotal struct {
	// PeriodStart is the first day of the bucket (midnight UTC).
	PeriodStart time.Time
	TotalPoints int64
	LogCount    int64
}

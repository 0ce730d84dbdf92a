package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a user-owned template describing a loggable task.
// Name is unique within (user, category).
type Activity struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	Name          string
	Kind          ActivityKind
	ScoringMethod ScoringMethod

	// BasePoints is meaningful only when Kind is fixed. It is the quantity
	// scaled under multiplier scoring, and the fallback point value under
	// fixed_points scoring when the logged focus label is unrecognized.
	BasePoints int

	FocusTable FocusTable

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActivityUpdateParams describes a partial activity update.
// nil fields are left unchanged.
type ActivityUpdateParams struct {
	Name          *string
	CategoryID    *uuid.UUID
	Kind          *ActivityKind
	ScoringMethod *ScoringMethod
	BasePoints    *int
	FocusTable    *FocusTable
}

// ActivityInsight is a derived per-activity snapshot recomputed out-of-band
// (cmd/refresh-insights). It is a cache, never a source of truth, and is
// cascade-deleted together with its activity.
type ActivityInsight struct {
	ActivityID   uuid.UUID
	TotalPoints  int64
	LogCount     int
	LastLoggedAt *time.Time
	RefreshedAt  time.Time
}

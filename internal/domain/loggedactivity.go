package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeOfDayReference is the fixed date that stored start/end times are
// anchored to. Logged times carry time-of-day only; the calendar day lives
// in LoggedActivity.Date.
var TimeOfDayReference = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// LoggedActivity is an immutable completion fact: "the user completed
// activity X on date D with focus level F, earning P points."
// PointsEarned is computed once at creation and never recalculated, even if
// the parent activity's scoring rules change later (append-only ledger).
type LoggedActivity struct {
	ID         uuid.UUID
	ActivityID uuid.UUID

	// Date is the calendar day of the completion (midnight UTC).
	Date time.Time

	// FocusLevel is the normalized label as submitted. It is stored
	// independently of the activity's focus table so the label stays
	// interpretable after table changes, and it is not required to be
	// canonical; unrecognized labels were scored with the neutral fallback.
	FocusLevel *string

	PointsEarned int

	// StartTime/EndTime carry time-of-day only, anchored to
	// TimeOfDayReference.
	StartTime *time.Time
	EndTime   *time.Time

	Notes     *string
	CreatedAt time.Time
}

// LoggedActivityDetail is a logged activity enriched with parent activity
// and category display information.
type LoggedActivityDetail struct {
	LoggedActivity

	ActivityName  string
	CategoryID    uuid.UUID
	CategoryName  string
	CategoryColor string
}

package activitylog

import (
	"time"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

// LogActivityInput holds the parameters for recording a completion.
type LogActivityInput struct {
	ActivityID uuid.UUID

	// Date is the calendar day of the completion.
	Date time.Time

	// FocusLevel arrives as decoded JSON and may be a string, a number,
	// a bool or absent. It is normalized to a string label; unrecognized
	// labels are stored as-is and scored with the neutral fallback.
	FocusLevel any

	// StartTime/EndTime are "HH:MM" clock strings. Either may be given
	// alone; duration is only defined when both are present.
	StartTime *string
	EndTime   *string

	Notes *string
}

// Validate checks the structural fields. Notes length is checked by the
// service against its configured limit.
func (i LogActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListLogsInput narrows a log listing.
type ListLogsInput struct {
	CategoryID *uuid.UUID
	ActivityID *uuid.UUID
	From       *time.Time
	To         *time.Time
	FocusLevel *string
	Limit      int
	Offset     int
}

// Validate checks range and pagination sanity.
func (i ListLogsInput) Validate() error {
	var errs []domain.FieldError

	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Limit > 500 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 500"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

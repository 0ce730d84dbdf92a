package activitylog

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// ListFilter narrows a logged-activity list query. Zero-value fields are
// ignored; nil pointers mean "no constraint".
type ListFilter struct {
	CategoryID *uuid.UUID
	ActivityID *uuid.UUID

	// From/To bound log_date inclusively (calendar days, midnight UTC).
	From *time.Time
	To   *time.Time

	// FocusLevel matches the stored label exactly, canonical or not.
	FocusLevel *string

	Limit  int
	Offset int
}

// psql is the shared builder with PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// apply adds the filter's predicates and pagination to a select builder.
func (f ListFilter) apply(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
	if f.CategoryID != nil {
		qb = qb.Where(squirrel.Eq{"a.category_id": *f.CategoryID})
	}
	if f.ActivityID != nil {
		qb = qb.Where(squirrel.Eq{"l.activity_id": *f.ActivityID})
	}
	if f.From != nil {
		qb = qb.Where(squirrel.GtOrEq{"l.log_date": *f.From})
	}
	if f.To != nil {
		qb = qb.Where(squirrel.LtOrEq{"l.log_date": *f.To})
	}
	if f.FocusLevel != nil {
		qb = qb.Where(squirrel.Eq{"l.focus_level": *f.FocusLevel})
	}
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		qb = qb.Offset(uint64(f.Offset))
	}
	return qb
}

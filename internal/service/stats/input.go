package stats

import (
	"time"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

// AggregateByCategoryInput carries an optional inclusive date range.
// An empty range means all time.
type AggregateByCategoryInput struct {
	From *time.Time
	To   *time.Time
}

// Validate checks all fields and collects all errors.
func (i AggregateByCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AggregateByPeriodInput carries the bucket granularity and an optional
// inclusive date range.
type AggregateByPeriodInput struct {
	Bucket domain.PeriodBucket
	From   *time.Time
	To     *time.Time
}

// Validate checks all fields and collects all errors.
func (i AggregateByPeriodInput) Validate() error {
	var errs []domain.FieldError

	if !i.Bucket.IsValid() {
		errs = append(errs, domain.FieldError{Field: "bucket", Message: "must be one of: day, week, month"})
	}

	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

package activity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

// CreateActivityInput holds the parameters for creating an activity.
type CreateActivityInput struct {
	CategoryID    uuid.UUID
	Name          string
	Kind          domain.ActivityKind
	ScoringMethod domain.ScoringMethod
	BasePoints    int

	// FocusTable is optional; when nil the default multipliers apply.
	FocusTable *domain.FocusTable
}

// Validate checks all fields and collects all errors.
func (i CreateActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be fixed or time_based"})
	}
	if !i.ScoringMethod.IsValid() {
		errs = append(errs, domain.FieldError{Field: "scoring_method", Message: "must be multiplier or fixed_points"})
	}
	if i.BasePoints < 0 {
		errs = append(errs, domain.FieldError{Field: "base_points", Message: "must not be negative"})
	}
	if i.FocusTable != nil && !i.FocusTable.IsComplete() {
		errs = append(errs, domain.FieldError{Field: "focus_table", Message: "all four levels must have positive values"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateActivityInput holds the parameters for updating an activity.
// Kind and scoring method are immutable: recorded points were computed under
// them and reinterpreting the focus table would silently change meaning.
type UpdateActivityInput struct {
	ActivityID uuid.UUID
	CategoryID *uuid.UUID
	Name       *string
	BasePoints *int
	FocusTable *domain.FocusTable
}

// Validate checks all fields and collects all errors.
func (i UpdateActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}
	if i.CategoryID == nil && i.Name == nil && i.BasePoints == nil && i.FocusTable == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.CategoryID != nil && *i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "must not be empty"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.BasePoints != nil && *i.BasePoints < 0 {
		errs = append(errs, domain.FieldError{Field: "base_points", Message: "must not be negative"})
	}
	if i.FocusTable != nil && !i.FocusTable.IsComplete() {
		errs = append(errs, domain.FieldError{Field: "focus_table", Message: "all four levels must have positive values"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteActivityInput holds the parameters for deleting an activity.
type DeleteActivityInput struct {
	ActivityID uuid.UUID

	// Cascade removes the activity's logs and insight snapshot with it.
	// Without it a delete is refused while history exists.
	Cascade bool
}

// Validate checks all fields.
func (i DeleteActivityInput) Validate() error {
	if i.ActivityID == uuid.Nil {
		return domain.NewValidationError("activity_id", "required")
	}
	return nil
}

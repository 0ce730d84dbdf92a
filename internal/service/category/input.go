package category

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name        string
	Color       *string // nil = use the configured default
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if i.Color != nil && !colorRe.MatchString(*i.Color) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a #RRGGBB hex color"})
	}

	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCategoryInput holds the parameters for updating a category.
type UpdateCategoryInput struct {
	CategoryID  uuid.UUID
	Name        *string
	Color       *string
	Description *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.Name == nil && i.Color == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
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
	if i.Color != nil && !colorRe.MatchString(*i.Color) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a #RRGGBB hex color"})
	}
	if i.Description != nil && len(*i.Description) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddBenchmarkInput holds the parameters for adding a benchmark threshold.
type AddBenchmarkInput struct {
	CategoryID     uuid.UUID
	Name           string
	PointsRequired int
}

// Validate checks all fields and collects all errors.
func (i AddBenchmarkInput) Validate() error {
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
	if i.PointsRequired <= 0 {
		errs = append(errs, domain.FieldError{Field: "points_required", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemoveBenchmarkInput holds the parameters for removing a benchmark.
type RemoveBenchmarkInput struct {
	CategoryID  uuid.UUID
	BenchmarkID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemoveBenchmarkInput) Validate() error {
	var errs []domain.FieldError
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.BenchmarkID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "benchmark_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

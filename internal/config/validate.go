package config

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Tracker.validate(); err != nil {
		return fmt.Errorf("tracker: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (t TrackerConfig) validate() error {
	if t.MaxCategoriesPerUser <= 0 {
		return fmt.Errorf("max_categories_per_user must be positive (got %d)", t.MaxCategoriesPerUser)
	}
	if t.MaxActivitiesPerCategory <= 0 {
		return fmt.Errorf("max_activities_per_category must be positive (got %d)", t.MaxActivitiesPerCategory)
	}
	if t.MaxBenchmarksPerCategory <= 0 {
		return fmt.Errorf("max_benchmarks_per_category must be positive (got %d)", t.MaxBenchmarksPerCategory)
	}
	if t.MaxNotesLength <= 0 {
		return fmt.Errorf("max_notes_length must be positive (got %d)", t.MaxNotesLength)
	}
	if !hexColorRe.MatchString(t.DefaultCategoryColor) {
		return fmt.Errorf("default_category_color must be #rrggbb (got %q)", t.DefaultCategoryColor)
	}
	return nil
}

package activitylog

import (
	"math"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

// CalculatePoints computes the points a completion earns from the activity's
// scoring configuration, the submitted focus label and an optional duration
// in minutes.
//
// The base quantity depends on the kind: fixed activities start from
// BasePoints, time-based activities from the elapsed minutes. A time-based
// completion without a positive duration earns nothing.
//
// Under the multiplier method the focus table value scales the base
// quantity, with an unrecognized or absent label resolving to the neutral
// factor 1.0, and the result rounded half away from zero. Under the
// fixed_points method the table value IS the score, truncated to an int;
// here the two kinds fall back differently on an unrecognized label (fixed
// returns BasePoints, time-based returns the truncated neutral factor).
// Existing logs depend on that asymmetry, so it stays.
func CalculatePoints(activity *domain.Activity, focusLabel *string, durationMinutes *int) int {
	switch activity.Kind {
	case domain.ActivityKindTimeBased:
		if durationMinutes == nil || *durationMinutes <= 0 {
			return 0
		}

		if activity.ScoringMethod == domain.ScoringMethodFixedPoints {
			if level, ok := domain.CanonicalFocusLevel(focusLabel); ok {
				return int(activity.FocusTable.Value(level))
			}
			return int(domain.NeutralFocusValue)
		}

		factor := domain.ResolveFocusValue(activity.FocusTable, focusLabel)
		return int(math.Round(float64(*durationMinutes) * factor))

	default: // fixed
		if activity.ScoringMethod == domain.ScoringMethodFixedPoints {
			if level, ok := domain.CanonicalFocusLevel(focusLabel); ok {
				return int(activity.FocusTable.Value(level))
			}
			return activity.BasePoints
		}

		factor := domain.ResolveFocusValue(activity.FocusTable, focusLabel)
		return int(math.Round(float64(activity.BasePoints) * factor))
	}
}

package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// NeutralFocusValue is the fallback factor used when a focus label is
// unrecognized or its table entry is absent. Scoring "as if medium" is a
// deliberate product decision: a bad label must never abort logging.
const NeutralFocusValue = 1.0

// FocusTable maps each canonical focus level to a positive numeric value.
// Interpretation depends on the activity's scoring method: a factor under
// multiplier scoring, an absolute point value under fixed_points scoring.
type FocusTable struct {
	Low    float64
	Medium float64
	Good   float64
	Zen    float64
}

// DefaultFocusMultipliers is the table applied when an activity is created
// without explicit focus values.
var DefaultFocusMultipliers = FocusTable{
	Low:    0.5,
	Medium: 1.0,
	Good:   1.5,
	Zen:    2.0,
}

// Value returns the table entry for a canonical level, or 0 for an
// unknown level. A zero entry is treated as absent by ResolveFocusValue.
func (t FocusTable) Value(level FocusLevel) float64 {
	switch level {
	case FocusLevelLow:
		return t.Low
	case FocusLevelMedium:
		return t.Medium
	case FocusLevelGood:
		return t.Good
	case FocusLevelZen:
		return t.Zen
	}
	return 0
}

// IsComplete reports whether every level has a positive value.
func (t FocusTable) IsComplete() bool {
	for _, level := range FocusLevels() {
		if t.Value(level) <= 0 {
			return false
		}
	}
	return true
}

// CanonicalFocusLevel maps a normalized label to its canonical FocusLevel.
// Returns false for nil labels and anything outside the closed vocabulary.
func CanonicalFocusLevel(label *string) (FocusLevel, bool) {
	if label == nil {
		return "", false
	}
	level := FocusLevel(*label)
	if !level.IsValid() {
		return "", false
	}
	return level, true
}

// ResolveFocusValue returns the table value for a recognized label with a
// present (positive) table entry, and NeutralFocusValue otherwise.
// It never fails: an unrecognized label degrades to "no multiplier" rather
// than aborting the logging operation.
func ResolveFocusValue(table FocusTable, label *string) float64 {
	level, ok := CanonicalFocusLevel(label)
	if !ok {
		return NeutralFocusValue
	}
	v := table.Value(level)
	if v <= 0 {
		return NeutralFocusValue
	}
	return v
}

// NormalizeFocusLabel converts the raw logging input into the string that is
// both stored on the record and looked up in the focus table. Callers
// occasionally send non-string values (a timestamp meant as metadata, a bare
// number); those are stringified instead of rejected, and later resolve to
// the neutral default. nil passes through as nil.
func NormalizeFocusLabel(raw any) *string {
	if raw == nil {
		return nil
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	case float64:
		// JSON numbers decode as float64; keep integral values exact.
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(v)
	default:
		s = fmt.Sprint(v)
	}
	return &s
}

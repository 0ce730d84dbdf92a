package domain

// ActivityKind determines the base quantity an activity's score is built from.
type ActivityKind string

const (
	// ActivityKindFixed awards points per completion, independent of duration.
	ActivityKindFixed ActivityKind = "fixed"
	// ActivityKindTimeBased awards points from the elapsed minutes between
	// a start and end time.
	ActivityKindTimeBased ActivityKind = "time_based"
)

func (k ActivityKind) String() string { return string(k) }

func (k ActivityKind) IsValid() bool {
	switch k {
	case ActivityKindFixed, ActivityKindTimeBased:
		return true
	}
	return false
}

// ScoringMethod determines how the focus table is interpreted.
type ScoringMethod string

const (
	// ScoringMethodMultiplier treats table values as factors applied to the
	// base quantity (base points or minutes).
	ScoringMethodMultiplier ScoringMethod = "multiplier"
	// ScoringMethodFixedPoints treats table values as absolute point values,
	// ignoring the base quantity.
	ScoringMethodFixedPoints ScoringMethod = "fixed_points"
)

func (m ScoringMethod) String() string { return string(m) }

func (m ScoringMethod) IsValid() bool {
	switch m {
	case ScoringMethodMultiplier, ScoringMethodFixedPoints:
		return true
	}
	return false
}

// FocusLevel is the user's qualitative self-rating of attentiveness
// during an activity. The vocabulary is closed; ordering expresses
// increasing engagement.
type FocusLevel string

const (
	FocusLevelLow    FocusLevel = "low"
	FocusLevelMedium FocusLevel = "medium"
	FocusLevelGood   FocusLevel = "good"
	FocusLevelZen    FocusLevel = "zen"
)

func (l FocusLevel) String() string { return string(l) }

func (l FocusLevel) IsValid() bool {
	switch l {
	case FocusLevelLow, FocusLevelMedium, FocusLevelGood, FocusLevelZen:
		return true
	}
	return false
}

// FocusLevels returns the canonical levels in increasing engagement order.
func FocusLevels() []FocusLevel {
	return []FocusLevel{FocusLevelLow, FocusLevelMedium, FocusLevelGood, FocusLevelZen}
}

// PeriodBucket is the granularity of a time-window aggregation.
type PeriodBucket string

const (
	PeriodBucketDay   PeriodBucket = "day"
	PeriodBucketWeek  PeriodBucket = "week"
	PeriodBucketMonth PeriodBucket = "month"
)

func (b PeriodBucket) String() string { return string(b) }

func (b PeriodBucket) IsValid() bool {
	switch b {
	case PeriodBucketDay, PeriodBucketWeek, PeriodBucketMonth:
		return true
	}
	return false
}

package activitylog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

// ParseClock parses a "HH:MM" time-of-day string into a time.Time anchored
// to domain.TimeOfDayReference. Hours run 00-23, minutes 00-59.
func ParseClock(s string) (time.Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid time %q: want HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid time %q: hour out of range", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid time %q: minute out of range", s)
	}

	return domain.TimeOfDayReference.Add(
		time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute,
	), nil
}

// MinutesBetween returns the minutes from start to end on the same calendar
// day, rounded to the nearest minute. Spans are not wrapped across midnight:
// an end at or before the start yields a non-positive result, which the
// point calculator scores as zero.
func MinutesBetween(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

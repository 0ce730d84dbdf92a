package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// AggregateByPeriod sums earned points per time bucket over the given range.
// Buckets with no activity are omitted. Results are sorted by period start,
// oldest first.
func (s *Service) AggregateByPeriod(ctx context.Context, input AggregateByPeriodInput) ([]domain.PeriodTotal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	facts, err := s.logs.ListPointFacts(ctx, userID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("list point facts: %w", err)
	}

	buckets := make(map[time.Time]*domain.PeriodTotal)
	for _, f := range facts {
		start := bucketStart(f.Date, input.Bucket)
		b, ok := buckets[start]
		if !ok {
			b = &domain.PeriodTotal{PeriodStart: start}
			buckets[start] = b
		}
		b.TotalPoints += int64(f.Points)
		b.LogCount++
	}

	totals := make([]domain.PeriodTotal, 0, len(buckets))
	for _, b := range buckets {
		totals = append(totals, *b)
	}
	sort.Slice(totals, func(a, b int) bool {
		return totals[a].PeriodStart.Before(totals[b].PeriodStart)
	})

	return totals, nil
}

// bucketStart truncates a calendar day to the start of its bucket: the day
// itself, the Monday of its ISO week, or the first of its month. All in UTC.
func bucketStart(date time.Time, bucket domain.PeriodBucket) time.Time {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	switch bucket {
	case domain.PeriodBucketWeek:
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		return day.AddDate(0, 0, -offset)
	case domain.PeriodBucketMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

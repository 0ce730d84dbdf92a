package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// AggregateByCategory sums earned points per category over the given range.
// Every category of the user appears in the result, including those with no
// logged activity, so progress bars can render zero rows. The order follows
// the category listing. Benchmarks are evaluated against the summed total.
func (s *Service) AggregateByCategory(ctx context.Context, input AggregateByCategoryInput) (*domain.CategoryAggregate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	facts, err := s.logs.ListPointFacts(ctx, userID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("list point facts: %w", err)
	}

	totals := make([]domain.CategoryTotal, 0, len(categories))
	byCategory := make(map[uuid.UUID]int, len(categories))
	for i, c := range categories {
		byCategory[c.ID] = i
		progress := make([]domain.BenchmarkProgress, 0, len(c.Benchmarks))
		for _, b := range c.Benchmarks {
			progress = append(progress, domain.BenchmarkProgress{
				ID:             b.ID,
				Name:           b.Name,
				PointsRequired: b.PointsRequired,
			})
		}
		totals = append(totals, domain.CategoryTotal{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			Color:        c.Color,
			Benchmarks:   progress,
		})
	}

	for _, f := range facts {
		i, ok := byCategory[f.CategoryID]
		if !ok {
			// Facts race a concurrent category delete; skip orphans.
			continue
		}
		totals[i].TotalPoints += int64(f.Points)
		totals[i].LogCount++
	}

	var grand int64
	for i := range totals {
		grand += totals[i].TotalPoints
		for j := range totals[i].Benchmarks {
			totals[i].Benchmarks[j].Achieved = totals[i].TotalPoints >= int64(totals[i].Benchmarks[j].PointsRequired)
		}
	}

	return &domain.CategoryAggregate{Categories: totals, GrandTotal: grand}, nil
}

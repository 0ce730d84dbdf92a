package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// AddBenchmark adds a named point threshold to one of the user's categories.
func (s *Service) AddBenchmark(ctx context.Context, input AddBenchmarkInput) (*domain.Benchmark, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership check: GetByID scopes by user_id.
	if _, err := s.categories.GetByID(ctx, userID, input.CategoryID); err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	count, err := s.categories.CountBenchmarks(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("count benchmarks: %w", err)
	}
	if count >= s.cfg.MaxBenchmarksPerCategory {
		return nil, domain.NewValidationError("benchmarks", fmt.Sprintf("limit reached (max %d)", s.cfg.MaxBenchmarksPerCategory))
	}

	created, err := s.categories.AddBenchmark(ctx, input.CategoryID, &domain.Benchmark{
		Name:           strings.TrimSpace(input.Name),
		PointsRequired: input.PointsRequired,
	})
	if err != nil {
		return nil, fmt.Errorf("add benchmark: %w", err)
	}

	s.log.InfoContext(ctx, "benchmark added",
		slog.String("user_id", userID.String()),
		slog.String("category_id", input.CategoryID.String()),
		slog.String("benchmark_id", created.ID.String()),
		slog.Int("points_required", created.PointsRequired),
	)

	return created, nil
}

package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// RemoveBenchmark deletes a benchmark from one of the user's categories.
func (s *Service) RemoveBenchmark(ctx context.Context, input RemoveBenchmarkInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.categories.GetByID(ctx, userID, input.CategoryID); err != nil {
		return fmt.Errorf("get category: %w", err)
	}

	if err := s.categories.DeleteBenchmark(ctx, input.CategoryID, input.BenchmarkID); err != nil {
		return fmt.Errorf("delete benchmark: %w", err)
	}

	s.log.InfoContext(ctx, "benchmark removed",
		slog.String("user_id", userID.String()),
		slog.String("category_id", input.CategoryID.String()),
		slog.String("benchmark_id", input.BenchmarkID.String()),
	)

	return nil
}

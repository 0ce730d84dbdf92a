// Package stats aggregates earned points. Totals are always recomputed from
// the log ledger: the repository returns raw (category, day, points) facts
// in one bulk query and the sums happen here, in memory.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

//go:generate moq -out mock_repos_test.go . categoryRepo:categoryRepoMock logRepo:logRepoMock

type categoryRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
}

type logRepo interface {
	ListPointFacts(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.PointFact, error)
}

// Service provides point aggregation operations.
type Service struct {
	categories categoryRepo
	logs       logRepo
	log        *slog.Logger
}

// NewService creates a new Stats service.
func NewService(log *slog.Logger, categories categoryRepo, logs logRepo) *Service {
	return &Service{
		categories: categories,
		logs:       logs,
		log:        log.With("service", "stats"),
	}
}

// Package category provides category and benchmark management operations.
package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

//go:generate moq -out mock_repo_test.go . categoryRepo:categoryRepoMock

type categoryRepo interface {
	Create(ctx context.Context, userID uuid.UUID, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	Update(ctx context.Context, userID, categoryID uuid.UUID, params domain.CategoryUpdateParams) (*domain.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)

	AddBenchmark(ctx context.Context, categoryID uuid.UUID, benchmark *domain.Benchmark) (*domain.Benchmark, error)
	DeleteBenchmark(ctx context.Context, categoryID, benchmarkID uuid.UUID) error
	CountBenchmarks(ctx context.Context, categoryID uuid.UUID) (int, error)
}

// Config holds per-user limits and defaults for category management.
type Config struct {
	MaxPerUser               int
	MaxBenchmarksPerCategory int
	DefaultColor             string
}

// Service provides category management operations.
type Service struct {
	categories categoryRepo
	cfg        Config
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(log *slog.Logger, categories categoryRepo, cfg Config) *Service {
	return &Service{
		categories: categories,
		cfg:        cfg,
		log:        log.With("service", "category"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

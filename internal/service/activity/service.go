// Package activity provides activity management operations, including the
// transactional cascade delete that removes an activity together with its
// log history and insight snapshot.
package activity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

//go:generate moq -out mock_repos_test.go . activityRepo:activityRepoMock categoryRepo:categoryRepoMock logRepo:logRepoMock insightRepo:insightRepoMock txManager:txManagerMock

type activityRepo interface {
	Create(ctx context.Context, userID uuid.UUID, activity *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, userID, activityID uuid.UUID) (*domain.Activity, error)
	Update(ctx context.Context, userID, activityID uuid.UUID, params domain.ActivityUpdateParams) (*domain.Activity, error)
	Delete(ctx context.Context, userID, activityID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID) ([]*domain.Activity, error)
	CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
}

type logRepo interface {
	CountByActivityID(ctx context.Context, activityID uuid.UUID) (int, error)
	DeleteByActivityID(ctx context.Context, activityID uuid.UUID) error
}

type insightRepo interface {
	GetByActivityID(ctx context.Context, activityID uuid.UUID) (*domain.ActivityInsight, error)
	DeleteByActivityID(ctx context.Context, activityID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds per-category limits for activity management.
type Config struct {
	MaxPerCategory int
}

// Service provides activity management operations.
type Service struct {
	activities activityRepo
	categories categoryRepo
	logs       logRepo
	insights   insightRepo
	tx         txManager
	cfg        Config
	log        *slog.Logger
}

// NewService creates a new Activity service.
func NewService(
	log *slog.Logger,
	activities activityRepo,
	categories categoryRepo,
	logs logRepo,
	insights insightRepo,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		activities: activities,
		categories: categories,
		logs:       logs,
		insights:   insights,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "activity"),
	}
}

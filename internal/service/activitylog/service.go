// Package activitylog records activity completions. A log row is an
// append-only fact: points are computed once from the activity's scoring
// configuration at log time and stored, so later rule changes never rewrite
// history.
package activitylog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	activitylogrepo "github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres/activitylog"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
)

//go:generate moq -out mock_repos_test.go . logRepo:logRepoMock activityRepo:activityRepoMock categoryRepo:categoryRepoMock

type logRepo interface {
	Create(ctx context.Context, log *domain.LoggedActivity) (*domain.LoggedActivity, error)
	GetByID(ctx context.Context, userID, logID uuid.UUID) (*domain.LoggedActivityDetail, error)
	List(ctx context.Context, userID uuid.UUID, filter activitylogrepo.ListFilter) ([]*domain.LoggedActivityDetail, error)
	Delete(ctx context.Context, userID, logID uuid.UUID) error
}

type activityRepo interface {
	GetByID(ctx context.Context, userID, activityID uuid.UUID) (*domain.Activity, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
}

// Config holds limits for logged activities.
type Config struct {
	MaxNotesLength int
}

// Service provides logged-activity operations.
type Service struct {
	logs       logRepo
	activities activityRepo
	categories categoryRepo
	cfg        Config
	log        *slog.Logger
}

// NewService creates a new LoggedActivity service.
func NewService(log *slog.Logger, logs logRepo, activities activityRepo, categories categoryRepo, cfg Config) *Service {
	return &Service{
		logs:       logs,
		activities: activities,
		categories: categories,
		cfg:        cfg,
		log:        log.With("service", "activitylog"),
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

package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// CreateActivity creates a new activity in one of the user's categories.
func (s *Service) CreateActivity(ctx context.Context, input CreateActivityInput) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.categories.GetByID(ctx, userID, input.CategoryID); err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	count, err := s.activities.CountByCategory(ctx, userID, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("count activities: %w", err)
	}
	if count >= s.cfg.MaxPerCategory {
		return nil, domain.NewValidationError("activities", fmt.Sprintf("limit reached (max %d per category)", s.cfg.MaxPerCategory))
	}

	table := domain.DefaultFocusMultipliers
	if input.FocusTable != nil {
		table = *input.FocusTable
	}

	created, err := s.activities.Create(ctx, userID, &domain.Activity{
		CategoryID:    input.CategoryID,
		Name:          strings.TrimSpace(input.Name),
		Kind:          input.Kind,
		ScoringMethod: input.ScoringMethod,
		BasePoints:    input.BasePoints,
		FocusTable:    table,
	})
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity created",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", created.ID.String()),
		slog.String("kind", created.Kind.String()),
		slog.String("scoring_method", created.ScoringMethod.String()),
	)

	return created, nil
}

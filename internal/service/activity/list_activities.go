package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// ListActivities returns the user's activities, optionally narrowed to one
// category. A foreign category reads as not found.
func (s *Service) ListActivities(ctx context.Context, categoryID *uuid.UUID) ([]*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if categoryID != nil {
		if _, err := s.categories.GetByID(ctx, userID, *categoryID); err != nil {
			return nil, fmt.Errorf("get category: %w", err)
		}
	}

	activities, err := s.activities.List(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return activities, nil
}

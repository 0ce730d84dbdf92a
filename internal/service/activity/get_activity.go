package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// ActivityWithInsight pairs an activity with its latest snapshot, when one
// has been computed.
type ActivityWithInsight struct {
	Activity *domain.Activity
	Insight  *domain.ActivityInsight
}

// GetActivity returns one of the user's activities together with its insight
// snapshot. A missing snapshot is not an error; Insight is nil until the
// refresher has run.
func (s *Service) GetActivity(ctx context.Context, activityID uuid.UUID) (*ActivityWithInsight, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if activityID == uuid.Nil {
		return nil, domain.NewValidationError("activity_id", "required")
	}

	activity, err := s.activities.GetByID(ctx, userID, activityID)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	insight, err := s.insights.GetByActivityID(ctx, activityID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get insight: %w", err)
	}

	return &ActivityWithInsight{Activity: activity, Insight: insight}, nil
}

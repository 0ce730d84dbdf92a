package activitylog

import (
	"context"
	"fmt"

	activitylogrepo "github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres/activitylog"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// defaultListLimit caps unbounded listings.
const defaultListLimit = 100

// ListLogs returns the user's logged activities, newest first. When a
// category filter is given its ownership is checked up front so a foreign
// category reads as not found rather than an empty list.
func (s *Service) ListLogs(ctx context.Context, input ListLogsInput) ([]*domain.LoggedActivityDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, userID, *input.CategoryID); err != nil {
			return nil, fmt.Errorf("get category: %w", err)
		}
	}
	if input.ActivityID != nil {
		if _, err := s.activities.GetByID(ctx, userID, *input.ActivityID); err != nil {
			return nil, fmt.Errorf("get activity: %w", err)
		}
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	logs, err := s.logs.List(ctx, userID, activitylogrepo.ListFilter{
		CategoryID: input.CategoryID,
		ActivityID: input.ActivityID,
		From:       input.From,
		To:         input.To,
		FocusLevel: input.FocusLevel,
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	return logs, nil
}

package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// UpdateActivity applies a partial update to one of the user's activities.
// Changed scoring rules never touch existing logs; they apply to future
// completions only.
func (s *Service) UpdateActivity(ctx context.Context, input UpdateActivityInput) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, userID, *input.CategoryID); err != nil {
			return nil, fmt.Errorf("get target category: %w", err)
		}
	}

	params := domain.ActivityUpdateParams{
		CategoryID: input.CategoryID,
		BasePoints: input.BasePoints,
		FocusTable: input.FocusTable,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}

	updated, err := s.activities.Update(ctx, userID, input.ActivityID, params)
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity updated",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", updated.ID.String()),
	)

	return updated, nil
}

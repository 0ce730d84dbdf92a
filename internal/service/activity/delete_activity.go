package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// DeleteActivity removes one of the user's activities. Without cascade the
// delete is refused with a conflict while logged history exists. With
// cascade the logs, the insight snapshot and the activity go in one
// transaction, so a failure part-way leaves everything in place.
func (s *Service) DeleteActivity(ctx context.Context, input DeleteActivityInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	activity, err := s.activities.GetByID(ctx, userID, input.ActivityID)
	if err != nil {
		return fmt.Errorf("get activity: %w", err)
	}

	if !input.Cascade {
		count, err := s.logs.CountByActivityID(ctx, activity.ID)
		if err != nil {
			return fmt.Errorf("count logs: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("activity has %d logged completions: %w", count, domain.ErrConflict)
		}
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.logs.DeleteByActivityID(txCtx, activity.ID); err != nil {
			return fmt.Errorf("delete logs: %w", err)
		}
		if err := s.insights.DeleteByActivityID(txCtx, activity.ID); err != nil {
			return fmt.Errorf("delete insight: %w", err)
		}
		if err := s.activities.Delete(txCtx, userID, activity.ID); err != nil {
			return fmt.Errorf("delete activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "activity deleted",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", activity.ID.String()),
		slog.Bool("cascade", input.Cascade),
	)

	return nil
}

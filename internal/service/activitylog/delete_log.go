package activitylog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// DeleteLog removes a logged activity. The row's points leave the user's
// totals with it; nothing else is adjusted.
func (s *Service) DeleteLog(ctx context.Context, logID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if logID == uuid.Nil {
		return domain.NewValidationError("log_id", "required")
	}

	if err := s.logs.Delete(ctx, userID, logID); err != nil {
		return fmt.Errorf("delete log: %w", err)
	}

	s.log.InfoContext(ctx, "log deleted",
		slog.String("user_id", userID.String()),
		slog.String("log_id", logID.String()),
	)

	return nil
}

package activitylog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// GetLog returns one of the user's logged activities with display fields.
func (s *Service) GetLog(ctx context.Context, logID uuid.UUID) (*domain.LoggedActivityDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if logID == uuid.Nil {
		return nil, domain.NewValidationError("log_id", "required")
	}

	log, err := s.logs.GetByID(ctx, userID, logID)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}

	return log, nil
}

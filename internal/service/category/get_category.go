package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// GetCategory returns one of the user's categories with its benchmarks.
func (s *Service) GetCategory(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if categoryID == uuid.Nil {
		return nil, domain.NewValidationError("category_id", "required")
	}

	category, err := s.categories.GetByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	return category, nil
}

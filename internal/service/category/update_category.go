package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// UpdateCategory applies a partial update to one of the user's categories.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CategoryUpdateParams{
		Description: input.Description,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}
	if input.Color != nil {
		color := strings.ToLower(*input.Color)
		params.Color = &color
	}

	updated, err := s.categories.Update(ctx, userID, input.CategoryID, params)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("user_id", userID.String()),
		slog.String("category_id", updated.ID.String()),
	)

	return updated, nil
}

package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// CreateCategory creates a new category for the authenticated user.
// When no color is given the configured default is used.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.categories.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if count >= s.cfg.MaxPerUser {
		return nil, domain.NewValidationError("categories", fmt.Sprintf("limit reached (max %d)", s.cfg.MaxPerUser))
	}

	color := s.cfg.DefaultColor
	if input.Color != nil {
		color = strings.ToLower(*input.Color)
	}

	created, err := s.categories.Create(ctx, userID, &domain.Category{
		Name:        strings.TrimSpace(input.Name),
		Color:       color,
		Description: trimOrNil(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

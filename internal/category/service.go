package category

import (
	"context"
	"strings"

	"taza-be/internal/logger"
	"taza-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

// Create adds a category. Admin only.
func (s *service) Create(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateCategory"),
	)

	if !utils.IsAdmin(ctx) {
		log.Warn("non-admin attempted to create category")
		return nil, ErrForbidden
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	c := &Category{
		Name:      name,
		ImageURL:  utils.TrimPtr(input.ImageURL),
		SortOrder: input.SortOrder,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		log.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	log.Info("category created", zap.Int64("category_id", c.ID))
	return c, nil
}

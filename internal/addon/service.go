package addon

import (
	"context"

	"taza-be/internal/logger"
	"taza-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*Addon, error)
	Get(ctx context.Context, id string) (*Addon, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List returns available addons. Admins also see unavailable ones.
func (s *service) List(ctx context.Context) ([]*Addon, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListAddons"),
	)

	addons, err := s.repo.List(ctx, utils.IsAdmin(ctx))
	if err != nil {
		log.Error("failed to list addons", zap.Error(err))
		return nil, err
	}

	log.Debug("list addons success", zap.Int("count", len(addons)))
	return addons, nil
}

func (s *service) Get(ctx context.Context, id string) (*Addon, error) {
	addonID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidAddonID
	}
	return s.repo.GetByID(ctx, addonID)
}

package product

import (
	"context"
	"strings"
	"time"

	"taza-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, params ListParams) ([]*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, params ListParams) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)
	start := time.Now()

	f := ListFilter{
		Category:  strings.TrimSpace(params.Category),
		Search:    strings.TrimSpace(params.Search),
		Available: params.Available,
	}
	if raw := strings.TrimSpace(params.ShopID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrInvalidShopID
		}
		f.ShopID = &id
	}

	products, err := s.repo.List(ctx, f)
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		return nil, err
	}

	log.Info("list products success",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return products, nil
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidProductID
	}
	return s.repo.GetByID(ctx, productID)
}

package shop

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context, f ListFilter) ([]*Shop, error)
	Get(ctx context.Context, id string) (*Shop, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, f ListFilter) ([]*Shop, error) {
	f.Search = strings.TrimSpace(f.Search)
	return s.repo.List(ctx, f)
}

func (s *service) Get(ctx context.Context, id string) (*Shop, error) {
	shopID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidShopID
	}
	return s.repo.GetByID(ctx, shopID)
}

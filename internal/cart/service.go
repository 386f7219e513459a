package cart

import (
	"context"

	"taza-be/internal/addon"
	"taza-be/internal/logger"
	"taza-be/internal/product"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for carts. Every operation is scoped
// to userID.
type Service interface {
	GetCart(ctx context.Context, userID uint) (*Cart, error)
	AddToCart(ctx context.Context, userID uint, params AddToCartParams) (*CartItem, error)
	UpdateQuantity(ctx context.Context, userID uint, itemID uuid.UUID, quantity int) error
	RemoveFromCart(ctx context.Context, userID uint, itemID uuid.UUID) error
	ClearCart(ctx context.Context, userID uint) error
}

type ProductLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

type AddonLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*addon.Addon, error)
}

type service struct {
	repo     Repository
	products ProductLookup
	addons   AddonLookup
}

func NewService(repo Repository, products ProductLookup, addons AddonLookup) Service {
	return &service{repo: repo, products: products, addons: addons}
}

func (s *service) GetCart(ctx context.Context, userID uint) (*Cart, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewCart(items), nil
}

// AddToCart adds a product or an addon; adding a line the user already has
// merges the quantities.
func (s *service) AddToCart(ctx context.Context, userID uint, params AddToCartParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Cart"),
		zap.String("method", "AddToCart"),
		zap.Uint("user_id", userID),
	)

	if (params.ProductID == nil) == (params.AddonID == nil) {
		return nil, ErrItemRequired
	}
	if params.Quantity <= 0 || params.Quantity > MaxLineQuantity {
		return nil, ErrInvalidQuantity
	}

	item := &CartItem{
		ID:       uuid.New(),
		UserID:   userID,
		Quantity: params.Quantity,
	}

	if params.ProductID != nil {
		p, err := s.products.GetByID(ctx, *params.ProductID)
		if err != nil {
			return nil, err
		}
		if !p.IsAvailable {
			return nil, ErrItemUnavailable
		}
		item.ProductID = uuid.NullUUID{UUID: p.ID, Valid: true}
		item.Name, item.Weight, item.ImageURL = p.Name, p.Weight, p.ImageURL
		item.UnitPrice, item.IsAvailable = p.Price, p.IsAvailable
	} else {
		a, err := s.addons.GetByID(ctx, *params.AddonID)
		if err != nil {
			return nil, err
		}
		if !a.IsAvailable {
			return nil, ErrItemUnavailable
		}
		item.AddonID = uuid.NullUUID{UUID: a.ID, Valid: true}
		item.Name, item.ImageURL = a.Name, a.ImageURL
		item.UnitPrice, item.IsAvailable = a.Price, a.IsAvailable
	}

	if err := s.repo.Add(ctx, item); err != nil {
		log.Error("failed to add cart item", zap.Error(err))
		return nil, err
	}

	log.Info("cart item added",
		zap.String("cart_item_id", item.ID.String()),
		zap.Int("quantity", item.Quantity),
	)
	return item, nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *service) UpdateQuantity(ctx context.Context, userID uint, itemID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return s.repo.Remove(ctx, userID, itemID)
	}
	if quantity > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	return s.repo.UpdateQuantity(ctx, userID, itemID, quantity)
}

func (s *service) RemoveFromCart(ctx context.Context, userID uint, itemID uuid.UUID) error {
	return s.repo.Remove(ctx, userID, itemID)
}

func (s *service) ClearCart(ctx context.Context, userID uint) error {
	n, err := s.repo.Clear(ctx, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to clear cart",
			zap.String("service", "Cart"),
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return err
	}
	logger.FromCtx(ctx).Debug("cart cleared", zap.Uint("user_id", userID), zap.Int64("removed", n))
	return nil
}

package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one cart line joined with the product or addon it points at.
type CartItem struct {
	ID        uuid.UUID
	UserID    uint
	ProductID uuid.NullUUID
	AddonID   uuid.NullUUID
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time

	Name        string
	Weight      *string
	ImageURL    *string
	UnitPrice   decimal.Decimal
	IsAvailable bool
}

func (c *CartItem) LineTotal() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

type Cart struct {
	Items    []*CartItem
	Subtotal decimal.Decimal
}

func NewCart(items []*CartItem) *Cart {
	c := &Cart{Items: items, Subtotal: decimal.Zero}
	for _, it := range items {
		c.Subtotal = c.Subtotal.Add(it.LineTotal())
	}
	return c
}

type AddToCartParams struct {
	ProductID *uuid.UUID
	AddonID   *uuid.UUID
	Quantity  int
}

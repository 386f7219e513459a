package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uuid.UUID
	UserID      uint
	ShopID      uuid.NullUUID
	AddressID   uuid.UUID
	OrderNumber string

	Subtotal       decimal.Decimal
	DeliveryCharge decimal.Decimal
	Discount       decimal.Decimal
	Total          decimal.Decimal
	CouponID       uuid.NullUUID

	Status     Status
	StatusNote *string

	PaymentMethodID uuid.NullUUID
	PaymentMethod   *string
	OTP             string

	DeliveryETA         *time.Time
	DeliveredAt         *time.Time
	DeliveryAgentName   *string
	DeliveryAgentMobile *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Items    []OrderItem
	Timeline []TimelineEvent
}

// OrderItem captures the product or addon as it was when the order was
// placed. Items are never updated.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.NullUUID
	AddonID   uuid.NullUUID
	Name      string
	Weight    *string
	Price     decimal.Decimal
	Quantity  int
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type ItemInput struct {
	ProductID *uuid.UUID
	AddonID   *uuid.UUID
	Name      string
	Weight    *string
	Price     decimal.Decimal
	Quantity  int
}

type CreateOrderInput struct {
	UserID          uint
	ShopID          *uuid.UUID
	AddressID       uuid.UUID
	Items           []ItemInput
	Subtotal        decimal.Decimal
	DeliveryCharge  decimal.Decimal
	Discount        decimal.Decimal
	CouponID        *uuid.UUID
	PaymentMethodID *uuid.UUID
	PaymentMethod   string
}

// CreateOrderResult carries the created order and, when a requested coupon
// could not be used, why. The order is still placed in that case, without
// the discount.
type CreateOrderResult struct {
	Order     *Order
	CouponErr error
}

type StatusUpdate struct {
	OrderID uuid.UUID
	UserID  uint
	Status  Status
	Note    *string
	Event   TimelineEvent
}

type StatusChange struct {
	OrderNumber string
	OwnerID     uint
	OldStatus   Status
}

type Tracking struct {
	Order    *Order
	Progress Progress
}

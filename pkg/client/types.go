package client

import (
	"taza-be/internal/address"
	"taza-be/internal/coupon"
	"taza-be/internal/order"
	"taza-be/internal/product"
	"taza-be/internal/shop"
	"taza-be/internal/user"

	"github.com/shopspring/decimal"
)

type (
	User             = user.UserResponse
	Address          = address.AddressResponse
	Shop             = shop.ShopResponse
	Product          = product.ProductResponse
	Order            = order.OrderResponse
	Tracking         = order.TrackingResponse
	CouponValidation = coupon.ValidationResponse
)

// PlacedOrder is the create-order result. CouponError is set when the
// requested coupon was dropped.
type PlacedOrder struct {
	Order
	CouponError *string `json:"couponError,omitempty"`
}

type SignInRequest struct {
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Name     string        `json:"name"`
	Phone    string        `json:"phone"`
	Email    *string       `json:"email,omitempty"`
	Password string        `json:"password"`
	Gender   *string       `json:"gender,omitempty"`
	Address  *AddressInput `json:"address,omitempty"`
}

type AddressInput struct {
	Label        string   `json:"label"`
	ReceiverName string   `json:"receiverName"`
	Phone        string   `json:"phone"`
	AddressLine1 string   `json:"addressLine1"`
	AddressLine2 *string  `json:"addressLine2,omitempty"`
	Landmark     *string  `json:"landmark,omitempty"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	PostalCode   string   `json:"postalCode"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	IsDefault    bool     `json:"isDefault"`
}

type OrderItem struct {
	ProductID *string         `json:"productId,omitempty"`
	AddonID   *string         `json:"addonId,omitempty"`
	Name      string          `json:"name"`
	Weight    *string         `json:"weight,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type CreateOrderRequest struct {
	ShopID          *string         `json:"shopId,omitempty"`
	AddressID       string          `json:"addressId"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryCharge  decimal.Decimal `json:"deliveryCharge"`
	Discount        decimal.Decimal `json:"discount"`
	CouponID        *string         `json:"couponId,omitempty"`
	PaymentMethodID *string         `json:"paymentMethodId,omitempty"`
	PaymentMethod   string          `json:"paymentMethod"`
}

type StatusChange struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ShopFilter struct {
	Search string
	Open   *bool
}

type ProductFilter struct {
	Category  string
	ShopID    string
	Search    string
	Available *bool
}

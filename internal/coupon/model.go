package coupon

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

type Coupon struct {
	ID             uuid.UUID
	Code           string
	Description    *string
	DiscountType   DiscountType
	DiscountValue  decimal.Decimal
	MinOrderAmount decimal.Decimal
	MaxDiscount    decimal.NullDecimal
	ValidFrom      time.Time
	ValidUntil     *time.Time
	UsageLimit     *int
	UsageCount     int
	IsActive       bool
	CreatedAt      time.Time
}

// ValidationResult is the outcome of checking a coupon against an order
// amount. Err explains why Valid is false.
type ValidationResult struct {
	Valid    bool
	Discount decimal.Decimal
	Coupon   *Coupon
	Err      error
}

type CreateCouponInput struct {
	Code           string
	Description    *string
	DiscountType   DiscountType
	DiscountValue  decimal.Decimal
	MinOrderAmount decimal.Decimal
	MaxDiscount    *decimal.Decimal
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	UsageLimit     *int
}

package coupon

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Evaluate checks c against an order amount at the given instant and returns
// the discount it grants, rounded to 2 decimals.
func Evaluate(c *Coupon, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if now.Before(c.ValidFrom) {
		return decimal.Zero, ErrCouponNotYetValid
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return decimal.Zero, ErrCouponExpired
	}
	if amount.LessThan(c.MinOrderAmount) {
		return decimal.Zero, ErrBelowMinimum
	}
	if c.UsageLimit != nil && c.UsageCount >= *c.UsageLimit {
		return decimal.Zero, ErrCouponExhausted
	}

	var discount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		discount = amount.Mul(c.DiscountValue).Div(hundred)
		if c.MaxDiscount.Valid && discount.GreaterThan(c.MaxDiscount.Decimal) {
			discount = c.MaxDiscount.Decimal
		}
	default:
		discount = c.DiscountValue
	}

	return discount.Round(2), nil
}

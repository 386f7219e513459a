package coupon

import "taza-be/internal/apperror"

var (
	ErrCouponNotFound    = apperror.Coupon("invalid coupon code")
	ErrCouponNotYetValid = apperror.Coupon("coupon is not yet valid")
	ErrCouponExpired     = apperror.Coupon("coupon has expired")
	ErrBelowMinimum      = apperror.Coupon("order amount is below the coupon minimum")
	ErrCouponExhausted   = apperror.Coupon("coupon usage limit reached")

	ErrCodeRequired      = apperror.Validation("coupon code is required")
	ErrInvalidAmount     = apperror.Validation("order amount must not be negative")
	ErrInvalidType       = apperror.Validation("discount type must be percentage or fixed")
	ErrInvalidValue      = apperror.Validation("discount value must be positive")
	ErrPercentageTooHigh = apperror.Validation("percentage discount cannot exceed 100")
	ErrInvalidMinimum    = apperror.Validation("minimum order amount must not be negative")
	ErrInvalidMaxDisc    = apperror.Validation("max discount must be positive")
	ErrInvalidWindow     = apperror.Validation("valid_until must be after valid_from")
	ErrInvalidUsageLimit = apperror.Validation("usage limit must be positive")

	ErrCouponCodeExists = apperror.Conflict("coupon code already exists")
	ErrForbidden        = apperror.Auth("admin access required")
)

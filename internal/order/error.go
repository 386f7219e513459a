package order

import "taza-be/internal/apperror"

var (
	ErrOrderNotFound = apperror.NotFound("order not found")

	ErrNoItems           = apperror.Validation("order must contain at least one item")
	ErrInvalidItemPrice  = apperror.Validation("item price must be greater than zero")
	ErrInvalidItemQty    = apperror.Validation("item quantity must be greater than zero")
	ErrItemRefRequired   = apperror.Validation("each item needs a product, an addon or a name")
	ErrNegativeAmount    = apperror.Validation("amounts must not be negative")
	ErrSubtotalMismatch  = apperror.Validation("subtotal does not match the items")
	ErrDiscountTooLarge  = apperror.Validation("discount cannot exceed the order amount")
	ErrInvalidStatus     = apperror.Validation("unknown order status")
	ErrAgentNameRequired = apperror.Validation("delivery agent name is required")
	ErrAgentMobile       = apperror.Validation("delivery agent mobile is required")

	ErrOrderClosed         = apperror.Conflict("order is already delivered or cancelled")
	ErrOrderNumberConflict = apperror.Conflict("order number already taken, please retry")
)

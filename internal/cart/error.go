package cart

import "taza-be/internal/apperror"

var (
	ErrCartItemNotFound = apperror.NotFound("cart item not found")

	ErrInvalidQuantity  = apperror.Validation("quantity must be between 1 and 99")
	ErrItemRequired     = apperror.Validation("exactly one of productId or addonId is required")
	ErrItemUnavailable  = apperror.Validation("item is currently unavailable")
)

const MaxLineQuantity = 99

package product

import "taza-be/internal/apperror"

var (
	ErrProductNotFound  = apperror.NotFound("product not found")
	ErrInvalidProductID = apperror.Validation("invalid product id")
	ErrInvalidShopID    = apperror.Validation("invalid shop id")
)

package shop

import "taza-be/internal/apperror"

var (
	ErrShopNotFound  = apperror.NotFound("shop not found")
	ErrInvalidShopID = apperror.Validation("invalid shop id")
)

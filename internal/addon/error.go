package addon

import "taza-be/internal/apperror"

var (
	ErrAddonNotFound  = apperror.NotFound("addon not found")
	ErrInvalidAddonID = apperror.Validation("invalid addon id")
)

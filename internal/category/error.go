package category

import "taza-be/internal/apperror"

var (
	ErrNameRequired  = apperror.Validation("category name is required")
	ErrCategoryExist = apperror.Conflict("category already exists")
	ErrForbidden     = apperror.Auth("admin access required")
)

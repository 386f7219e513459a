package user

import "taza-be/internal/apperror"

var (
	ErrUserNotFound       = apperror.NotFound("user not found")
	ErrProfileNotFound    = apperror.NotFound("profile not found")
	ErrInvalidCredentials = apperror.Auth("invalid phone/email or password")
	ErrPhoneExists        = apperror.Conflict("phone already registered")
	ErrEmailExists        = apperror.Conflict("email already registered")

	ErrNameRequired     = apperror.Validation("name is required")
	ErrPhoneRequired    = apperror.Validation("phone is required")
	ErrIdentityRequired = apperror.Validation("phone or email is required")
	ErrInvalidEmail     = apperror.Validation("invalid email")
	ErrWeakPassword     = apperror.Validation("password must be at least 6 characters")

	ErrSessionNotFound = apperror.Auth("session not found")
	ErrSessionRevoked  = apperror.Auth("session revoked")
	ErrSessionExpired  = apperror.Auth("session expired")
)

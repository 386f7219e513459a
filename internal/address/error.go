package address

import "taza-be/internal/apperror"

var (
	ErrAddressNotFound   = apperror.NotFound("address not found")
	ErrInvalidAddressID  = apperror.Validation("invalid address id")
	ErrReceiverRequired  = apperror.Validation("receiver name is required")
	ErrPhoneRequired     = apperror.Validation("phone is required")
	ErrLine1Required     = apperror.Validation("address line 1 is required")
	ErrCityRequired      = apperror.Validation("city is required")
	ErrStateRequired     = apperror.Validation("state is required")
	ErrPostalRequired    = apperror.Validation("postal code is required")
	ErrInvalidCoordinate = apperror.Validation("latitude/longitude out of range")
)

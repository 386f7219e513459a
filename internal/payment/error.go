package payment

import "taza-be/internal/apperror"

var (
	ErrPaymentMethodNotFound = apperror.NotFound("payment method not found")

	ErrInvalidType  = apperror.Validation("payment type must be card, upi, cod or wallet")
	ErrInvalidLast4 = apperror.Validation("card last4 must be 4 digits")
	ErrInvalidUPIID = apperror.Validation("invalid UPI ID")
	ErrLabelTooLong = apperror.Validation("label must be at most 50 characters")
)

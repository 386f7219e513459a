package address

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	ID     uuid.UUID
	UserID uint

	Label        string
	ReceiverName string
	Phone        string

	AddressLine1 string
	AddressLine2 *string
	Landmark     *string

	City       string
	State      string
	PostalCode string

	Latitude  *float64
	Longitude *float64

	IsDefault bool
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateAddressInput struct {
	Label        string
	ReceiverName string
	Phone        string
	AddressLine1 string
	AddressLine2 *string
	Landmark     *string
	City         string
	State        string
	PostalCode   string
	Latitude     *float64
	Longitude    *float64
	SetAsDefault bool
}

// UpdateAddressInput carries only the fields to change; nil means keep.
type UpdateAddressInput struct {
	Label        *string
	ReceiverName *string
	Phone        *string
	AddressLine1 *string
	AddressLine2 *string
	Landmark     *string
	City         *string
	State        *string
	PostalCode   *string
	Latitude     *float64
	Longitude    *float64
}

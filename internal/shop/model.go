package shop

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Shop struct {
	ID                  uuid.UUID
	Name                string
	Description         *string
	ImageURL            *string
	Address             *string
	Rating              decimal.Decimal
	DeliveryTimeMinutes int
	IsOpen              bool
	CreatedAt           time.Time
}

type ListFilter struct {
	Search   string
	OpenOnly bool
}

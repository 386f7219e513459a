package addon

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Addon struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Price       decimal.Decimal
	ImageURL    *string
	IsAvailable bool
}

package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uuid.UUID
	ShopID        uuid.NullUUID
	Name          string
	Description   *string
	Category      string
	Weight        *string
	Price         decimal.Decimal
	OriginalPrice decimal.NullDecimal
	ImageURL      *string
	IsAvailable   bool
	CreatedAt     time.Time
}

// ListFilter narrows a product listing. Zero values mean "no filter".
type ListFilter struct {
	Category  string
	ShopID    *uuid.UUID
	Search    string
	Available *bool
}

// ListParams is the raw query as it arrives from a caller.
type ListParams struct {
	Category  string
	ShopID    string
	Search    string
	Available *bool
}

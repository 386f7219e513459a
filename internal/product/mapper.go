package product

type ProductResponse struct {
	ID            string   `json:"id"`
	ShopID        *string  `json:"shopId,omitempty"`
	Name          string   `json:"name"`
	Description   *string  `json:"description,omitempty"`
	Category      string   `json:"category"`
	Weight        *string  `json:"weight,omitempty"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	IsAvailable   bool     `json:"isAvailable"`
}

func ToResponse(p *Product) ProductResponse {
	res := ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Weight:      p.Weight,
		Price:       p.Price.InexactFloat64(),
		ImageURL:    p.ImageURL,
		IsAvailable: p.IsAvailable,
	}
	if p.ShopID.Valid {
		id := p.ShopID.UUID.String()
		res.ShopID = &id
	}
	if p.OriginalPrice.Valid {
		v := p.OriginalPrice.Decimal.InexactFloat64()
		res.OriginalPrice = &v
	}
	return res
}

func ToResponses(list []*Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToResponse(p))
	}
	return out
}

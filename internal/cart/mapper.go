package cart

type CartItemResponse struct {
	ID          string  `json:"id"`
	ProductID   *string `json:"productId,omitempty"`
	AddonID     *string `json:"addonId,omitempty"`
	Name        string  `json:"name"`
	Weight      *string `json:"weight,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
	IsAvailable bool    `json:"isAvailable"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"itemCount"`
	Subtotal  float64            `json:"subtotal"`
}

func ToItemResponse(it *CartItem) CartItemResponse {
	res := CartItemResponse{
		ID:          it.ID.String(),
		Name:        it.Name,
		Weight:      it.Weight,
		ImageURL:    it.ImageURL,
		Price:       it.UnitPrice.InexactFloat64(),
		Quantity:    it.Quantity,
		LineTotal:   it.LineTotal().InexactFloat64(),
		IsAvailable: it.IsAvailable,
	}
	if it.ProductID.Valid {
		id := it.ProductID.UUID.String()
		res.ProductID = &id
	}
	if it.AddonID.Valid {
		id := it.AddonID.UUID.String()
		res.AddonID = &id
	}
	return res
}

func ToResponse(c *Cart) CartResponse {
	res := CartResponse{
		Items:    make([]CartItemResponse, 0, len(c.Items)),
		Subtotal: c.Subtotal.InexactFloat64(),
	}
	for _, it := range c.Items {
		res.Items = append(res.Items, ToItemResponse(it))
		res.ItemCount += it.Quantity
	}
	return res
}

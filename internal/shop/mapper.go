package shop

type ShopResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         *string `json:"description,omitempty"`
	ImageURL            *string `json:"imageUrl,omitempty"`
	Address             *string `json:"address,omitempty"`
	Rating              float64 `json:"rating"`
	DeliveryTimeMinutes int     `json:"deliveryTime"`
	IsOpen              bool    `json:"isOpen"`
}

func ToResponse(s *Shop) ShopResponse {
	return ShopResponse{
		ID:                  s.ID.String(),
		Name:                s.Name,
		Description:         s.Description,
		ImageURL:            s.ImageURL,
		Address:             s.Address,
		Rating:              s.Rating.InexactFloat64(),
		DeliveryTimeMinutes: s.DeliveryTimeMinutes,
		IsOpen:              s.IsOpen,
	}
}

func ToResponses(list []*Shop) []ShopResponse {
	out := make([]ShopResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToResponse(s))
	}
	return out
}

package addon

type AddonResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}

func ToResponses(list []*Addon) []AddonResponse {
	out := make([]AddonResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToResponse(a))
	}
	return out
}

func ToResponse(a *Addon) AddonResponse {
	return AddonResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		Price:       a.Price.InexactFloat64(),
		ImageURL:    a.ImageURL,
		IsAvailable: a.IsAvailable,
	}
}

package address

import "time"

type AddressResponse struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	ReceiverName string    `json:"receiverName"`
	Phone        string    `json:"phone"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 *string   `json:"addressLine2,omitempty"`
	Landmark     *string   `json:"landmark,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postalCode"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	IsDefault    bool      `json:"isDefault"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ToResponse(a *Address) AddressResponse {
	return AddressResponse{
		ID:           a.ID.String(),
		Label:        a.Label,
		ReceiverName: a.ReceiverName,
		Phone:        a.Phone,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		Landmark:     a.Landmark,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		IsDefault:    a.IsDefault,
		CreatedAt:    a.CreatedAt,
	}
}

func ToResponses(list []*Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToResponse(a))
	}
	return out
}

package payment

import "time"

type PaymentMethodResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Label     string    `json:"label"`
	Last4     *string   `json:"last4,omitempty"`
	UPIID     *string   `json:"upiId,omitempty"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToResponse(pm *PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:        pm.ID.String(),
		Type:      string(pm.Type),
		Label:     pm.Label,
		Last4:     pm.Last4,
		UPIID:     pm.UPIID,
		IsDefault: pm.IsDefault,
		CreatedAt: pm.CreatedAt,
	}
}

func ToResponses(list []*PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(list))
	for _, pm := range list {
		out = append(out, ToResponse(pm))
	}
	return out
}

package order

import (
	"time"

	"taza-be/internal/payment"
	"taza-be/internal/utils"
)

type OrderItemResponse struct {
	ID        string  `json:"id"`
	ProductID *string `json:"productId,omitempty"`
	AddonID   *string `json:"addonId,omitempty"`
	Name      string  `json:"name"`
	Weight    *string `json:"weight,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

type TimelineEventResponse struct {
	ID          string    `json:"id"`
	Stage       string    `json:"stage"`
	Description *string   `json:"description,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	Timestamp   time.Time `json:"timestamp"`
}

type DeliveryAgentResponse struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type OrderResponse struct {
	ID                  string                  `json:"id"`
	OrderNumber         string                  `json:"orderNumber"`
	ShopID              *string                 `json:"shopId,omitempty"`
	AddressID           string                  `json:"addressId"`
	Status              string                  `json:"status"`
	StatusNote          *string                 `json:"statusNote,omitempty"`
	Subtotal            float64                 `json:"subtotal"`
	DeliveryCharge      float64                 `json:"deliveryCharge"`
	Discount            float64                 `json:"discount"`
	Total               float64                 `json:"total"`
	CouponID            *string                 `json:"couponId,omitempty"`
	PaymentMethodID     *string                 `json:"paymentMethodId,omitempty"`
	PaymentMethod       *string                 `json:"paymentMethod,omitempty"`
	PaymentInstructions []string                `json:"paymentInstructions,omitempty"`
	OTP                 string                  `json:"otp"`
	DeliveryETA         *time.Time              `json:"deliveryEta,omitempty"`
	DeliveredAt         *time.Time              `json:"deliveredAt,omitempty"`
	DeliveryAgent       *DeliveryAgentResponse  `json:"deliveryAgent,omitempty"`
	Items               []OrderItemResponse     `json:"items"`
	Timeline            []TimelineEventResponse `json:"timeline,omitempty"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

type StageResponse struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Current     bool       `json:"current"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

type TrackingResponse struct {
	Order       OrderResponse   `json:"order"`
	Stages      []StageResponse `json:"stages"`
	Cancelled   bool            `json:"cancelled"`
	CancelledAt *time.Time      `json:"cancelledAt,omitempty"`
	CancelNote  string          `json:"cancelNote,omitempty"`
}

func ToItemResponse(it OrderItem) OrderItemResponse {
	res := OrderItemResponse{
		ID:        it.ID.String(),
		Name:      it.Name,
		Weight:    it.Weight,
		Price:     it.Price.InexactFloat64(),
		Quantity:  it.Quantity,
		LineTotal: it.LineTotal().InexactFloat64(),
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

func ToResponse(o *Order) OrderResponse {
	res := OrderResponse{
		ID:             o.ID.String(),
		OrderNumber:    o.OrderNumber,
		AddressID:      o.AddressID.String(),
		Status:         string(o.Status),
		StatusNote:     o.StatusNote,
		Subtotal:       o.Subtotal.InexactFloat64(),
		DeliveryCharge: o.DeliveryCharge.InexactFloat64(),
		Discount:       o.Discount.InexactFloat64(),
		Total:          o.Total.InexactFloat64(),
		PaymentMethod:  o.PaymentMethod,
		OTP:            o.OTP,
		DeliveryETA:    o.DeliveryETA,
		DeliveredAt:    o.DeliveredAt,
		Items:          make([]OrderItemResponse, 0, len(o.Items)),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	if o.ShopID.Valid {
		id := o.ShopID.UUID.String()
		res.ShopID = &id
	}
	if o.CouponID.Valid {
		id := o.CouponID.UUID.String()
		res.CouponID = &id
	}
	if o.PaymentMethodID.Valid {
		id := o.PaymentMethodID.UUID.String()
		res.PaymentMethodID = &id
	}
	if o.PaymentMethod != nil {
		res.PaymentInstructions = payment.Instructions(*o.PaymentMethod, o.Total, payment.InstructionVars{"otp": o.OTP})
	}
	if o.DeliveryAgentName != nil {
		res.DeliveryAgent = &DeliveryAgentResponse{
			Name:   *o.DeliveryAgentName,
			Mobile: utils.PtrString(o.DeliveryAgentMobile),
		}
	}

	for _, it := range o.Items {
		res.Items = append(res.Items, ToItemResponse(it))
	}
	for _, ev := range o.Timeline {
		res.Timeline = append(res.Timeline, TimelineEventResponse{
			ID:          ev.ID.String(),
			Stage:       ev.Stage,
			Description: ev.Description,
			IsCompleted: ev.IsCompleted,
			Timestamp:   ev.CreatedAt,
		})
	}
	return res
}

func ToResponses(orders []*Order) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, ToResponse(o))
	}
	return res
}

func ToTrackingResponse(t *Tracking) TrackingResponse {
	res := TrackingResponse{
		Order:       ToResponse(t.Order),
		Stages:      make([]StageResponse, 0, len(t.Progress.Stages)),
		Cancelled:   t.Progress.Cancelled,
		CancelledAt: t.Progress.CancelledAt,
		CancelNote:  t.Progress.CancelNote,
	}
	for _, s := range t.Progress.Stages {
		res.Stages = append(res.Stages, StageResponse(s))
	}
	return res
}

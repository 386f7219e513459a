package coupon

import "time"

type CouponResponse struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	Description    *string    `json:"description,omitempty"`
	DiscountType   string     `json:"discountType"`
	DiscountValue  float64    `json:"discountValue"`
	MinOrderAmount float64    `json:"minOrderAmount"`
	MaxDiscount    *float64   `json:"maxDiscount,omitempty"`
	ValidFrom      time.Time  `json:"validFrom"`
	ValidUntil     *time.Time `json:"validUntil,omitempty"`
	UsageLimit     *int       `json:"usageLimit,omitempty"`
	UsageCount     int        `json:"usageCount"`
}

type ValidationResponse struct {
	Valid    bool            `json:"valid"`
	Discount float64         `json:"discount"`
	Coupon   *CouponResponse `json:"coupon,omitempty"`
	Error    string          `json:"error,omitempty"`
}

func ToResponse(c *Coupon) CouponResponse {
	res := CouponResponse{
		ID:             c.ID.String(),
		Code:           c.Code,
		Description:    c.Description,
		DiscountType:   string(c.DiscountType),
		DiscountValue:  c.DiscountValue.InexactFloat64(),
		MinOrderAmount: c.MinOrderAmount.InexactFloat64(),
		ValidFrom:      c.ValidFrom,
		ValidUntil:     c.ValidUntil,
		UsageLimit:     c.UsageLimit,
		UsageCount:     c.UsageCount,
	}
	if c.MaxDiscount.Valid {
		v := c.MaxDiscount.Decimal.InexactFloat64()
		res.MaxDiscount = &v
	}
	return res
}

func ToResponses(list []*Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToResponse(c))
	}
	return out
}

// ToValidationResponse only exposes the coupon when it is usable.
func ToValidationResponse(r *ValidationResult) ValidationResponse {
	res := ValidationResponse{
		Valid:    r.Valid,
		Discount: r.Discount.InexactFloat64(),
	}
	if r.Valid && r.Coupon != nil {
		c := ToResponse(r.Coupon)
		res.Coupon = &c
	}
	if r.Err != nil {
		res.Error = r.Err.Error()
	}
	return res
}

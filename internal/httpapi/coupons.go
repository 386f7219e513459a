package httpapi

import (
	"net/http"
	"time"

	"taza-be/internal/coupon"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type validateCouponReq struct {
	Code        string          `json:"code"`
	OrderAmount decimal.Decimal `json:"orderAmount"`
}

func (s *Server) validateCoupon(c *gin.Context) {
	var req validateCouponReq
	if !bind(c, &req) {
		return
	}
	res, err := s.svc.Coupons.Validate(c.Request.Context(), req.Code, req.OrderAmount)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, coupon.ToValidationResponse(res))
}

func (s *Server) listCoupons(c *gin.Context) {
	list, err := s.svc.Coupons.ListActive(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, coupon.ToResponses(list))
}

type createCouponReq struct {
	Code           string           `json:"code"`
	Description    *string          `json:"description"`
	DiscountType   string           `json:"discountType"`
	DiscountValue  decimal.Decimal  `json:"discountValue"`
	MinOrderAmount decimal.Decimal  `json:"minOrderAmount"`
	MaxDiscount    *decimal.Decimal `json:"maxDiscount"`
	ValidFrom      *time.Time       `json:"validFrom"`
	ValidUntil     *time.Time       `json:"validUntil"`
	UsageLimit     *int             `json:"usageLimit"`
}

func (s *Server) createCoupon(c *gin.Context) {
	var req createCouponReq
	if !bind(c, &req) {
		return
	}

	cp, err := s.svc.Coupons.Create(c.Request.Context(), coupon.CreateCouponInput{
		Code:           req.Code,
		Description:    req.Description,
		DiscountType:   coupon.DiscountType(req.DiscountType),
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		MaxDiscount:    req.MaxDiscount,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
		UsageLimit:     req.UsageLimit,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, coupon.ToResponse(cp))
}

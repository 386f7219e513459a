package httpapi

import (
	"net/http"
	"strings"

	"taza-be/internal/payment"

	"github.com/gin-gonic/gin"
)

type createPaymentMethodReq struct {
	Type      string  `json:"type"`
	Label     string  `json:"label"`
	Last4     *string `json:"last4"`
	UPIID     *string `json:"upiId"`
	IsDefault bool    `json:"isDefault"`
}

func (s *Server) listPaymentMethods(c *gin.Context) {
	list, err := s.svc.Payments.List(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, payment.ToResponses(list))
}

func (s *Server) createPaymentMethod(c *gin.Context) {
	var req createPaymentMethodReq
	if !bind(c, &req) {
		return
	}

	pm, err := s.svc.Payments.Create(c.Request.Context(), currentUser(c), payment.CreatePaymentMethodInput{
		Type:         payment.MethodType(strings.ToLower(strings.TrimSpace(req.Type))),
		Label:        req.Label,
		Last4:        req.Last4,
		UPIID:        req.UPIID,
		SetAsDefault: req.IsDefault,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, payment.ToResponse(pm))
}

func (s *Server) deletePaymentMethod(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	if err := s.svc.Payments.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

func (s *Server) setDefaultPaymentMethod(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	if err := s.svc.Payments.SetDefault(c.Request.Context(), currentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

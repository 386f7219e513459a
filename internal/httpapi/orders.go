package httpapi

import (
	"net/http"

	"taza-be/internal/apperror"
	"taza-be/internal/order"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderItemReq struct {
	ProductID *string         `json:"productId"`
	AddonID   *string         `json:"addonId"`
	Name      string          `json:"name"`
	Weight    *string         `json:"weight"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type createOrderReq struct {
	ShopID          *string         `json:"shopId"`
	AddressID       string          `json:"addressId"`
	Items           []orderItemReq  `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryCharge  decimal.Decimal `json:"deliveryCharge"`
	Discount        decimal.Decimal `json:"discount"`
	CouponID        *string         `json:"couponId"`
	PaymentMethodID *string         `json:"paymentMethodId"`
	PaymentMethod   string          `json:"paymentMethod"`
}

type createOrderResp struct {
	order.OrderResponse
	CouponError *string `json:"couponError,omitempty"`
}

func (r createOrderReq) input(userID uint) (order.CreateOrderInput, error) {
	in := order.CreateOrderInput{
		UserID:         userID,
		Subtotal:       r.Subtotal,
		DeliveryCharge: r.DeliveryCharge,
		Discount:       r.Discount,
		PaymentMethod:  r.PaymentMethod,
	}

	addressID, err := uuid.Parse(r.AddressID)
	if err != nil {
		return in, apperror.Validation("invalid address id")
	}
	in.AddressID = addressID

	if in.ShopID, err = optionalUUID(r.ShopID); err != nil {
		return in, err
	}
	if in.CouponID, err = optionalUUID(r.CouponID); err != nil {
		return in, err
	}
	if in.PaymentMethodID, err = optionalUUID(r.PaymentMethodID); err != nil {
		return in, err
	}

	for _, it := range r.Items {
		item := order.ItemInput{
			Name:     it.Name,
			Weight:   it.Weight,
			Price:    it.Price,
			Quantity: it.Quantity,
		}
		if item.ProductID, err = optionalUUID(it.ProductID); err != nil {
			return in, err
		}
		if item.AddonID, err = optionalUUID(it.AddonID); err != nil {
			return in, err
		}
		in.Items = append(in.Items, item)
	}
	return in, nil
}

func (s *Server) createOrder(c *gin.Context) {
	var req createOrderReq
	if !bind(c, &req) {
		return
	}
	in, err := req.input(currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}

	res, err := s.svc.Orders.CreateOrder(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	resp := createOrderResp{OrderResponse: order.ToResponse(res.Order)}
	if res.CouponErr != nil {
		msg := apperror.PublicMessage(res.CouponErr)
		resp.CouponError = &msg
	}
	ok(c, http.StatusCreated, resp)
}

func (s *Server) listOrders(c *gin.Context) {
	list, err := s.svc.Orders.ListOrders(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, order.ToResponses(list))
}

func (s *Server) getOrder(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	o, err := s.svc.Orders.GetOrderByID(c.Request.Context(), id, currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, order.ToResponse(o))
}

type updateStatusReq struct {
	Status string  `json:"status"`
	Note   *string `json:"statusNote"`
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	var req updateStatusReq
	if !bind(c, &req) {
		return
	}

	if err := s.svc.Orders.UpdateStatus(c.Request.Context(), id, currentUser(c), req.Status, req.Note); err != nil {
		fail(c, err)
		return
	}
	status, _ := order.ParseStatus(req.Status)
	ok(c, http.StatusOK, gin.H{"id": id.String(), "status": status})
}

func (s *Server) getTracking(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	t, err := s.svc.Orders.GetTracking(c.Request.Context(), id, currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, order.ToTrackingResponse(t))
}

type assignAgentReq struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

func (s *Server) assignAgent(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	var req assignAgentReq
	if !bind(c, &req) {
		return
	}
	if err := s.svc.Orders.AssignDeliveryAgent(c.Request.Context(), id, currentUser(c), req.Name, req.Mobile); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

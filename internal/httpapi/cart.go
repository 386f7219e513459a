package httpapi

import (
	"net/http"

	"taza-be/internal/cart"

	"github.com/gin-gonic/gin"
)

type addToCartReq struct {
	ProductID *string `json:"productId"`
	AddonID   *string `json:"addonId"`
	Quantity  int     `json:"quantity"`
}

type updateCartItemReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) getCart(c *gin.Context) {
	ct, err := s.svc.Cart.GetCart(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, cart.ToResponse(ct))
}

func (s *Server) addToCart(c *gin.Context) {
	var req addToCartReq
	if !bind(c, &req) {
		return
	}

	productID, err := optionalUUID(req.ProductID)
	if err != nil {
		fail(c, err)
		return
	}
	addonID, err := optionalUUID(req.AddonID)
	if err != nil {
		fail(c, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := s.svc.Cart.AddToCart(c.Request.Context(), currentUser(c), cart.AddToCartParams{
		ProductID: productID,
		AddonID:   addonID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, cart.ToItemResponse(item))
}

func (s *Server) updateCartItem(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	var req updateCartItemReq
	if !bind(c, &req) {
		return
	}
	if err := s.svc.Cart.UpdateQuantity(c.Request.Context(), currentUser(c), id, req.Quantity); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

func (s *Server) removeCartItem(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	if err := s.svc.Cart.RemoveFromCart(c.Request.Context(), currentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

func (s *Server) clearCart(c *gin.Context) {
	if err := s.svc.Cart.ClearCart(c.Request.Context(), currentUser(c)); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

func (c *Client) SignIn(ctx context.Context, req SignInRequest) (*Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", nil, nil, req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", nil, nil, req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) SignOut(ctx context.Context, sess *Session) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/api/auth/signout", nil, sess, nil, nil)
}

func (c *Client) Me(ctx context.Context, sess *Session) (*User, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, sess, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListOrders(ctx context.Context, sess *Session) ([]Order, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	var list []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, sess, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetOrder(ctx context.Context, sess *Session, id string) (*Order, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	var o Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), nil, sess, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CreateOrder(ctx context.Context, sess *Session, req CreateOrderRequest) (*PlacedOrder, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	var o PlacedOrder
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, sess, req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, sess *Session, id, status string, note *string) (*StatusChange, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	body := struct {
		Status string  `json:"status"`
		Note   *string `json:"statusNote,omitempty"`
	}{status, note}

	var res StatusChange
	if err := c.do(ctx, http.MethodPatch, "/api/orders/"+url.PathEscape(id)+"/status", nil, sess, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetTracking(ctx context.Context, sess *Session, id string) (*Tracking, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	var t Tracking
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id)+"/tracking", nil, sess, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ValidateCoupon works with or without a session.
func (c *Client) ValidateCoupon(ctx context.Context, sess *Session, code string, orderAmount decimal.Decimal) (*CouponValidation, error) {
	body := struct {
		Code        string          `json:"code"`
		OrderAmount decimal.Decimal `json:"orderAmount"`
	}{code, orderAmount}

	var v CouponValidation
	if err := c.do(ctx, http.MethodPost, "/api/coupons/validate", nil, sess, body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) ListAddresses(ctx context.Context, sess *Session) ([]Address, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	var list []Address
	if err := c.do(ctx, http.MethodGet, "/api/users/addresses", nil, sess, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateAddress(ctx context.Context, sess *Session, in AddressInput) (*Address, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	var a Address
	if err := c.do(ctx, http.MethodPost, "/api/users/addresses", nil, sess, in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) SetDefaultAddress(ctx context.Context, sess *Session, id string) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/api/users/addresses/"+url.PathEscape(id)+"/default", nil, sess, nil, nil)
}

func (c *Client) DeleteAddress(ctx context.Context, sess *Session, id string) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/users/addresses/"+url.PathEscape(id), nil, sess, nil, nil)
}

func (c *Client) ListShops(ctx context.Context, f ShopFilter) ([]Shop, error) {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Open != nil {
		q.Set("open", strconv.FormatBool(*f.Open))
	}

	var list []Shop
	if err := c.do(ctx, http.MethodGet, "/api/shops", q, nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ListProducts(ctx context.Context, f ProductFilter) ([]Product, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.ShopID != "" {
		q.Set("shopId", f.ShopID)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Available != nil {
		q.Set("available", strconv.FormatBool(*f.Available))
	}

	var list []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", q, nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

package httpapi

import (
	"net/http"

	"taza-be/internal/address"
	"taza-be/internal/addon"
	"taza-be/internal/cart"
	"taza-be/internal/category"
	"taza-be/internal/coupon"
	"taza-be/internal/metrics"
	"taza-be/internal/order"
	"taza-be/internal/payment"
	"taza-be/internal/product"
	"taza-be/internal/shop"
	"taza-be/internal/user"

	"github.com/gin-gonic/gin"
)

// Services groups every domain service the API exposes. A nil service
// leaves its routes unregistered.
type Services struct {
	Users      user.Service
	Addresses  address.Service
	Payments   payment.Service
	Shops      shop.Service
	Products   product.Service
	Addons     addon.Service
	Categories category.Service
	Coupons    coupon.Service
	Orders     order.Service
	Cart       cart.Service
}

type Server struct {
	engine  *gin.Engine
	svc     Services
	metrics *metrics.Registry

	// secureCookies marks the access_token cookie Secure.
	secureCookies bool
}

type Option func(*Server)

func WithSecureCookies(secure bool) Option {
	return func(s *Server) { s.secureCookies = secure }
}

func NewServer(svc Services, reg *metrics.Registry, opts ...Option) *Server {
	r := gin.New()
	r.Use(gin.Recovery())
	s := &Server{engine: r, svc: svc, metrics: reg}
	for _, opt := range opts {
		opt(s)
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	s.engine.GET("/metrics", s.getMetrics)

	api := s.engine.Group("/api")

	if s.svc.Users != nil {
		authGroup := api.Group("/auth")
		authGroup.POST("/signup", s.signUp)
		authGroup.POST("/signin", s.signIn)
		authGroup.POST("/signout", requireAuth, s.signOut)
		authGroup.GET("/me", requireAuth, s.me)

		api.GET("/users/profile", requireAuth, s.getProfile)
		api.PATCH("/users/profile", requireAuth, s.updateProfile)
	}

	if s.svc.Addresses != nil {
		addresses := api.Group("/users/addresses", requireAuth)
		addresses.GET("", s.listAddresses)
		addresses.POST("", s.createAddress)
		addresses.GET("/:id", s.getAddress)
		addresses.PATCH("/:id", s.updateAddress)
		addresses.DELETE("/:id", s.deleteAddress)
		addresses.POST("/:id/default", s.setDefaultAddress)
	}

	if s.svc.Payments != nil {
		methods := api.Group("/users/payment-methods", requireAuth)
		methods.GET("", s.listPaymentMethods)
		methods.POST("", s.createPaymentMethod)
		methods.DELETE("/:id", s.deletePaymentMethod)
		methods.POST("/:id/default", s.setDefaultPaymentMethod)
	}

	if s.svc.Shops != nil {
		api.GET("/shops", s.listShops)
		api.GET("/shops/:id", s.getShop)
	}
	if s.svc.Products != nil {
		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
	}
	if s.svc.Addons != nil {
		api.GET("/addons", s.listAddons)
	}
	if s.svc.Categories != nil {
		api.GET("/categories", s.listCategories)
		api.POST("/categories", requireAuth, s.createCategory)
	}

	if s.svc.Coupons != nil {
		api.GET("/coupons", s.listCoupons)
		api.POST("/coupons/validate", s.validateCoupon)
		api.POST("/coupons", requireAuth, s.createCoupon)
	}

	if s.svc.Orders != nil {
		orders := api.Group("/orders", requireAuth)
		orders.GET("", s.listOrders)
		orders.POST("", s.createOrder)
		orders.GET("/:id", s.getOrder)
		orders.PATCH("/:id/status", s.updateOrderStatus)
		orders.GET("/:id/tracking", s.getTracking)
		orders.PATCH("/:id/agent", s.assignAgent)
	}

	if s.svc.Cart != nil {
		cartGroup := api.Group("/cart", requireAuth)
		cartGroup.GET("", s.getCart)
		cartGroup.POST("", s.addToCart)
		cartGroup.DELETE("", s.clearCart)
		cartGroup.PATCH("/:id", s.updateCartItem)
		cartGroup.DELETE("/:id", s.removeCartItem)
	}
}

func (s *Server) getMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.metrics.Snapshot())
}

package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"taza-be/internal/addon"
	"taza-be/internal/address"
	"taza-be/internal/auth"
	"taza-be/internal/cart"
	"taza-be/internal/category"
	"taza-be/internal/config"
	"taza-be/internal/coupon"
	"taza-be/internal/db"
	"taza-be/internal/events"
	"taza-be/internal/httpapi"
	"taza-be/internal/logger"
	"taza-be/internal/metrics"
	"taza-be/internal/middleware"
	"taza-be/internal/order"
	"taza-be/internal/payment"
	"taza-be/internal/product"
	"taza-be/internal/shop"
	"taza-be/internal/user"

	"go.uber.org/zap"
)

const (
	limiterSweepInterval = time.Minute
	limiterMaxIdle       = 10 * time.Minute
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	publisher := events.New(cfg.AMQPURL)
	defer publisher.Close()

	app, err := newServer(cfg, database, publisher)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.limiter.RunCleanup(ctx, limiterSweepInterval, limiterMaxIdle)

	logger.L().Info("HTTP server running",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	return startServerFunc(":"+cfg.AppPort, app.handler)
}

type server struct {
	handler http.Handler
	limiter *middleware.RateLimiter
}

// newServer wires repositories, services and the HTTP stack.
func newServer(cfg *config.Config, database *sql.DB, publisher events.Publisher) (*server, error) {
	reg := metrics.NewRegistry()

	tokens, err := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL(), auth.WithLegacyTokens(cfg.AcceptLegacyTokens))
	if err != nil {
		return nil, err
	}

	shopRepo := shop.NewRepository(database)
	productRepo := product.NewRepository(database)
	addonRepo := addon.NewRepository(database)

	addressSvc := address.NewService(address.NewRepository(database))
	userSvc := user.NewService(user.NewRepository(database), tokens, addressSvc, reg)
	paymentSvc := payment.NewService(payment.NewRepository(database))
	couponSvc := coupon.NewService(coupon.NewRepository(database), reg)
	cartSvc := cart.NewService(cart.NewRepository(database), productRepo, addonRepo)

	orderSvc := order.NewService(order.NewRepository(database, cfg.OrderNumberOffset), order.Deps{
		Addresses:   addressSvc,
		Shops:       shopRepo,
		Payments:    paymentSvc,
		Coupons:     couponSvc,
		Products:    productRepo,
		Addons:      addonRepo,
		Cart:        cartSvc,
		Publisher:   publisher,
		Metrics:     reg,
		DeliveryETA: cfg.DeliveryETA(),
	})

	api := httpapi.NewServer(httpapi.Services{
		Users:      userSvc,
		Addresses:  addressSvc,
		Payments:   paymentSvc,
		Shops:      shop.NewService(shopRepo),
		Products:   product.NewService(productRepo),
		Addons:     addon.NewService(addonRepo),
		Categories: category.NewService(category.NewRepository(database)),
		Coupons:    couponSvc,
		Orders:     orderSvc,
		Cart:       cartSvc,
	}, reg, httpapi.WithSecureCookies(cfg.AppEnv == "production"))

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)

	return &server{
		handler: setupRouter(cfg, api, tokens, userSvc, limiter, reg),
		limiter: limiter,
	}, nil
}

// setupRouter wraps the API in the middleware chain. The first wrapper
// applied runs last.
func setupRouter(
	cfg *config.Config,
	api http.Handler,
	tokens *auth.Manager,
	sessions middleware.SessionValidator,
	limiter *middleware.RateLimiter,
	reg *metrics.Registry,
) http.Handler {
	h := limiter.Middleware(api)
	h = logger.LoggingMiddleware(h)
	h = middleware.Auth(tokens, sessions, reg)(h)
	h = middleware.CORS(cfg.CORSOrigin)(h)
	h = logger.RequestIDMiddleware(h)
	return h
}

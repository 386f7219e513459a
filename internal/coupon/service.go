package coupon

import (
	"context"
	"errors"
	"strings"
	"time"

	"taza-be/internal/apperror"
	"taza-be/internal/logger"
	"taza-be/internal/metrics"
	"taza-be/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Validate(ctx context.Context, code string, orderAmount decimal.Decimal) (*ValidationResult, error)
	ValidateByID(ctx context.Context, id uuid.UUID, orderAmount decimal.Decimal) (*ValidationResult, error)
	Apply(ctx context.Context, id uuid.UUID) error
	Create(ctx context.Context, input CreateCouponInput) (*Coupon, error)
	ListActive(ctx context.Context) ([]*Coupon, error)
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	repo    Repository
	metrics *metrics.Registry
	now     func() time.Time
}

func NewService(repo Repository, reg *metrics.Registry, opts ...Option) Service {
	s := &service{repo: repo, metrics: reg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *service) Validate(ctx context.Context, code string, orderAmount decimal.Decimal) (*ValidationResult, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrCodeRequired
	}
	return s.validate(ctx, "Validate", orderAmount, func() (*Coupon, error) {
		return s.repo.GetActiveByCode(ctx, code)
	})
}

func (s *service) ValidateByID(ctx context.Context, id uuid.UUID, orderAmount decimal.Decimal) (*ValidationResult, error) {
	return s.validate(ctx, "ValidateByID", orderAmount, func() (*Coupon, error) {
		return s.repo.GetActiveByID(ctx, id)
	})
}

func (s *service) validate(
	ctx context.Context,
	method string,
	orderAmount decimal.Decimal,
	lookup func() (*Coupon, error),
) (*ValidationResult, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Coupon"),
		zap.String("method", method),
		zap.String("order_amount", orderAmount.String()),
	)

	if orderAmount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	c, err := lookup()
	if errors.Is(err, ErrCouponNotFound) {
		log.Info("coupon not found")
		return &ValidationResult{Valid: false, Discount: decimal.Zero, Err: err}, nil
	}
	if err != nil {
		log.Error("coupon lookup failed", zap.Error(err))
		return nil, err
	}

	discount, err := Evaluate(c, orderAmount, s.now())
	if err != nil {
		log.Info("coupon rejected", zap.String("code", c.Code), zap.Error(err))
		return &ValidationResult{Valid: false, Discount: decimal.Zero, Coupon: c, Err: err}, nil
	}

	return &ValidationResult{Valid: true, Discount: discount, Coupon: c}, nil
}

func (s *service) Apply(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Apply(ctx, id); err != nil {
		if apperror.KindOf(err) != apperror.KindCoupon {
			logger.FromCtx(ctx).Error("coupon apply failed",
				zap.String("service", "Coupon"),
				zap.String("coupon_id", id.String()),
				zap.Error(err),
			)
		}
		return err
	}
	s.metrics.Inc(metrics.CouponRedemptions)
	return nil
}

// ValidateCreateInput normalises input in place.
func ValidateCreateInput(in *CreateCouponInput) error {
	in.Code = NormalizeCode(in.Code)
	in.Description = utils.TrimPtr(in.Description)

	switch {
	case in.Code == "":
		return ErrCodeRequired
	case !in.DiscountType.Valid():
		return ErrInvalidType
	case !in.DiscountValue.IsPositive():
		return ErrInvalidValue
	case in.DiscountType == DiscountPercentage && in.DiscountValue.GreaterThan(hundred):
		return ErrPercentageTooHigh
	case in.MinOrderAmount.IsNegative():
		return ErrInvalidMinimum
	case in.MaxDiscount != nil && !in.MaxDiscount.IsPositive():
		return ErrInvalidMaxDisc
	case in.UsageLimit != nil && *in.UsageLimit <= 0:
		return ErrInvalidUsageLimit
	}

	if in.ValidFrom != nil && in.ValidUntil != nil && !in.ValidUntil.After(*in.ValidFrom) {
		return ErrInvalidWindow
	}
	return nil
}

func (s *service) Create(ctx context.Context, input CreateCouponInput) (*Coupon, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Coupon"),
		zap.String("method", "Create"),
	)

	if !utils.IsAdmin(ctx) {
		log.Warn("non-admin attempted to create coupon")
		return nil, ErrForbidden
	}

	if err := ValidateCreateInput(&input); err != nil {
		return nil, err
	}

	validFrom := s.now()
	if input.ValidFrom != nil {
		validFrom = *input.ValidFrom
	}
	if input.ValidUntil != nil && !input.ValidUntil.After(validFrom) {
		return nil, ErrInvalidWindow
	}

	c := &Coupon{
		ID:             uuid.New(),
		Code:           input.Code,
		Description:    input.Description,
		DiscountType:   input.DiscountType,
		DiscountValue:  input.DiscountValue,
		MinOrderAmount: input.MinOrderAmount,
		ValidFrom:      validFrom,
		ValidUntil:     input.ValidUntil,
		UsageLimit:     input.UsageLimit,
		IsActive:       true,
	}
	if input.MaxDiscount != nil {
		c.MaxDiscount = decimal.NewNullDecimal(*input.MaxDiscount)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	log.Info("coupon created", zap.String("code", c.Code))
	return c, nil
}

func (s *service) ListActive(ctx context.Context) ([]*Coupon, error) {
	return s.repo.ListActive(ctx, s.now())
}

package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"taza-be/internal/addon"
	"taza-be/internal/address"
	"taza-be/internal/coupon"
	"taza-be/internal/events"
	"taza-be/internal/logger"
	"taza-be/internal/metrics"
	"taza-be/internal/payment"
	"taza-be/internal/product"
	"taza-be/internal/shop"
	"taza-be/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID, userID uint) (*Order, error)
	ListOrders(ctx context.Context, userID uint) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, userID uint, status string, note *string) error
	GetTracking(ctx context.Context, orderID uuid.UUID, userID uint) (*Tracking, error)
	AssignDeliveryAgent(ctx context.Context, orderID uuid.UUID, userID uint, name, mobile string) error
}

type AddressLookup interface {
	Get(ctx context.Context, userID uint, addressID uuid.UUID) (*address.Address, error)
}

type ShopLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error)
}

type PaymentLookup interface {
	Get(ctx context.Context, userID uint, id uuid.UUID) (*payment.PaymentMethod, error)
}

type CouponValidator interface {
	ValidateByID(ctx context.Context, id uuid.UUID, orderAmount decimal.Decimal) (*coupon.ValidationResult, error)
}

type ProductLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

type AddonLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*addon.Addon, error)
}

type CartClearer interface {
	ClearCart(ctx context.Context, userID uint) error
}

// Deps are the collaborators CreateOrder and UpdateStatus reach into.
// Cart, Publisher and Metrics may be nil.
type Deps struct {
	Addresses   AddressLookup
	Shops       ShopLookup
	Payments    PaymentLookup
	Coupons     CouponValidator
	Products    ProductLookup
	Addons      AddonLookup
	Cart        CartClearer
	Publisher   events.Publisher
	Metrics     *metrics.Registry
	DeliveryETA time.Duration
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	repo Repository
	deps Deps
	now  func() time.Time
}

func NewService(repo Repository, deps Deps, opts ...Option) Service {
	if deps.Publisher == nil {
		deps.Publisher = events.NopPublisher{}
	}
	s := &service{repo: repo, deps: deps, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var subtotalTolerance = decimal.NewFromFloat(0.01)

// ValidateItems checks each line and returns the subtotal they add up to.
func ValidateItems(items []ItemInput) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, ErrNoItems
	}

	sum := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 {
			return decimal.Zero, ErrInvalidItemQty
		}
		if !it.Price.IsPositive() {
			return decimal.Zero, ErrInvalidItemPrice
		}
		if it.ProductID == nil && it.AddonID == nil && strings.TrimSpace(it.Name) == "" {
			return decimal.Zero, ErrItemRefRequired
		}
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum, nil
}

// scope widens owner scoping to every order for admins.
func scope(ctx context.Context, userID uint) uint {
	if utils.IsAdmin(ctx) {
		return AnyUser
	}
	return userID
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Order"),
		zap.String("method", "CreateOrder"),
		zap.Uint("user_id", input.UserID),
	)

	subtotal, err := ValidateItems(input.Items)
	if err != nil {
		log.Info("invalid items", zap.Error(err))
		return nil, err
	}
	if input.Subtotal.IsNegative() || input.DeliveryCharge.IsNegative() || input.Discount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if !input.Subtotal.IsZero() && input.Subtotal.Sub(subtotal).Abs().GreaterThan(subtotalTolerance) {
		log.Info("subtotal mismatch",
			zap.String("given", input.Subtotal.String()),
			zap.String("computed", subtotal.String()),
		)
		return nil, ErrSubtotalMismatch
	}

	if _, err := s.deps.Addresses.Get(ctx, input.UserID, input.AddressID); err != nil {
		return nil, err
	}

	o := &Order{
		ID:             uuid.New(),
		UserID:         input.UserID,
		AddressID:      input.AddressID,
		Subtotal:       subtotal,
		DeliveryCharge: input.DeliveryCharge,
		Status:         StatusPlaced,
	}

	if input.ShopID != nil {
		if _, err := s.deps.Shops.GetByID(ctx, *input.ShopID); err != nil {
			return nil, err
		}
		o.ShopID = uuid.NullUUID{UUID: *input.ShopID, Valid: true}
	}

	methodText := strings.TrimSpace(input.PaymentMethod)
	if input.PaymentMethodID != nil {
		pm, err := s.deps.Payments.Get(ctx, input.UserID, *input.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		o.PaymentMethodID = uuid.NullUUID{UUID: pm.ID, Valid: true}
		if methodText == "" {
			methodText = pm.Label
		}
	}
	if methodText != "" {
		o.PaymentMethod = &methodText
	}

	if o.Items, err = s.buildItems(ctx, o.ID, input.Items); err != nil {
		return nil, err
	}

	var couponErr error
	o.Discount = input.Discount
	if input.CouponID != nil {
		res, err := s.deps.Coupons.ValidateByID(ctx, *input.CouponID, subtotal)
		if err != nil {
			return nil, err
		}
		if res.Valid {
			o.Discount = decimal.Min(res.Discount, subtotal)
			o.CouponID = uuid.NullUUID{UUID: *input.CouponID, Valid: true}
		} else {
			log.Info("coupon not applied", zap.Error(res.Err))
			o.Discount = decimal.Zero
			couponErr = res.Err
		}
	}
	if o.Discount.GreaterThan(o.Subtotal.Add(o.DeliveryCharge)) {
		return nil, ErrDiscountTooLarge
	}
	o.Total = o.Subtotal.Add(o.DeliveryCharge).Sub(o.Discount)

	if o.OTP, err = utils.GenerateOTP(); err != nil {
		log.Error("otp generation failed", zap.Error(err))
		return nil, err
	}
	now := s.now()
	if s.deps.DeliveryETA > 0 {
		eta := now.Add(s.deps.DeliveryETA)
		o.DeliveryETA = &eta
	}

	placed := DefaultStatusMessage(StatusPlaced)
	o.Timeline = []TimelineEvent{{
		ID:          uuid.New(),
		OrderID:     o.ID,
		Stage:       string(StatusPlaced),
		Description: &placed,
		IsCompleted: true,
	}}

	err = s.repo.Create(ctx, o)
	if errors.Is(err, coupon.ErrCouponExhausted) && o.CouponID.Valid {
		// Lost the race for the last redemption; place the order at full price.
		log.Info("coupon exhausted at redemption, retrying without discount")
		couponErr = err
		o.CouponID = uuid.NullUUID{}
		o.Discount = decimal.Zero
		o.Total = o.Subtotal.Add(o.DeliveryCharge)
		err = s.repo.Create(ctx, o)
	}
	if err != nil {
		return nil, err
	}

	s.deps.Metrics.Inc(metrics.OrdersCreated)
	if o.CouponID.Valid {
		s.deps.Metrics.Inc(metrics.CouponRedemptions)
	}

	if s.deps.Cart != nil {
		if err := s.deps.Cart.ClearCart(ctx, input.UserID); err != nil {
			log.Warn("clear cart failed", zap.Error(err))
		}
	}

	log.Info("order placed",
		zap.String("order_id", o.ID.String()),
		zap.String("order_number", o.OrderNumber),
		zap.String("total", o.Total.String()),
	)
	return &CreateOrderResult{Order: o, CouponErr: couponErr}, nil
}

// buildItems snapshots each line, filling the name and weight from the
// catalog when the caller left them out.
func (s *service) buildItems(ctx context.Context, orderID uuid.UUID, in []ItemInput) ([]OrderItem, error) {
	items := make([]OrderItem, 0, len(in))
	for _, it := range in {
		item := OrderItem{
			ID:       uuid.New(),
			OrderID:  orderID,
			Name:     strings.TrimSpace(it.Name),
			Weight:   utils.TrimPtr(it.Weight),
			Price:    it.Price,
			Quantity: it.Quantity,
		}
		if it.ProductID != nil {
			item.ProductID = uuid.NullUUID{UUID: *it.ProductID, Valid: true}
		}
		if it.AddonID != nil {
			item.AddonID = uuid.NullUUID{UUID: *it.AddonID, Valid: true}
		}

		if item.Name == "" {
			switch {
			case it.ProductID != nil:
				p, err := s.deps.Products.GetByID(ctx, *it.ProductID)
				if err != nil {
					return nil, err
				}
				item.Name = p.Name
				if item.Weight == nil {
					item.Weight = p.Weight
				}
			case it.AddonID != nil:
				a, err := s.deps.Addons.GetByID(ctx, *it.AddonID)
				if err != nil {
					return nil, err
				}
				item.Name = a.Name
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *service) GetOrderByID(ctx context.Context, orderID uuid.UUID, userID uint) (*Order, error) {
	return s.repo.GetByID(ctx, orderID, scope(ctx, userID))
}

func (s *service) ListOrders(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) UpdateStatus(ctx context.Context, orderID uuid.UUID, userID uint, status string, note *string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Order"),
		zap.String("method", "UpdateStatus"),
		zap.String("order_id", orderID.String()),
		zap.String("status", status),
	)

	st, ok := ParseStatus(status)
	if !ok {
		return ErrInvalidStatus
	}

	note = utils.TrimPtr(note)
	desc := DefaultStatusMessage(st)
	if note != nil {
		desc = *note
	}

	u := &StatusUpdate{
		OrderID: orderID,
		UserID:  scope(ctx, userID),
		Status:  st,
		Note:    note,
		Event: TimelineEvent{
			ID:          uuid.New(),
			OrderID:     orderID,
			Stage:       TimelineStageFor(st),
			Description: &desc,
			IsCompleted: st != StatusCancelled,
		},
	}

	change, err := s.repo.UpdateStatus(ctx, u)
	if err != nil {
		return err
	}
	s.deps.Metrics.Inc(metrics.OrderStatusUpdates)

	evt := events.OrderStatusEvent{
		OrderID:     orderID.String(),
		OrderNumber: change.OrderNumber,
		UserID:      change.OwnerID,
		OldStatus:   string(change.OldStatus),
		NewStatus:   string(st),
		Note:        utils.PtrString(note),
		ChangedAt:   s.now(),
	}
	if err := s.deps.Publisher.PublishOrderStatus(ctx, evt); err != nil {
		log.Warn("publish status event failed", zap.Error(err))
	}

	log.Info("order status updated", zap.String("old_status", string(change.OldStatus)))
	return nil
}

func (s *service) GetTracking(ctx context.Context, orderID uuid.UUID, userID uint) (*Tracking, error) {
	o, err := s.GetOrderByID(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	return &Tracking{Order: o, Progress: BuildProgress(string(o.Status), o.Timeline)}, nil
}

func (s *service) AssignDeliveryAgent(ctx context.Context, orderID uuid.UUID, userID uint, name, mobile string) error {
	name = strings.TrimSpace(name)
	mobile = utils.NormalizePhone(mobile)
	if name == "" {
		return ErrAgentNameRequired
	}
	if mobile == "" {
		return ErrAgentMobile
	}

	if err := s.repo.AssignAgent(ctx, orderID, scope(ctx, userID), name, mobile); err != nil {
		return err
	}
	logger.FromCtx(ctx).Info("delivery agent assigned",
		zap.String("service", "Order"),
		zap.String("order_id", orderID.String()),
	)
	return nil
}

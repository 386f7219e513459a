package httpapi

import (
	"context"

	"taza-be/internal/cart"
	"taza-be/internal/coupon"
	"taza-be/internal/order"
	"taza-be/internal/product"
	"taza-be/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) CreateOrder(ctx context.Context, in order.CreateOrderInput) (*order.CreateOrderResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.CreateOrderResult), args.Error(1)
}

func (m *MockOrderService) GetOrderByID(ctx context.Context, id uuid.UUID, userID uint) (*order.Order, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, userID uint) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, userID uint, status string, note *string) error {
	return m.Called(ctx, id, userID, status, note).Error(0)
}

func (m *MockOrderService) GetTracking(ctx context.Context, id uuid.UUID, userID uint) (*order.Tracking, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Tracking), args.Error(1)
}

func (m *MockOrderService) AssignDeliveryAgent(ctx context.Context, id uuid.UUID, userID uint, name, mobile string) error {
	return m.Called(ctx, id, userID, name, mobile).Error(0)
}

type MockCouponService struct{ mock.Mock }

func (m *MockCouponService) Validate(ctx context.Context, code string, amount decimal.Decimal) (*coupon.ValidationResult, error) {
	args := m.Called(ctx, code, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.ValidationResult), args.Error(1)
}

func (m *MockCouponService) ValidateByID(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*coupon.ValidationResult, error) {
	args := m.Called(ctx, id, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.ValidationResult), args.Error(1)
}

func (m *MockCouponService) Apply(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCouponService) Create(ctx context.Context, in coupon.CreateCouponInput) (*coupon.Coupon, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

func (m *MockCouponService) ListActive(ctx context.Context) ([]*coupon.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coupon.Coupon), args.Error(1)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) SignUp(ctx context.Context, in user.SignUpInput) (*user.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.AuthResult), args.Error(1)
}

func (m *MockUserService) SignIn(ctx context.Context, in user.SignInInput) (*user.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.AuthResult), args.Error(1)
}

func (m *MockUserService) SignOut(ctx context.Context, userID uint, sessionID string) error {
	return m.Called(ctx, userID, sessionID).Error(0)
}

func (m *MockUserService) Me(ctx context.Context, userID uint) (*user.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID uint) (*user.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, p user.UpdateProfileParams) (*user.Profile, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

func (m *MockUserService) ValidateSession(ctx context.Context, sessionID string, userID uint) error {
	return m.Called(ctx, sessionID, userID).Error(0)
}

type MockProductService struct{ mock.Mock }

func (m *MockProductService) List(ctx context.Context, p product.ListParams) ([]*product.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockCartService struct{ mock.Mock }

func (m *MockCartService) GetCart(ctx context.Context, userID uint) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) AddToCart(ctx context.Context, userID uint, p cart.AddToCartParams) (*cart.CartItem, error) {
	args := m.Called(ctx, userID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartItem), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, userID uint, id uuid.UUID, qty int) error {
	return m.Called(ctx, userID, id, qty).Error(0)
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, userID uint, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockCartService) ClearCart(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

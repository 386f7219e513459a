package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByUser(ctx context.Context, userID uint) ([]*PaymentMethod, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*PaymentMethod), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID, userID uint) (*PaymentMethod, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaymentMethod), args.Error(1)
}

func (m *MockRepository) CountByUser(ctx context.Context, userID uint) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, pm *PaymentMethod) error {
	return m.Called(ctx, pm).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID, userID uint) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockRepository) SetDefault(ctx context.Context, userID uint, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstMethodBecomesDefault", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("CountByUser", ctx, uint(1)).Return(0, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(pm *PaymentMethod) bool {
			return pm.IsDefault && pm.Type == TypeCOD && pm.Label == "Cash on Delivery"
		})).Return(nil)

		pm, err := svc.Create(ctx, 1, CreatePaymentMethodInput{Type: "COD"})
		require.NoError(t, err)
		assert.True(t, pm.IsDefault)
		repo.AssertExpectations(t)
	})

	t.Run("SecondMethodNotDefault", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("CountByUser", ctx, uint(1)).Return(2, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(pm *PaymentMethod) bool {
			return !pm.IsDefault && pm.Label == "Card •••• 1111" && pm.UPIID == nil
		})).Return(nil)

		_, err := svc.Create(ctx, 1, CreatePaymentMethodInput{
			Type:  TypeCard,
			Last4: strPtr("1111"),
			UPIID: strPtr("ignored@upi"),
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("ExplicitDefaultSkipsCount", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.Anything).Return(nil)

		pm, err := svc.Create(ctx, 1, CreatePaymentMethodInput{Type: TypeUPI, UPIID: strPtr("asha@oksbi"), SetAsDefault: true})
		require.NoError(t, err)
		assert.True(t, pm.IsDefault)
		assert.Equal(t, "asha@oksbi", pm.Label)
		repo.AssertNotCalled(t, "CountByUser", mock.Anything, mock.Anything)
	})

	t.Run("CountFails", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("CountByUser", ctx, uint(1)).Return(0, errors.New("db down"))

		_, err := svc.Create(ctx, 1, CreatePaymentMethodInput{Type: TypeWallet})
		assert.Error(t, err)
	})
}

func TestValidateCreateInput(t *testing.T) {
	cases := []struct {
		name string
		in   CreatePaymentMethodInput
		err  error
	}{
		{"UnknownType", CreatePaymentMethodInput{Type: "cheque"}, ErrInvalidType},
		{"CardWithoutLast4", CreatePaymentMethodInput{Type: TypeCard}, ErrInvalidLast4},
		{"CardShortLast4", CreatePaymentMethodInput{Type: TypeCard, Last4: strPtr("12")}, ErrInvalidLast4},
		{"CardLettersLast4", CreatePaymentMethodInput{Type: TypeCard, Last4: strPtr("12ab")}, ErrInvalidLast4},
		{"UPIWithoutAt", CreatePaymentMethodInput{Type: TypeUPI, UPIID: strPtr("ravi")}, ErrInvalidUPIID},
		{"UPITrailingAt", CreatePaymentMethodInput{Type: TypeUPI, UPIID: strPtr("ravi@")}, ErrInvalidUPIID},
		{"LongLabel", CreatePaymentMethodInput{Type: TypeCOD, Label: "this label is far too long to be shown anywhere in the app"}, ErrLabelTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.in
			assert.ErrorIs(t, ValidateCreateInput(&in), tc.err)
		})
	}

	t.Run("CODDropsDetails", func(t *testing.T) {
		in := CreatePaymentMethodInput{Type: TypeCOD, Last4: strPtr("1234"), UPIID: strPtr("a@b")}
		require.NoError(t, ValidateCreateInput(&in))
		assert.Nil(t, in.Last4)
		assert.Nil(t, in.UPIID)
	})
}

func TestService_DeleteAndDefault(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)
	id := uuid.New()

	repo.On("Delete", ctx, id, uint(2)).Return(ErrPaymentMethodNotFound)
	repo.On("SetDefault", ctx, uint(2), id).Return(nil)

	assert.ErrorIs(t, svc.Delete(ctx, 2, id), ErrPaymentMethodNotFound)
	assert.NoError(t, svc.SetDefault(ctx, 2, id))

	res := ToResponses([]*PaymentMethod{{ID: id, Type: TypeCOD, Label: "Cash on Delivery"}})
	assert.Equal(t, "cod", res[0].Type)
}

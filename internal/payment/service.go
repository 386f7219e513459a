package payment

import (
	"context"
	"strings"

	"taza-be/internal/logger"
	"taza-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxLabelLength = 50

// Service manages a user's saved payment methods. Every operation is scoped
// to userID.
type Service interface {
	List(ctx context.Context, userID uint) ([]*PaymentMethod, error)
	Get(ctx context.Context, userID uint, id uuid.UUID) (*PaymentMethod, error)
	Create(ctx context.Context, userID uint, input CreatePaymentMethodInput) (*PaymentMethod, error)
	Delete(ctx context.Context, userID uint, id uuid.UUID) error
	SetDefault(ctx context.Context, userID uint, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID uint) ([]*PaymentMethod, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID uint, id uuid.UUID) (*PaymentMethod, error) {
	return s.repo.GetByID(ctx, id, userID)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func defaultLabel(in CreatePaymentMethodInput) string {
	switch in.Type {
	case TypeCOD:
		return "Cash on Delivery"
	case TypeCard:
		return "Card •••• " + *in.Last4
	case TypeUPI:
		return *in.UPIID
	default:
		return "Wallet"
	}
}

// ValidateCreateInput normalises input in place. Cash on delivery carries no
// details; cards need last4 and UPI needs an ID.
func ValidateCreateInput(in *CreatePaymentMethodInput) error {
	in.Type = MethodType(strings.ToLower(strings.TrimSpace(string(in.Type))))
	in.Label = strings.TrimSpace(in.Label)
	in.Last4 = utils.TrimPtr(in.Last4)
	in.UPIID = utils.TrimPtr(in.UPIID)

	if !in.Type.Valid() {
		return ErrInvalidType
	}

	switch in.Type {
	case TypeCard:
		if in.Last4 == nil || len(*in.Last4) != 4 || !isDigits(*in.Last4) {
			return ErrInvalidLast4
		}
		in.UPIID = nil
	case TypeUPI:
		if in.UPIID == nil || strings.Count(*in.UPIID, "@") != 1 ||
			strings.HasPrefix(*in.UPIID, "@") || strings.HasSuffix(*in.UPIID, "@") {
			return ErrInvalidUPIID
		}
		in.Last4 = nil
	default:
		in.Last4 = nil
		in.UPIID = nil
	}

	if len(in.Label) > maxLabelLength {
		return ErrLabelTooLong
	}
	if in.Label == "" {
		in.Label = defaultLabel(*in)
	}
	return nil
}

func (s *service) Create(ctx context.Context, userID uint, input CreatePaymentMethodInput) (*PaymentMethod, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Payment"),
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
	)

	if err := ValidateCreateInput(&input); err != nil {
		return nil, err
	}

	isDefault := input.SetAsDefault
	if !isDefault {
		count, err := s.repo.CountByUser(ctx, userID)
		if err != nil {
			log.Error("count payment methods failed", zap.Error(err))
			return nil, err
		}
		isDefault = count == 0
	}

	pm := &PaymentMethod{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      input.Type,
		Label:     input.Label,
		Last4:     input.Last4,
		UPIID:     input.UPIID,
		IsDefault: isDefault,
	}
	if err := s.repo.Create(ctx, pm); err != nil {
		return nil, err
	}

	log.Info("payment method created",
		zap.String("payment_method_id", pm.ID.String()),
		zap.String("type", string(pm.Type)),
	)
	return pm, nil
}

func (s *service) Delete(ctx context.Context, userID uint, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *service) SetDefault(ctx context.Context, userID uint, id uuid.UUID) error {
	return s.repo.SetDefault(ctx, userID, id)
}

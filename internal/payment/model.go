package payment

import (
	"time"

	"github.com/google/uuid"
)

type MethodType string

const (
	TypeCard   MethodType = "card"
	TypeUPI    MethodType = "upi"
	TypeCOD    MethodType = "cod"
	TypeWallet MethodType = "wallet"
)

func (t MethodType) Valid() bool {
	switch t {
	case TypeCard, TypeUPI, TypeCOD, TypeWallet:
		return true
	}
	return false
}

type PaymentMethod struct {
	ID        uuid.UUID
	UserID    uint
	Type      MethodType
	Label     string
	Last4     *string
	UPIID     *string
	IsDefault bool
	CreatedAt time.Time
}

type CreatePaymentMethodInput struct {
	Type         MethodType
	Label        string
	Last4        *string
	UPIID        *string
	SetAsDefault bool
}

package order

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToResponse(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	productID := uuid.New()
	method := "Cash on Delivery"
	agent := "Ravi"

	o := &Order{
		ID:                uuid.New(),
		OrderNumber:       "#TAZ1001",
		AddressID:         uuid.New(),
		Subtotal:          decimal.RequireFromString("498.00"),
		DeliveryCharge:    decimal.NewFromInt(40),
		Discount:          decimal.Zero,
		Total:             decimal.RequireFromString("538.00"),
		Status:            StatusOutForDelivery,
		PaymentMethod:     &method,
		OTP:               "482913",
		DeliveryAgentName: &agent,
		CreatedAt:         now,
		UpdatedAt:         now,
		Items: []OrderItem{
			{ID: uuid.New(), ProductID: uuid.NullUUID{UUID: productID, Valid: true}, Name: "Chicken Curry Cut", Price: decimal.NewFromInt(249), Quantity: 2},
		},
		Timeline: []TimelineEvent{
			{ID: uuid.New(), Stage: "Order Placed", IsCompleted: true, CreatedAt: now},
		},
	}

	res := ToResponse(o)

	assert.Equal(t, "#TAZ1001", res.OrderNumber)
	assert.Equal(t, "Out for Delivery", res.Status)
	assert.Equal(t, 538.0, res.Total)
	assert.Nil(t, res.ShopID)
	assert.Nil(t, res.CouponID)

	require.Len(t, res.Items, 1)
	require.NotNil(t, res.Items[0].ProductID)
	assert.Equal(t, productID.String(), *res.Items[0].ProductID)
	assert.Nil(t, res.Items[0].AddonID)
	assert.Equal(t, 498.0, res.Items[0].LineTotal)

	require.Len(t, res.PaymentInstructions, 4)
	assert.Equal(t, "Keep ₹538.00 ready in cash when the delivery partner arrives", res.PaymentInstructions[1])
	assert.Contains(t, res.PaymentInstructions[2], "482913")

	require.NotNil(t, res.DeliveryAgent)
	assert.Equal(t, "Ravi", res.DeliveryAgent.Name)
	assert.Empty(t, res.DeliveryAgent.Mobile)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"orderNumber":"#TAZ1001"`)
	assert.NotContains(t, string(raw), `"shopId"`)
}

func TestToResponse_NoPaymentMethod(t *testing.T) {
	res := ToResponse(&Order{ID: uuid.New(), Status: StatusPlaced})
	assert.Nil(t, res.PaymentInstructions)
	assert.Nil(t, res.DeliveryAgent)
	assert.NotNil(t, res.Items)
}

func TestToTrackingResponse(t *testing.T) {
	o := &Order{ID: uuid.New(), Status: StatusPreparing}
	res := ToTrackingResponse(&Tracking{Order: o, Progress: BuildProgress("Preparing", nil)})

	require.Len(t, res.Stages, 2)
	assert.Equal(t, "Order Ready", res.Stages[1].Name)
	assert.True(t, res.Stages[1].Current)
	assert.False(t, res.Cancelled)
	assert.Equal(t, "Preparing", res.Order.Status)
}

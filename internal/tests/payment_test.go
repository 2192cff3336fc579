package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pos-register/internal/domain"
	"pos-register/internal/service"
)

func pendingOrder(total string, items int) *domain.Order {
	order := &domain.Order{
		OrderStatus: domain.Pending,
		Total:       decimal.RequireFromString(total),
	}
	for i := 0; i < items; i++ {
		order.Items = append(order.Items, domain.OrderItem{MenuItemID: i + 1, Quantity: 1})
	}
	return order
}

func TestPaymentProcessor_Validate(t *testing.T) {
	tests := []struct {
		name       string
		order      *domain.Order
		tendered   string
		wantErr    error
		wantChange string
	}{
		{
			name:     "tender below total",
			order:    pendingOrder("10.00", 1),
			tendered: "9.99",
			wantErr:  domain.ErrInsufficientPayment,
		},
		{
			name:       "tender exactly total",
			order:      pendingOrder("10.00", 1),
			tendered:   "10.00",
			wantChange: "0.00",
		},
		{
			name:       "tender above total",
			order:      pendingOrder("12.50", 2),
			tendered:   "17.50",
			wantChange: "5.00",
		},
		{
			name:     "empty order",
			order:    pendingOrder("0.00", 0),
			tendered: "10.00",
			wantErr:  domain.ErrEmptyOrder,
		},
		{
			name: "completed order",
			order: &domain.Order{
				OrderStatus: domain.Completed,
				Total:       decimal.RequireFromString("10.00"),
				Items:       []domain.OrderItem{{MenuItemID: 1, Quantity: 1}},
			},
			tendered: "10.00",
			wantErr:  domain.ErrInvalidState,
		},
	}

	processor := service.NewPaymentProcessor()
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			payment, err := processor.Validate(testCase.order, decimal.RequireFromString(testCase.tendered))

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, payment.AmountPaid.Equal(decimal.RequireFromString(testCase.tendered)))
			assert.Equal(t, testCase.wantChange, payment.Change.StringFixed(2))
		})
	}
}

func TestPaymentProcessor_NoDecimalDrift(t *testing.T) {
	// Repeated decimal fractions must produce exact change.
	order := pendingOrder("0.30", 3)
	payment, err := service.NewPaymentProcessor().Validate(order, decimal.RequireFromString("1.00"))

	assert.NoError(t, err)
	assert.Equal(t, "0.70", payment.Change.StringFixed(2))
}

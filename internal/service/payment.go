package service

import (
	"github.com/shopspring/decimal"

	"pos-register/internal/domain"
)

// Payment is the immutable result of a successful tender validation.
type Payment struct {
	AmountPaid decimal.Decimal
	Change     decimal.Decimal
}

// PaymentProcessor validates tendered cash against a pending order.
type PaymentProcessor struct{}

func NewPaymentProcessor() *PaymentProcessor {
	return &PaymentProcessor{}
}

// Validate checks that the order can be paid and that the tender covers the
// total. All arithmetic is fixed-point; change is exact.
func (p *PaymentProcessor) Validate(order *domain.Order, amountTendered decimal.Decimal) (Payment, error) {
	if order.OrderStatus != domain.Pending {
		return Payment{}, domain.ErrInvalidState
	}
	if len(order.Items) == 0 {
		return Payment{}, domain.ErrEmptyOrder
	}
	if amountTendered.Cmp(order.Total) < 0 {
		return Payment{}, domain.ErrInsufficientPayment
	}
	return Payment{
		AmountPaid: amountTendered,
		Change:     amountTendered.Sub(order.Total),
	}, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"pos-register/internal/domain"
)

// CheckoutItem is one requested line on a checkout.
type CheckoutItem struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// CheckoutRequest carries everything the cashier entered for one order.
type CheckoutRequest struct {
	UserID          int              `json:"user_id"`
	OrderType       domain.OrderType `json:"order_type"`
	Items           []CheckoutItem   `json:"items"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerName    string           `json:"customer_name"`
	CustomerAddress string           `json:"customer_address"`
	AmountTendered  decimal.Decimal  `json:"amount_tendered"`
}

// RegisterService drives a complete checkout: build the order from the
// catalog, resolve the delivery customer, validate the tender and commit.
type RegisterService struct {
	catalog   CatalogRepository
	resolver  *CustomerResolver
	payments  *PaymentProcessor
	committer *OrderCommitter
}

func NewRegisterService(catalog CatalogRepository, resolver *CustomerResolver, payments *PaymentProcessor, committer *OrderCommitter) *RegisterService {
	return &RegisterService{
		catalog:   catalog,
		resolver:  resolver,
		payments:  payments,
		committer: committer,
	}
}

func (s *RegisterService) PlaceOrder(ctx context.Context, req CheckoutRequest) (*domain.Order, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: operator is required", domain.ErrValidation)
	}

	builder := NewOrderBuilder(req.UserID)
	if err := builder.SetOrderType(req.OrderType); err != nil {
		return nil, err
	}

	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for menu item %d", domain.ErrValidation, line.MenuItemID)
		}
		item, err := s.catalog.GetMenuItem(line.MenuItemID)
		if err != nil {
			return nil, err
		}
		for n := 0; n < line.Quantity; n++ {
			if _, err := builder.AddItem(*item); err != nil {
				return nil, err
			}
		}
	}

	if req.OrderType == domain.Delivery {
		customer, err := s.resolver.Resolve(req.CustomerPhone, req.CustomerName, req.CustomerAddress)
		if err != nil {
			return nil, err
		}
		if err := builder.AttachCustomer(customer); err != nil {
			return nil, err
		}
	}

	payment, err := s.payments.Validate(builder.Order(), req.AmountTendered)
	if err != nil {
		return nil, err
	}

	return s.committer.Commit(ctx, builder.Order(), payment)
}

package service

import (
	"fmt"
	"strings"

	"pos-register/internal/domain"
)

// CustomerResolver maps a phone number to a customer identity for delivery
// orders. It never persists; creation and updates happen inside the order
// commit.
type CustomerResolver struct {
	customers CustomerStore
}

func NewCustomerResolver(customers CustomerStore) *CustomerResolver {
	return &CustomerResolver{customers: customers}
}

// Resolve finds the active customer with the given phone, refreshing name and
// address from the values supplied at the register. The phone itself is the
// lookup key and is never altered here. An unknown phone yields a new,
// not-yet-persisted customer with a zero ID.
func (r *CustomerResolver) Resolve(phone, suppliedName, suppliedAddress string) (*domain.Customer, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone number is required", domain.ErrValidation)
	}

	existing, err := r.customers.FindActiveByPhone(phone)
	if err != nil {
		return nil, fmt.Errorf("%w: customer lookup: %v", domain.ErrPersistence, err)
	}
	if existing != nil {
		// The register always has the latest details.
		existing.Name = suppliedName
		existing.Address = suppliedAddress
		return existing, nil
	}

	return &domain.Customer{
		Audit:   domain.Audit{IsActive: true},
		Name:    suppliedName,
		Address: suppliedAddress,
		Phone:   phone,
	}, nil
}

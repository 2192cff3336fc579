package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pos-register/internal/domain"
	"pos-register/internal/mocks"
	"pos-register/internal/service"
)

func TestCustomerResolver_BlankPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
	}{
		{name: "empty", phone: ""},
		{name: "whitespace only", phone: "   "},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := new(mocks.CustomerStore)
			resolver := service.NewCustomerResolver(store)

			customer, err := resolver.Resolve(testCase.phone, "Alex", "1 Main St")

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Nil(t, customer)
			store.AssertNotCalled(t, "FindActiveByPhone")
		})
	}
}

func TestCustomerResolver_UnknownPhoneReturnsNewCustomer(t *testing.T) {
	store := new(mocks.CustomerStore)
	store.On("FindActiveByPhone", "555-0101").Return(nil, nil).Once()
	resolver := service.NewCustomerResolver(store)

	customer, err := resolver.Resolve("555-0101", "Alex", "1 Main St")

	assert.NoError(t, err)
	assert.Equal(t, 0, customer.ID, "new customer must not be persisted yet")
	assert.Equal(t, "Alex", customer.Name)
	assert.Equal(t, "1 Main St", customer.Address)
	assert.Equal(t, "555-0101", customer.Phone)
	assert.True(t, customer.IsActive)
	store.AssertExpectations(t)
}

func TestCustomerResolver_ExistingCustomerRefreshed(t *testing.T) {
	existing := &domain.Customer{
		Audit:   domain.Audit{ID: 42, IsActive: true},
		Name:    "Old Name",
		Address: "Old Address",
		Phone:   "555-0101",
	}
	store := new(mocks.CustomerStore)
	store.On("FindActiveByPhone", "555-0101").Return(existing, nil).Once()
	resolver := service.NewCustomerResolver(store)

	customer, err := resolver.Resolve("555-0101", "New Name", "New Address")

	assert.NoError(t, err)
	assert.Equal(t, 42, customer.ID)
	assert.Equal(t, "New Name", customer.Name)
	assert.Equal(t, "New Address", customer.Address)
	// The lookup key is never altered by a resolve.
	assert.Equal(t, "555-0101", customer.Phone)
	store.AssertExpectations(t)
}

func TestCustomerResolver_TrimsPhoneBeforeLookup(t *testing.T) {
	store := new(mocks.CustomerStore)
	store.On("FindActiveByPhone", "555-0101").Return(nil, nil).Once()
	resolver := service.NewCustomerResolver(store)

	customer, err := resolver.Resolve("  555-0101  ", "Alex", "1 Main St")

	assert.NoError(t, err)
	assert.Equal(t, "555-0101", customer.Phone)
	store.AssertExpectations(t)
}

func TestCustomerResolver_StoreError(t *testing.T) {
	store := new(mocks.CustomerStore)
	store.On("FindActiveByPhone", "555-0101").Return(nil, assert.AnError).Once()
	resolver := service.NewCustomerResolver(store)

	customer, err := resolver.Resolve("555-0101", "Alex", "1 Main St")

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Nil(t, customer)
}

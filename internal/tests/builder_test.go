package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pos-register/internal/domain"
	"pos-register/internal/service"
)

func menuItem(id int, name, price string) domain.MenuItem {
	return domain.MenuItem{
		Audit: domain.Audit{ID: id, IsActive: true},
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func TestOrderBuilder_AddItemMergesLines(t *testing.T) {
	builder := service.NewOrderBuilder(1)
	coffee := menuItem(10, "Coffee", "2.50")

	total, err := builder.AddItem(coffee)
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("2.50")))

	total, err = builder.AddItem(coffee)
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("5.00")))

	order := builder.Order()
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestOrderBuilder_TotalNeverStale(t *testing.T) {
	builder := service.NewOrderBuilder(1)
	tea := menuItem(1, "Tea", "0.10")
	cake := menuItem(2, "Cake", "3.75")

	steps := []func() (decimal.Decimal, error){
		func() (decimal.Decimal, error) { return builder.AddItem(tea) },
		func() (decimal.Decimal, error) { return builder.AddItem(tea) },
		func() (decimal.Decimal, error) { return builder.AddItem(tea) },
		func() (decimal.Decimal, error) { return builder.AddItem(cake) },
		func() (decimal.Decimal, error) { return builder.RemoveItem(cake.ID) },
		func() (decimal.Decimal, error) { return builder.RemoveItem(tea.ID) },
	}

	for i, step := range steps {
		total, err := step()
		assert.NoError(t, err)

		expected := decimal.Zero
		for _, line := range builder.Order().Items {
			expected = expected.Add(line.LineTotal())
		}
		assert.True(t, total.Equal(expected), "step %d: total %s != line sum %s", i, total, expected)
		assert.True(t, builder.Total().Equal(expected))
	}
}

func TestOrderBuilder_DecimalExactness(t *testing.T) {
	// Three items at 0.10 must total exactly 0.30, no float drift.
	builder := service.NewOrderBuilder(1)
	tea := menuItem(1, "Tea", "0.10")

	var total decimal.Decimal
	for i := 0; i < 3; i++ {
		total, _ = builder.AddItem(tea)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("0.30")))
	assert.Equal(t, "0.30", total.StringFixed(2))
}

func TestOrderBuilder_LinesSnapshotCatalogValues(t *testing.T) {
	builder := service.NewOrderBuilder(1)
	coffee := menuItem(10, "Coffee", "2.50")
	builder.AddItem(coffee)

	// A later menu edit never touches the entered line.
	coffee.Name = "Espresso"
	coffee.Price = decimal.RequireFromString("9.99")

	line := builder.Order().Items[0]
	assert.Equal(t, "Coffee", line.ItemName)
	assert.Equal(t, "2.50", line.Price.StringFixed(2))
	assert.True(t, builder.Total().Equal(decimal.RequireFromString("2.50")))
}

func TestOrderBuilder_RemoveItem(t *testing.T) {
	builder := service.NewOrderBuilder(1)
	coffee := menuItem(10, "Coffee", "2.50")
	builder.AddItem(coffee)
	builder.AddItem(coffee)

	total, err := builder.RemoveItem(coffee.ID)
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("2.50")))
	assert.Equal(t, 1, builder.Order().Items[0].Quantity)

	total, err = builder.RemoveItem(coffee.ID)
	assert.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.Empty(t, builder.Order().Items)

	_, err = builder.RemoveItem(coffee.ID)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderBuilder_SetOrderTypeClearsCustomer(t *testing.T) {
	builder := service.NewOrderBuilder(1)
	assert.NoError(t, builder.SetOrderType(domain.Delivery))

	customer := &domain.Customer{Audit: domain.Audit{ID: 7, IsActive: true}, Phone: "555-0101"}
	assert.NoError(t, builder.AttachCustomer(customer))
	assert.NotNil(t, builder.Order().Customer)
	assert.Equal(t, 7, *builder.Order().CustomerID)

	assert.NoError(t, builder.SetOrderType(domain.Takeaway))
	assert.Nil(t, builder.Order().Customer)
	assert.Nil(t, builder.Order().CustomerID)

	// Switching back does not restore the previous customer.
	assert.NoError(t, builder.SetOrderType(domain.Delivery))
	assert.Nil(t, builder.Order().Customer)
}

func TestOrderBuilder_AttachCustomerRequiresDelivery(t *testing.T) {
	builder := service.NewOrderBuilder(1)
	err := builder.AttachCustomer(&domain.Customer{Phone: "555-0101"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestOrderBuilder_MutationsRequirePending(t *testing.T) {
	builder := service.NewOrderBuilder(1)
	builder.AddItem(menuItem(1, "Tea", "0.10"))
	builder.Order().OrderStatus = domain.Completed

	_, err := builder.AddItem(menuItem(2, "Cake", "3.75"))
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = builder.RemoveItem(1)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	assert.ErrorIs(t, builder.SetOrderType(domain.Delivery), domain.ErrInvalidState)
	assert.ErrorIs(t, builder.Cancel(), domain.ErrInvalidState)
}

func TestOrderBuilder_Cancel(t *testing.T) {
	builder := service.NewOrderBuilder(1)
	builder.AddItem(menuItem(1, "Tea", "0.10"))

	assert.NoError(t, builder.Cancel())
	assert.Equal(t, domain.Cancelled, builder.Order().OrderStatus)
	// Items stay as entered.
	assert.Len(t, builder.Order().Items, 1)
}

package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pos-register/internal/domain"
)

// OrderBuilder owns the mutable state of one in-progress order. It is used by
// a single register session at a time; callers never recompute totals
// themselves — every mutation returns the new total.
type OrderBuilder struct {
	order domain.Order
}

// NewOrderBuilder starts a Pending takeaway order with no items for the given
// operator.
func NewOrderBuilder(userID int) *OrderBuilder {
	return &OrderBuilder{
		order: domain.Order{
			OrderType:   domain.Takeaway,
			OrderStatus: domain.Pending,
			Total:       decimal.Zero,
			UserID:      userID,
		},
	}
}

// AddItem adds one unit of the menu item, merging into an existing line if the
// item is already on the order. The current catalog name and price are copied
// into the line; later menu edits never touch it.
func (b *OrderBuilder) AddItem(item domain.MenuItem) (decimal.Decimal, error) {
	if b.order.OrderStatus != domain.Pending {
		return b.order.Total, domain.ErrInvalidState
	}
	merged := false
	for i := range b.order.Items {
		if b.order.Items[i].MenuItemID == item.ID {
			b.order.Items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		b.order.Items = append(b.order.Items, domain.OrderItem{
			MenuItemID: item.ID,
			ItemName:   item.Name,
			Price:      item.Price,
			Quantity:   1,
		})
	}
	return b.recalculate(), nil
}

// RemoveItem decrements the line for the menu item, dropping the line when the
// quantity reaches zero.
func (b *OrderBuilder) RemoveItem(menuItemID int) (decimal.Decimal, error) {
	if b.order.OrderStatus != domain.Pending {
		return b.order.Total, domain.ErrInvalidState
	}
	for i := range b.order.Items {
		if b.order.Items[i].MenuItemID != menuItemID {
			continue
		}
		if b.order.Items[i].Quantity > 1 {
			b.order.Items[i].Quantity--
		} else {
			b.order.Items = append(b.order.Items[:i], b.order.Items[i+1:]...)
		}
		return b.recalculate(), nil
	}
	return b.order.Total, fmt.Errorf("%w: menu item %d is not on the order", domain.ErrValidation, menuItemID)
}

// SetOrderType changes the order type. Switching away from Delivery discards
// the attached customer; switching back does not restore it.
func (b *OrderBuilder) SetOrderType(t domain.OrderType) error {
	if b.order.OrderStatus != domain.Pending {
		return domain.ErrInvalidState
	}
	b.order.OrderType = t
	if t != domain.Delivery {
		b.order.CustomerID = nil
		b.order.Customer = nil
	}
	return nil
}

// AttachCustomer links the resolved customer to a Delivery order.
func (b *OrderBuilder) AttachCustomer(c *domain.Customer) error {
	if b.order.OrderStatus != domain.Pending {
		return domain.ErrInvalidState
	}
	if b.order.OrderType != domain.Delivery {
		return fmt.Errorf("%w: customer can only be attached to a delivery order", domain.ErrInvalidState)
	}
	b.order.Customer = c
	if c != nil && c.ID != 0 {
		id := c.ID
		b.order.CustomerID = &id
	} else {
		b.order.CustomerID = nil
	}
	return nil
}

// Cancel marks the order Cancelled. Line items are left as entered; a
// cancelled order is never committed as a sale and is excluded from summaries.
func (b *OrderBuilder) Cancel() error {
	if b.order.OrderStatus != domain.Pending {
		return domain.ErrInvalidState
	}
	b.order.OrderStatus = domain.Cancelled
	return nil
}

// Total returns the current order total.
func (b *OrderBuilder) Total() decimal.Decimal {
	return b.order.Total
}

// Order exposes the order under construction for payment and commit. The
// builder retains ownership until the order is committed.
func (b *OrderBuilder) Order() *domain.Order {
	return &b.order
}

func (b *OrderBuilder) recalculate() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.order.Items {
		total = total.Add(item.LineTotal())
	}
	b.order.Total = total
	return total
}

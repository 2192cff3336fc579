package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Audit carries the shared persisted fields: identity, timestamps and the
// soft-delete flag. Timestamps are stamped by the storage layer; values set
// by callers are ignored on write.
type Audit struct {
	ID         int       `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	IsActive   bool      `json:"is_active"`
}

type OrderType int

const (
	Takeaway OrderType = iota
	Delivery
)

func (t OrderType) String() string {
	switch t {
	case Takeaway:
		return "Takeaway"
	case Delivery:
		return "Delivery"
	}
	return fmt.Sprintf("OrderType(%d)", int(t))
}

func ParseOrderType(s string) (OrderType, error) {
	switch s {
	case "Takeaway":
		return Takeaway, nil
	case "Delivery":
		return Delivery, nil
	}
	return 0, fmt.Errorf("%w: unknown order type %q", ErrValidation, s)
}

func (t OrderType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *OrderType) UnmarshalJSON(data []byte) error {
	parsed, err := ParseOrderType(unquote(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t OrderType) Value() (driver.Value, error) { return t.String(), nil }

func (t *OrderType) Scan(src interface{}) error {
	parsed, err := ParseOrderType(asString(src))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type OrderStatus int

const (
	Pending OrderStatus = iota
	Completed
	Cancelled
)

func (s OrderStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Completed:
		return "Completed"
	case Cancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("OrderStatus(%d)", int(s))
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch s {
	case "Pending":
		return Pending, nil
	case "Completed":
		return Completed, nil
	case "Cancelled":
		return Cancelled, nil
	}
	return 0, fmt.Errorf("%w: unknown order status %q", ErrValidation, s)
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	parsed, err := ParseOrderStatus(unquote(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) { return s.String(), nil }

func (s *OrderStatus) Scan(src interface{}) error {
	parsed, err := ParseOrderStatus(asString(src))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Role int

const (
	Cashier Role = iota
	Admin
)

func (r Role) String() string {
	switch r {
	case Cashier:
		return "Cashier"
	case Admin:
		return "Admin"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

func ParseRole(s string) (Role, error) {
	switch s {
	case "Cashier":
		return Cashier, nil
	case "Admin":
		return Admin, nil
	}
	return 0, fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r *Role) UnmarshalJSON(data []byte) error {
	parsed, err := ParseRole(unquote(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Role) Value() (driver.Value, error) { return r.String(), nil }

func (r *Role) Scan(src interface{}) error {
	parsed, err := ParseRole(asString(src))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func unquote(data []byte) string {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func asString(src interface{}) string {
	switch v := src.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprint(src)
}

type Category struct {
	Audit
	Name      string     `json:"name"`
	Color     string     `json:"color"`
	MenuItems []MenuItem `json:"menu_items,omitempty"`
}

type MenuItem struct {
	Audit
	CategoryID  int             `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Color       string          `json:"color"`
}

type Customer struct {
	Audit
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type User struct {
	Audit
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	FullName     string `json:"full_name"`
}

type Order struct {
	Audit
	OrderNumber string          `json:"order_number"`
	OrderType   OrderType       `json:"order_type"`
	OrderStatus OrderStatus     `json:"order_status"`
	Total       decimal.Decimal `json:"total"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	Change      decimal.Decimal `json:"change"`
	UserID      int             `json:"user_id"`
	CustomerID  *int            `json:"customer_id,omitempty"`
	Customer    *Customer       `json:"customer,omitempty"`
	Items       []OrderItem     `json:"items"`
}

// OrderItem snapshots the menu item's name and price at order time. Later
// menu edits never change historical lines.
type OrderItem struct {
	ID         int             `json:"id"`
	OrderID    int             `json:"order_id"`
	MenuItemID int             `json:"menu_item_id"`
	ItemName   string          `json:"item_name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// LineTotal is always derived, never stored.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type DailySummary struct {
	Date           time.Time       `json:"date"`
	TotalOrders    int             `json:"total_orders"`
	TakeAwayOrders int             `json:"takeaway_orders"`
	DeliveryOrders int             `json:"delivery_orders"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	TakeAwaySales  decimal.Decimal `json:"takeaway_sales"`
	DeliverySales  decimal.Decimal `json:"delivery_sales"`
}

type ShiftSummary struct {
	UserID         int             `json:"user_id"`
	ShiftStart     time.Time       `json:"shift_start"`
	ShiftEnd       time.Time       `json:"shift_end"`
	TotalOrders    int             `json:"total_orders"`
	TakeAwayOrders int             `json:"takeaway_orders"`
	DeliveryOrders int             `json:"delivery_orders"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	TakeAwaySales  decimal.Decimal `json:"takeaway_sales"`
	DeliverySales  decimal.Decimal `json:"delivery_sales"`
}

// OrderEvent is the message published after a successful commit and consumed
// by the sales worker.
type OrderEvent struct {
	EventID     string          `json:"event_id"`
	Type        string          `json:"type"`
	OrderNumber string          `json:"order_number"`
	OrderType   OrderType       `json:"order_type"`
	Total       decimal.Decimal `json:"total"`
	UserID      int             `json:"user_id"`
	Timestamp   time.Time       `json:"timestamp"`
}

package service

import (
	"context"
	"time"

	"pos-register/internal/domain"
)

// CatalogRepository is the read/write port for menu management. The
// transaction engine itself only ever reads through it; default lookups
// exclude soft-deleted rows.
type CatalogRepository interface {
	ListActiveCategories() ([]domain.Category, error)
	CreateCategory(cat *domain.Category) error
	UpdateCategory(cat *domain.Category) error
	ListActiveMenuItems(categoryID int) ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	CreateMenuItem(item *domain.MenuItem) error
	UpdateMenuItem(item *domain.MenuItem) error
	DeactivateMenuItem(id int) error
}

// CustomerStore looks up and persists delivery customers. FindActiveByPhone
// returns (nil, nil) when no active customer matches; errors are reserved for
// storage failures.
type CustomerStore interface {
	FindActiveByPhone(phone string) (*domain.Customer, error)
	CreateCustomer(c *domain.Customer) error
	UpdateCustomer(c *domain.Customer) error
}

// OrderStore persists finalized orders. CommitOrder must write the order, its
// items and any embedded new or modified customer in one transaction.
type OrderStore interface {
	CommitOrder(order *domain.Order) error
	FindOrderByID(id int) (*domain.Order, error)
	SaveOrderQRCode(orderID int, qr []byte) error
	GetOrderQRCode(orderID int) ([]byte, error)
	ListCompletedInRange(start, end time.Time) ([]domain.Order, error)
	ListCompletedForUserInRange(userID int, start, end time.Time) ([]domain.Order, error)
}

// UserStore supplies operator identities for login and order stamping.
type UserStore interface {
	FindActiveByUsername(username string) (*domain.User, error)
	GetUser(id int) (*domain.User, error)
	CreateUser(u *domain.User) error
}

// OrderPublisher emits an event for every committed order.
type OrderPublisher interface {
	PublishOrderCompleted(ctx context.Context, event domain.OrderEvent) error
}

// SummaryCache is a cache-aside store for computed daily summaries.
type SummaryCache interface {
	GetDailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error)
	SetDailySummary(ctx context.Context, summary *domain.DailySummary) error
}

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"pos-register/internal/domain"
)

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) ListActiveCategories() ([]domain.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *CatalogRepository) CreateCategory(cat *domain.Category) error {
	return m.Called(cat).Error(0)
}

func (m *CatalogRepository) UpdateCategory(cat *domain.Category) error {
	return m.Called(cat).Error(0)
}

func (m *CatalogRepository) ListActiveMenuItems(categoryID int) ([]domain.MenuItem, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *CatalogRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *CatalogRepository) CreateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *CatalogRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *CatalogRepository) DeactivateMenuItem(id int) error {
	return m.Called(id).Error(0)
}

type CustomerStore struct {
	mock.Mock
}

func (m *CustomerStore) FindActiveByPhone(phone string) (*domain.Customer, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *CustomerStore) CreateCustomer(c *domain.Customer) error {
	return m.Called(c).Error(0)
}

func (m *CustomerStore) UpdateCustomer(c *domain.Customer) error {
	return m.Called(c).Error(0)
}

type OrderStore struct {
	mock.Mock
}

func (m *OrderStore) CommitOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderStore) FindOrderByID(id int) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderStore) SaveOrderQRCode(orderID int, qr []byte) error {
	return m.Called(orderID, qr).Error(0)
}

func (m *OrderStore) GetOrderQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *OrderStore) ListCompletedInRange(start, end time.Time) ([]domain.Order, error) {
	args := m.Called(start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderStore) ListCompletedForUserInRange(userID int, start, end time.Time) ([]domain.Order, error) {
	args := m.Called(userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

type UserStore struct {
	mock.Mock
}

func (m *UserStore) FindActiveByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserStore) GetUser(id int) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserStore) CreateUser(u *domain.User) error {
	return m.Called(u).Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func (m *OrderPublisher) PublishOrderCompleted(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type SummaryCache struct {
	mock.Mock
}

func (m *SummaryCache) GetDailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}

func (m *SummaryCache) SetDailySummary(ctx context.Context, summary *domain.DailySummary) error {
	return m.Called(ctx, summary).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderNumber string) ([]byte, error) {
	args := m.Called(orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type TallyStore struct {
	mock.Mock
}

func (m *TallyStore) RecordOrderTally(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

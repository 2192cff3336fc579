package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "pos-register/internal/api/http"
	"pos-register/internal/domain"
	"pos-register/internal/mocks"
	"pos-register/internal/service"
)

type handlerMocks struct {
	catalog   *mocks.CatalogRepository
	customers *mocks.CustomerStore
	orders    *mocks.OrderStore
	users     *mocks.UserStore
}

func newTestRouter() (*mux.Router, handlerMocks) {
	m := handlerMocks{
		catalog:   new(mocks.CatalogRepository),
		customers: new(mocks.CustomerStore),
		orders:    new(mocks.OrderStore),
		users:     new(mocks.UserStore),
	}

	register := service.NewRegisterService(
		m.catalog,
		service.NewCustomerResolver(m.customers),
		service.NewPaymentProcessor(),
		service.NewOrderCommitter(m.orders, nil, nil),
	)
	handler := httpapi.NewHandler(
		service.NewMenuService(m.catalog),
		service.NewAuthService(m.users),
		register,
		m.orders,
		service.NewSalesAggregator(m.orders, nil),
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, m
}

func postJSON(router *mux.Router, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func get(router *mux.Router, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestPlaceOrderEndpoint_Success(t *testing.T) {
	router, m := newTestRouter()
	coffee := menuItem(10, "Coffee", "2.50")
	m.catalog.On("GetMenuItem", 10).Return(&coffee, nil)
	m.orders.On("CommitOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()

	recorder := postJSON(router, "/api/orders", service.CheckoutRequest{
		UserID:         1,
		OrderType:      domain.Takeaway,
		Items:          []service.CheckoutItem{{MenuItemID: 10, Quantity: 2}},
		AmountTendered: decimal.RequireFromString("10.00"),
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	var order domain.Order
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&order))
	assert.Equal(t, domain.Completed, order.OrderStatus)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, "5.00", order.Total.StringFixed(2))
	assert.Equal(t, "5.00", order.Change.StringFixed(2))
	m.orders.AssertExpectations(t)
}

func TestPlaceOrderEndpoint_Errors(t *testing.T) {
	coffee := menuItem(10, "Coffee", "2.50")

	tests := []struct {
		name       string
		request    service.CheckoutRequest
		wantStatus int
	}{
		{
			name: "no items",
			request: service.CheckoutRequest{
				UserID:         1,
				OrderType:      domain.Takeaway,
				AmountTendered: decimal.RequireFromString("10.00"),
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "insufficient tender",
			request: service.CheckoutRequest{
				UserID:         1,
				OrderType:      domain.Takeaway,
				Items:          []service.CheckoutItem{{MenuItemID: 10, Quantity: 2}},
				AmountTendered: decimal.RequireFromString("1.00"),
			},
			wantStatus: http.StatusPaymentRequired,
		},
		{
			name: "delivery without phone",
			request: service.CheckoutRequest{
				UserID:         1,
				OrderType:      domain.Delivery,
				Items:          []service.CheckoutItem{{MenuItemID: 10, Quantity: 1}},
				AmountTendered: decimal.RequireFromString("10.00"),
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing operator",
			request: service.CheckoutRequest{
				OrderType:      domain.Takeaway,
				Items:          []service.CheckoutItem{{MenuItemID: 10, Quantity: 1}},
				AmountTendered: decimal.RequireFromString("10.00"),
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter()
			m.catalog.On("GetMenuItem", 10).Return(&coffee, nil)

			recorder := postJSON(router, "/api/orders", testCase.request)

			assert.Equal(t, testCase.wantStatus, recorder.Code)
			m.orders.AssertNotCalled(t, "CommitOrder")
		})
	}
}

func TestGetOrderEndpoint_NotFound(t *testing.T) {
	router, m := newTestRouter()
	m.orders.On("FindOrderByID", 404).Return(nil, domain.ErrNotFound).Once()

	recorder := get(router, "/api/orders/404")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	m.orders.AssertExpectations(t)
}

func TestGetOrderQRCodeEndpoint(t *testing.T) {
	router, m := newTestRouter()
	m.orders.On("GetOrderQRCode", 7).Return([]byte("png-bytes"), nil).Once()

	recorder := get(router, "/api/orders/7/qrcode")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", recorder.Body.String())
}

func TestDailySummaryEndpoint(t *testing.T) {
	router, m := newTestRouter()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	m.orders.On("ListCompletedInRange", day, day.AddDate(0, 0, 1)).Return([]domain.Order{
		completedOrder(domain.Takeaway, "12.50"),
		completedOrder(domain.Delivery, "30.00"),
	}, nil).Once()

	recorder := get(router, "/api/reports/daily?date=2024-03-15")

	assert.Equal(t, http.StatusOK, recorder.Code)
	var summary domain.DailySummary
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&summary))
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, "42.50", summary.TotalSales.StringFixed(2))
	m.orders.AssertExpectations(t)
}

func TestDailySummaryEndpoint_BadDate(t *testing.T) {
	router, _ := newTestRouter()

	assert.Equal(t, http.StatusBadRequest, get(router, "/api/reports/daily").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/reports/daily?date=15-03-2024").Code)
}

func TestShiftSummaryEndpoint_RequiresParams(t *testing.T) {
	router, _ := newTestRouter()

	assert.Equal(t, http.StatusBadRequest, get(router, "/api/reports/shift").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/reports/shift?user_id=3").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/reports/shift?user_id=3&start=not-a-time").Code)
}

func TestLoginEndpoint(t *testing.T) {
	router, m := newTestRouter()
	user := activeUser(t, "cashier1", "hunter2")
	m.users.On("FindActiveByUsername", "cashier1").Return(user, nil)

	recorder := postJSON(router, "/api/auth/login", map[string]string{
		"username": "cashier1", "password": "hunter2",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "cashier1", body["username"])
	_, leaked := body["password_hash"]
	assert.False(t, leaked, "password hash must never appear in responses")

	recorder = postJSON(router, "/api/auth/login", map[string]string{
		"username": "cashier1", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestMenuEndpoints(t *testing.T) {
	router, m := newTestRouter()
	m.catalog.On("ListActiveCategories").Return([]domain.Category{
		{Audit: domain.Audit{ID: 1, IsActive: true}, Name: "Drinks"},
	}, nil).Once()
	m.catalog.On("CreateMenuItem", mock.AnythingOfType("*domain.MenuItem")).Return(nil).Once()
	m.catalog.On("DeactivateMenuItem", 10).Return(nil).Once()

	recorder := get(router, "/api/menu/categories")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = postJSON(router, "/api/menu/categories/1/items", domain.MenuItem{
		Name:  "Coffee",
		Price: decimal.RequireFromString("2.50"),
	})
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = postJSON(router, "/api/menu/categories/1/items", domain.MenuItem{Name: "  "})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	request := httptest.NewRequest(http.MethodDelete, "/api/menu/items/10", nil)
	deleteRecorder := httptest.NewRecorder()
	router.ServeHTTP(deleteRecorder, request)
	assert.Equal(t, http.StatusNoContent, deleteRecorder.Code)

	m.catalog.AssertExpectations(t)
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/orderflow/internal/domain"
)

// orderServiceStub lets each test script the service behavior.
type orderServiceStub struct {
	CreateOrderFunc       func(ctx context.Context, req domain.UnvalidatedOrder) (*domain.PersistedOrder, error)
	GetOrderFunc          func(ctx context.Context, id int64) (*domain.PersistedOrder, error)
	ListOrdersFunc        func(ctx context.Context) ([]domain.PersistedOrder, error)
	UpdateOrderStatusFunc func(ctx context.Context, id int64, status domain.ShippingStatus) (*domain.PersistedOrder, error)
	DeleteOrderFunc       func(ctx context.Context, id int64) error
}

func (s *orderServiceStub) CreateOrder(ctx context.Context, req domain.UnvalidatedOrder) (*domain.PersistedOrder, error) {
	return s.CreateOrderFunc(ctx, req)
}

func (s *orderServiceStub) GetOrder(ctx context.Context, id int64) (*domain.PersistedOrder, error) {
	return s.GetOrderFunc(ctx, id)
}

func (s *orderServiceStub) ListOrders(ctx context.Context) ([]domain.PersistedOrder, error) {
	return s.ListOrdersFunc(ctx)
}

func (s *orderServiceStub) UpdateOrderStatus(ctx context.Context, id int64, status domain.ShippingStatus) (*domain.PersistedOrder, error) {
	return s.UpdateOrderStatusFunc(ctx, id, status)
}

func (s *orderServiceStub) DeleteOrder(ctx context.Context, id int64) error {
	return s.DeleteOrderFunc(ctx, id)
}

func persistedOrder(t *testing.T, id int64) *domain.PersistedOrder {
	t.Helper()

	price, err := domain.NewMoney(549)
	require.NoError(t, err)
	item, err := domain.NewOrderItem(1, 2, price)
	require.NoError(t, err)

	address, err := domain.ValidateAddress(domain.UnvalidatedAddress{
		PostalCode:  "1500001",
		Prefecture:  "東京都",
		City:        "渋谷区",
		AddressLine: "神宮前1-2-3",
	})
	require.NoError(t, err)

	customer, err := domain.ValidateCustomerInfo(domain.UnvalidatedCustomerInfo{
		Name:  "山田太郎",
		Email: "taro@example.com",
		Phone: "090-1234-5678",
	})
	require.NoError(t, err)

	order, err := domain.NewValidatedOrder([]domain.OrderItem{item}, address, customer)
	require.NoError(t, err)

	persisted := domain.NewPersistedOrder(order, id, time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
	return &persisted
}

func decodeOrder(t *testing.T, rec *httptest.ResponseRecorder) orderResponse {
	t.Helper()
	var response orderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	return response
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var response struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	return response.Error.Code
}

func TestOrderHandler_Create(t *testing.T) {
	validBody := `{
		"orderItems": [{"productId": 1, "quantity": 2}],
		"shippingAddress": {"postalCode": "1500001", "prefecture": "東京都", "city": "渋谷区", "addressLine": "神宮前1-2-3"},
		"customerInfo": {"name": "山田太郎", "email": "taro@example.com", "phone": "090-1234-5678"}
	}`

	t.Run("created order is returned with 201", func(t *testing.T) {
		service := &orderServiceStub{
			CreateOrderFunc: func(ctx context.Context, req domain.UnvalidatedOrder) (*domain.PersistedOrder, error) {
				assert.Len(t, req.OrderItems, 1)
				assert.Equal(t, "1500001", req.ShippingAddress.PostalCode)
				return persistedOrder(t, 7), nil
			},
		}
		h := NewOrderHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validBody))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		response := decodeOrder(t, rec)
		assert.Equal(t, int64(7), response.ID)
		assert.Equal(t, "PENDING", response.Status)
		assert.Equal(t, int64(1098), response.TotalAmount)
		assert.Equal(t, "150-0001", response.ShippingAddress.PostalCode)
		assert.Equal(t, "090-1234-5678", response.CustomerInfo.Phone)
	})

	t.Run("malformed JSON is a 400", func(t *testing.T) {
		h := NewOrderHandler(&orderServiceStub{})

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domain.EINVALID, decodeError(t, rec))
	})

	t.Run("missing orderItems field is a 400", func(t *testing.T) {
		h := NewOrderHandler(&orderServiceStub{})

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"shippingAddress": {}, "customerInfo": {}}`))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("domain validation failures keep their code", func(t *testing.T) {
		service := &orderServiceStub{
			CreateOrderFunc: func(ctx context.Context, req domain.UnvalidatedOrder) (*domain.PersistedOrder, error) {
				return nil, domain.Errorf(domain.EPRODUCTMISSING, "order.create", "product not found: 99")
			},
		}
		h := NewOrderHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validBody))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domain.EPRODUCTMISSING, decodeError(t, rec))
	})
}

func TestOrderHandler_Get(t *testing.T) {
	t.Run("existing order", func(t *testing.T) {
		service := &orderServiceStub{
			GetOrderFunc: func(ctx context.Context, id int64) (*domain.PersistedOrder, error) {
				assert.Equal(t, int64(7), id)
				return persistedOrder(t, 7), nil
			},
		}
		h := NewOrderHandler(service)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/7", nil)
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(7), decodeOrder(t, rec).ID)
	})

	t.Run("non-numeric id is rejected before the service", func(t *testing.T) {
		h := NewOrderHandler(&orderServiceStub{})

		req := httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil)
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domain.EPARAMETER, decodeError(t, rec))
	})

	t.Run("unknown order is a 404", func(t *testing.T) {
		service := &orderServiceStub{
			GetOrderFunc: func(ctx context.Context, id int64) (*domain.PersistedOrder, error) {
				return nil, domain.NotFound("order.get", "order", "42")
			},
		}
		h := NewOrderHandler(service)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/42", nil)
		req.SetPathValue("id", "42")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		service := &orderServiceStub{
			UpdateOrderStatusFunc: func(ctx context.Context, id int64, status domain.ShippingStatus) (*domain.PersistedOrder, error) {
				assert.Equal(t, domain.ShippingShipped, status)
				order := persistedOrder(t, 7)
				require.NoError(t, order.SetStatus(domain.ShippingShipped))
				return order, nil
			},
		}
		h := NewOrderHandler(service)

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/7/status", strings.NewReader(`{"status": "SHIPPED"}`))
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		h.UpdateStatus(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "SHIPPED", decodeOrder(t, rec).Status)
	})

	t.Run("unknown status value is a 400", func(t *testing.T) {
		h := NewOrderHandler(&orderServiceStub{})

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/7/status", strings.NewReader(`{"status": "TELEPORTED"}`))
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		h.UpdateStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing status field is a 400", func(t *testing.T) {
		h := NewOrderHandler(&orderServiceStub{})

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/7/status", strings.NewReader(`{}`))
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		h.UpdateStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domain.EINVALID, decodeError(t, rec))
	})
}

func TestOrderHandler_Delete(t *testing.T) {
	t.Run("deleted order returns 204", func(t *testing.T) {
		service := &orderServiceStub{
			DeleteOrderFunc: func(ctx context.Context, id int64) error {
				assert.Equal(t, int64(7), id)
				return nil
			},
		}
		h := NewOrderHandler(service)

		req := httptest.NewRequest(http.MethodDelete, "/api/orders/7", nil)
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		h.Delete(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delivered order delete conflicts", func(t *testing.T) {
		service := &orderServiceStub{
			DeleteOrderFunc: func(ctx context.Context, id int64) error {
				return domain.Conflict("order.delete", "delivered orders cannot be deleted")
			},
		}
		h := NewOrderHandler(service)

		req := httptest.NewRequest(http.MethodDelete, "/api/orders/7", nil)
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		h.Delete(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, domain.ECONFLICT, decodeError(t, rec))
	})
}

func TestOrderHandler_List(t *testing.T) {
	service := &orderServiceStub{
		ListOrdersFunc: func(ctx context.Context) ([]domain.PersistedOrder, error) {
			return []domain.PersistedOrder{*persistedOrder(t, 1), *persistedOrder(t, 2)}, nil
		},
	}
	h := NewOrderHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var responses []orderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&responses))
	require.Len(t, responses, 2)
	assert.Equal(t, int64(2), responses[1].ID)
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dukerupert/orderflow/internal/domain"
)

// OrderHandler serves the order API endpoints.
type OrderHandler struct {
	orders   domain.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates an order handler.
func NewOrderHandler(orders domain.OrderService) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		validate: validator.New(),
	}
}

// createOrderRequest is the POST /api/orders body. Validator tags only
// check the request shape; field-level rules live in the domain layer
// so the API and other entry points reject input identically.
type createOrderRequest struct {
	OrderItems []createOrderItem `json:"orderItems" validate:"required"`
	ShippingAddress struct {
		PostalCode  string `json:"postalCode"`
		Prefecture  string `json:"prefecture"`
		City        string `json:"city"`
		AddressLine string `json:"addressLine"`
	} `json:"shippingAddress" validate:"required"`
	CustomerInfo struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"customerInfo" validate:"required"`
}

type createOrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

func (req createOrderRequest) toDomain() domain.UnvalidatedOrder {
	items := make([]domain.UnvalidatedOrderItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		items = append(items, domain.UnvalidatedOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return domain.UnvalidatedOrder{
		OrderItems: items,
		ShippingAddress: domain.UnvalidatedAddress{
			PostalCode:  req.ShippingAddress.PostalCode,
			Prefecture:  req.ShippingAddress.Prefecture,
			City:        req.ShippingAddress.City,
			AddressLine: req.ShippingAddress.AddressLine,
		},
		CustomerInfo: domain.UnvalidatedCustomerInfo{
			Name:  req.CustomerInfo.Name,
			Email: req.CustomerInfo.Email,
			Phone: req.CustomerInfo.Phone,
		},
	}
}

// orderResponse is the JSON shape of a persisted order.
type orderResponse struct {
	ID              int64               `json:"id"`
	OrderItems      []orderItemResponse `json:"orderItems"`
	ShippingAddress addressResponse     `json:"shippingAddress"`
	CustomerInfo    customerResponse    `json:"customerInfo"`
	Status          string              `json:"status"`
	TotalAmount     int64               `json:"totalAmount"`
	CreatedAt       time.Time           `json:"createdAt"`
}

type orderItemResponse struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
}

type addressResponse struct {
	PostalCode  string `json:"postalCode"`
	Prefecture  string `json:"prefecture"`
	City        string `json:"city"`
	AddressLine string `json:"addressLine"`
}

type customerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func toOrderResponse(order *domain.PersistedOrder) orderResponse {
	items := order.Items()
	itemResponses := make([]orderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, orderItemResponse{
			ProductID: item.ProductID().Int64(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	address := order.ShippingAddress()
	customer := order.CustomerInfo()

	return orderResponse{
		ID:         order.ID,
		OrderItems: itemResponses,
		ShippingAddress: addressResponse{
			PostalCode:  address.PostalCode.String(),
			Prefecture:  address.Prefecture.String(),
			City:        address.City.String(),
			AddressLine: address.AddressLine.String(),
		},
		CustomerInfo: customerResponse{
			Name:  customer.Name.String(),
			Email: customer.Email.String(),
			Phone: customer.Phone.Hyphenate(),
		},
		Status:      string(order.Status()),
		TotalAmount: order.TotalAmount().Amount(),
		CreatedAt:   order.CreatedAt,
	}
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handler.order.create"

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, domain.WrapError(err, domain.EINVALID, op, "invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		ErrorResponse(w, r, domain.WrapError(err, domain.EINVALID, op, "missing required fields"))
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), req.toDomain())
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

// List handles GET /api/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	responses := make([]orderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, toOrderResponse(&orders[i]))
	}

	writeJSON(w, http.StatusOK, responses)
}

// Get handles GET /api/orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handler.order.get"

	id, err := parseID(r, op)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	order, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// updateStatusRequest is the PATCH /api/orders/{id}/status body.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "handler.order.update_status"

	id, err := parseID(r, op)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, domain.WrapError(err, domain.EINVALID, op, "invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		ErrorResponse(w, r, domain.WrapError(err, domain.EINVALID, op, "status is required"))
		return
	}

	status, err := domain.ParseShippingStatus(req.Status)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	order, err := h.orders.UpdateOrderStatus(r.Context(), id, status)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /api/orders/{id}
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handler.order.delete"

	id, err := parseID(r, op)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	if err := h.orders.DeleteOrder(r.Context(), id); err != nil {
		ErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseID extracts the {id} path segment as a positive integer.
func parseID(r *http.Request, op string) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, domain.Errorf(domain.EPARAMETER, op, "invalid id: %q", raw)
	}
	return id, nil
}

package domain

import "time"

// EventOrderCreated is published exactly once per successfully created order.
const EventOrderCreated = "ORDER_CREATED"

// OrderCreatedItem is one order line as carried in the event payload.
type OrderCreatedItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
}

// OrderCreatedPayload is the ORDER_CREATED event payload. It carries
// everything downstream handlers need so they never have to re-read the
// order from the repository.
type OrderCreatedPayload struct {
	OrderID       int64              `json:"orderId"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	Items         []OrderCreatedItem `json:"orderItems"`
	TotalAmount   int64              `json:"totalAmount"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// NewOrderCreatedPayload builds the event payload from a persisted order.
func NewOrderCreatedPayload(order *PersistedOrder) OrderCreatedPayload {
	items := order.Items()
	payloadItems := make([]OrderCreatedItem, 0, len(items))
	for _, item := range items {
		payloadItems = append(payloadItems, OrderCreatedItem{
			ProductID: item.ProductID().Int64(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}
	return OrderCreatedPayload{
		OrderID:       order.ID,
		CustomerName:  order.CustomerInfo().Name.String(),
		CustomerEmail: order.CustomerInfo().Email.String(),
		Items:         payloadItems,
		TotalAmount:   order.TotalAmount().Amount(),
		CreatedAt:     order.CreatedAt,
	}
}

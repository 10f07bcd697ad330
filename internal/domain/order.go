package domain

import (
	"context"
	"time"
)

// Quantity bounds for a single order line.
const (
	MinQuantity = 1
	MaxQuantity = 999
)

// UnvalidatedOrderItem is a raw order line as received at the boundary.
type UnvalidatedOrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// UnvalidatedOrder is the raw create-order request body.
type UnvalidatedOrder struct {
	OrderItems      []UnvalidatedOrderItem  `json:"orderItems"`
	ShippingAddress UnvalidatedAddress      `json:"shippingAddress"`
	CustomerInfo    UnvalidatedCustomerInfo `json:"customerInfo"`
}

// OrderItem is a validated order line. Unit price of zero is permitted;
// free items are a legitimate business case.
type OrderItem struct {
	productID ProductID
	quantity  int64
	unitPrice Money
}

// NewOrderItem validates the product id, then the quantity (at least
// MinQuantity, then at most MaxQuantity), in that order.
func NewOrderItem(productID, quantity int64, unitPrice Money) (OrderItem, error) {
	pid, err := NewProductID(productID)
	if err != nil {
		return OrderItem{}, err
	}
	if quantity < MinQuantity {
		return OrderItem{}, Errorf(EQUANTITY, "orderitem.new", "quantity must be at least %d, got %d", MinQuantity, quantity)
	}
	if quantity > MaxQuantity {
		return OrderItem{}, Errorf(EQUANTITY, "orderitem.new", "quantity must be at most %d, got %d", MaxQuantity, quantity)
	}
	return OrderItem{productID: pid, quantity: quantity, unitPrice: unitPrice}, nil
}

func (i OrderItem) ProductID() ProductID { return i.productID }
func (i OrderItem) Quantity() int64      { return i.quantity }
func (i OrderItem) UnitPrice() Money     { return i.unitPrice }

// Subtotal computes quantity * unit price. The multiply error is threaded
// through rather than unwrapped; given the item invariants it should not
// occur, but hiding it behind a panic would be worse.
func (i OrderItem) Subtotal() (Money, error) {
	return i.unitPrice.Multiply(i.quantity)
}

// ValidatedOrder is the order aggregate. It can only be built through
// NewValidatedOrder, which recomputes the total from the items; the total
// is never supplied by callers.
type ValidatedOrder struct {
	items           []OrderItem
	shippingAddress Address
	customerInfo    CustomerInfo
	status          ShippingStatus
	totalAmount     Money
}

// NewValidatedOrder builds the aggregate from validated parts.
// The sole structural invariant beyond the parts' own is that the item
// list must not be empty. The total is a fail-fast fold of Add over each
// item's subtotal starting at zero.
func NewValidatedOrder(items []OrderItem, shippingAddress Address, customerInfo CustomerInfo) (ValidatedOrder, error) {
	if len(items) == 0 {
		return ValidatedOrder{}, Errorf(EEMPTYORDER, "order.new", "order must contain at least one item")
	}

	total := Zero()
	for _, item := range items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return ValidatedOrder{}, WrapError(err, ECALCULATION, "order.new", "failed to compute order total")
		}
		total = total.Add(subtotal)
	}

	copied := make([]OrderItem, len(items))
	copy(copied, items)

	return ValidatedOrder{
		items:           copied,
		shippingAddress: shippingAddress,
		customerInfo:    customerInfo,
		status:          ShippingPending,
		totalAmount:     total,
	}, nil
}

// Items returns a copy of the order lines in request order.
func (o ValidatedOrder) Items() []OrderItem {
	copied := make([]OrderItem, len(o.items))
	copy(copied, o.items)
	return copied
}

func (o ValidatedOrder) ShippingAddress() Address   { return o.shippingAddress }
func (o ValidatedOrder) CustomerInfo() CustomerInfo { return o.customerInfo }
func (o ValidatedOrder) Status() ShippingStatus     { return o.status }
func (o ValidatedOrder) TotalAmount() Money         { return o.totalAmount }

// PersistedOrder is a ValidatedOrder that has been stored. ID and
// CreatedAt are assigned exclusively by the repository on create.
type PersistedOrder struct {
	ValidatedOrder
	ID        int64
	CreatedAt time.Time
}

// NewPersistedOrder attaches repository-assigned identity to an order.
// For repository use only.
func NewPersistedOrder(order ValidatedOrder, id int64, createdAt time.Time) PersistedOrder {
	return PersistedOrder{ValidatedOrder: order, ID: id, CreatedAt: createdAt}
}

// SetStatus moves the order to a new shipping status, verifying the
// transition. There is no way to overwrite the status blindly.
func (o *PersistedOrder) SetStatus(to ShippingStatus) error {
	next, err := Transition(o.status, to)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// OrderRepository is the port to order persistence.
// UpdateStatus must itself re-verify the transition rather than blindly
// overwrite; Delete must return ECONFLICT when the order is DELIVERED.
type OrderRepository interface {
	Create(ctx context.Context, order ValidatedOrder) (*PersistedOrder, error)
	FindAll(ctx context.Context) ([]PersistedOrder, error)
	FindByID(ctx context.Context, id int64) (*PersistedOrder, error)
	UpdateStatus(ctx context.Context, id int64, status ShippingStatus) (*PersistedOrder, error)
	Delete(ctx context.Context, id int64) error
}

// OrderService provides business logic for order operations.
type OrderService interface {
	// CreateOrder validates the request, persists the order, and publishes
	// an ORDER_CREATED event. The event is published only after the order
	// is durably created; a publish failure is logged, never returned.
	CreateOrder(ctx context.Context, req UnvalidatedOrder) (*PersistedOrder, error)

	GetOrder(ctx context.Context, id int64) (*PersistedOrder, error)
	ListOrders(ctx context.Context) ([]PersistedOrder, error)
	UpdateOrderStatus(ctx context.Context, id int64, status ShippingStatus) (*PersistedOrder, error)
	DeleteOrder(ctx context.Context, id int64) error
}

package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/dukerupert/orderflow/internal/domain"
)

// OrderRepository is an in-memory order store. IDs are assigned from a
// monotonically increasing counter starting at 1.
type OrderRepository struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]domain.PersistedOrder
	now    func() time.Time
}

// NewOrderRepository creates an empty in-memory order store.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		nextID: 1,
		orders: make(map[int64]domain.PersistedOrder),
		now:    time.Now,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order domain.ValidatedOrder) (*domain.PersistedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	persisted := domain.NewPersistedOrder(order, r.nextID, r.now().UTC())
	r.orders[r.nextID] = persisted
	r.nextID++
	return &persisted, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.PersistedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]domain.PersistedOrder, 0, len(r.orders))
	for _, o := range r.orders {
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.PersistedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, domain.NotFound("order.find", "order", strconv.FormatInt(id, 10))
	}
	return &o, nil
}

// UpdateStatus re-verifies the transition through the aggregate before
// storing; there is no path that blindly overwrites the status.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.ShippingStatus) (*domain.PersistedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, domain.NotFound("order.updatestatus", "order", strconv.FormatInt(id, 10))
	}
	if err := o.SetStatus(status); err != nil {
		return nil, err
	}
	r.orders[id] = o
	return &o, nil
}

// Delete removes the order. Delivered orders cannot be deleted.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return domain.NotFound("order.delete", "order", strconv.FormatInt(id, 10))
	}
	if o.Status() == domain.ShippingDelivered {
		return domain.Conflict("order.delete", "delivered orders cannot be deleted")
	}
	delete(r.orders, id)
	return nil
}

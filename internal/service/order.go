package service

import (
	"context"
	"log/slog"

	"github.com/dukerupert/orderflow/internal/domain"
	"github.com/dukerupert/orderflow/internal/eventbus"
)

type orderService struct {
	orders   domain.OrderRepository
	products domain.ProductRepository
	bus      eventbus.Bus
	logger   *slog.Logger
}

// NewOrderService creates the order service.
func NewOrderService(orders domain.OrderRepository, products domain.ProductRepository, bus eventbus.Bus, logger *slog.Logger) domain.OrderService {
	return &orderService{
		orders:   orders,
		products: products,
		bus:      bus,
		logger:   logger,
	}
}

// CreateOrder runs the validation pipeline, persists the order, and
// publishes ORDER_CREATED. Each step short-circuits on failure:
// address, customer info, then per-item product lookup and pricing in
// request order, then aggregate construction, then the repository write.
// The event is published only after the write succeeds; persistence and
// publication are deliberately non-atomic.
func (s *orderService) CreateOrder(ctx context.Context, req domain.UnvalidatedOrder) (*domain.PersistedOrder, error) {
	const op = "order.create"

	addr, err := domain.ValidateAddress(req.ShippingAddress)
	if err != nil {
		return nil, domain.WrapError(err, domain.EVALIDATION, op, domain.ErrorMessage(err))
	}

	info, err := domain.ValidateCustomerInfo(req.CustomerInfo)
	if err != nil {
		return nil, domain.WrapError(err, domain.EVALIDATION, op, domain.ErrorMessage(err))
	}

	// Lookups are sequential, one item at a time, so the first missing
	// product in request order is the one reported.
	items := make([]domain.OrderItem, 0, len(req.OrderItems))
	for _, line := range req.OrderItems {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if domain.IsCode(err, domain.ENOTFOUND) {
				return nil, domain.Errorf(domain.EPRODUCTMISSING, op, "product not found: %d", line.ProductID)
			}
			return nil, domain.WrapError(err, domain.EREPOSITORY, op, "failed to look up product")
		}

		unitPrice, err := product.Price.ToMoney()
		if err != nil {
			return nil, domain.WrapError(err, domain.EVALIDATION, op, domain.ErrorMessage(err))
		}

		item, err := domain.NewOrderItem(line.ProductID, line.Quantity, unitPrice)
		if err != nil {
			return nil, domain.WrapError(err, domain.EVALIDATION, op, domain.ErrorMessage(err))
		}
		items = append(items, item)
	}

	validated, err := domain.NewValidatedOrder(items, addr, info)
	if err != nil {
		return nil, domain.WrapError(err, domain.EVALIDATION, op, domain.ErrorMessage(err))
	}

	persisted, err := s.orders.Create(ctx, validated)
	if err != nil {
		return nil, domain.WrapError(err, domain.EREPOSITORY, op, "failed to save order")
	}

	s.publishOrderCreated(ctx, persisted)

	return persisted, nil
}

// publishOrderCreated publishes the event for a freshly created order.
// The order is already durable at this point, so a publish failure is
// logged and swallowed; it must never fail the creation the customer
// was just promised. There is no compensating transaction.
func (s *orderService) publishOrderCreated(ctx context.Context, order *domain.PersistedOrder) {
	event, err := eventbus.New(domain.EventOrderCreated, domain.NewOrderCreatedPayload(order))
	if err != nil {
		s.logger.Error("failed to build order created event", "order_id", order.ID, "error", err)
		return
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish order created event", "order_id", order.ID, "error", err)
	}
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*domain.PersistedOrder, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context) ([]domain.PersistedOrder, error) {
	return s.orders.FindAll(ctx)
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id int64, status domain.ShippingStatus) (*domain.PersistedOrder, error) {
	return s.orders.UpdateStatus(ctx, id, status)
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}

package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukerupert/orderflow/internal/domain"
)

// OrderRepository implements domain.OrderRepository on PostgreSQL.
// Orders span two tables: orders and order_items. Items keep a position
// column so request order survives the round trip.
type OrderRepository struct {
	pool *pgxpool.Pool
}

var _ domain.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository creates a PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, order domain.ValidatedOrder) (*domain.PersistedOrder, error) {
	const op = "order.create"

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	addr := order.ShippingAddress()
	info := order.CustomerInfo()

	var (
		id        int64
		createdAt time.Time
	)
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (
			postal_code, prefecture, city, address_line,
			customer_name, customer_email, customer_phone,
			shipping_status, total_amount, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		RETURNING id, created_at`,
		addr.PostalCode.String(), addr.Prefecture.String(), addr.City.String(), addr.AddressLine.String(),
		info.Name.String(), info.Email.String(), info.Phone.String(),
		string(order.Status()), order.TotalAmount().Amount(),
	).Scan(&id, &createdAt)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to insert order")
	}

	for position, item := range order.Items() {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, position, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			id, position, item.ProductID().Int64(), item.Quantity(), item.UnitPrice().Amount(),
		)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to insert order item")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Internal(err, op, "failed to commit order")
	}

	persisted := domain.NewPersistedOrder(order, id, createdAt)
	return &persisted, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.PersistedOrder, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id FROM orders ORDER BY id`)
	if err != nil {
		return nil, domain.Internal(err, "order.list", "failed to list orders")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, domain.Internal(err, "order.list", "failed to scan order id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "order.list", "failed to read orders")
	}

	orders := make([]domain.PersistedOrder, 0, len(ids))
	for _, id := range ids {
		order, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.PersistedOrder, error) {
	const op = "order.find"

	var (
		postalCode, prefecture, city, addressLine string
		name, emailAddr, phone                    string
		status                                    string
		createdAt                                 time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT postal_code, prefecture, city, address_line,
		       customer_name, customer_email, customer_phone,
		       shipping_status, created_at
		FROM orders WHERE id = $1`, id).
		Scan(&postalCode, &prefecture, &city, &addressLine,
			&name, &emailAddr, &phone, &status, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(op, "order", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load order")
	}

	itemRows, err := r.pool.Query(ctx, `
		SELECT product_id, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load order items")
	}
	defer itemRows.Close()

	var items []domain.OrderItem
	for itemRows.Next() {
		var productID, quantity, unitPrice int64
		if err := itemRows.Scan(&productID, &quantity, &unitPrice); err != nil {
			return nil, domain.Internal(err, op, "failed to scan order item")
		}
		item, err := rebuildItem(productID, quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, domain.Internal(err, op, "failed to read order items")
	}

	return rebuildOrder(id, createdAt, items, domain.UnvalidatedAddress{
		PostalCode:  postalCode,
		Prefecture:  prefecture,
		City:        city,
		AddressLine: addressLine,
	}, domain.UnvalidatedCustomerInfo{
		Name:  name,
		Email: emailAddr,
		Phone: phone,
	}, status)
}

// UpdateStatus locks the row, re-verifies the transition against the
// current status, and only then writes. A blind overwrite is not possible.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.ShippingStatus) (*domain.PersistedOrder, error) {
	const op = "order.updatestatus"

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	var current string
	err = tx.QueryRow(ctx,
		`SELECT shipping_status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(op, "order", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load order status")
	}

	next, err := domain.Transition(domain.ShippingStatus(current), status)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE orders SET shipping_status = $1 WHERE id = $2`, string(next), id); err != nil {
		return nil, domain.Internal(err, op, "failed to update order status")
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Internal(err, op, "failed to commit status update")
	}

	return r.FindByID(ctx, id)
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	const op = "order.delete"

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Internal(err, op, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	var current string
	err = tx.QueryRow(ctx,
		`SELECT shipping_status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound(op, "order", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return domain.Internal(err, op, "failed to load order status")
	}

	if domain.ShippingStatus(current) == domain.ShippingDelivered {
		return domain.Conflict(op, "delivered orders cannot be deleted")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return domain.Internal(err, op, "failed to delete order items")
	}
	if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return domain.Internal(err, op, "failed to delete order")
	}
	return tx.Commit(ctx)
}

func rebuildItem(productID, quantity, unitPrice int64) (domain.OrderItem, error) {
	money, err := domain.NewMoney(float64(unitPrice))
	if err != nil {
		return domain.OrderItem{}, domain.Internal(err, "order.rebuild", "stored unit price is invalid")
	}
	item, err := domain.NewOrderItem(productID, quantity, money)
	if err != nil {
		return domain.OrderItem{}, domain.Internal(err, "order.rebuild", "stored order item is invalid")
	}
	return item, nil
}

// rebuildOrder reconstructs the aggregate through the same validation
// path used for new input. The total is recomputed from the items rather
// than trusted from the total_amount column.
func rebuildOrder(id int64, createdAt time.Time, items []domain.OrderItem, addr domain.UnvalidatedAddress, info domain.UnvalidatedCustomerInfo, status string) (*domain.PersistedOrder, error) {
	const op = "order.rebuild"

	address, err := domain.ValidateAddress(addr)
	if err != nil {
		return nil, domain.Internal(err, op, "stored address is invalid")
	}
	customer, err := domain.ValidateCustomerInfo(info)
	if err != nil {
		return nil, domain.Internal(err, op, "stored customer info is invalid")
	}
	validated, err := domain.NewValidatedOrder(items, address, customer)
	if err != nil {
		return nil, domain.Internal(err, op, "stored order is invalid")
	}

	persisted := domain.NewPersistedOrder(validated, id, createdAt)
	if err := persisted.SetStatus(domain.ShippingStatus(status)); err != nil {
		return nil, domain.Internal(err, op, "stored shipping status is invalid")
	}
	return &persisted, nil
}

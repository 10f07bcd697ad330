package domain

import (
	"context"
	"time"
)

// MockProductRepository is a configurable ProductRepository for testing.
type MockProductRepository struct {
	FindAllFunc  func(ctx context.Context) ([]Product, error)
	FindByIDFunc func(ctx context.Context, id int64) (*Product, error)

	// FindByIDCalls records every id passed to FindByID, in call order.
	FindByIDCalls []int64
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]Product, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*Product, error) {
	m.FindByIDCalls = append(m.FindByIDCalls, id)
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, NotFound("product.find", "product", "unknown")
}

// MockOrderRepository is a configurable OrderRepository for testing.
type MockOrderRepository struct {
	CreateFunc       func(ctx context.Context, order ValidatedOrder) (*PersistedOrder, error)
	FindAllFunc      func(ctx context.Context) ([]PersistedOrder, error)
	FindByIDFunc     func(ctx context.Context, id int64) (*PersistedOrder, error)
	UpdateStatusFunc func(ctx context.Context, id int64, status ShippingStatus) (*PersistedOrder, error)
	DeleteFunc       func(ctx context.Context, id int64) error

	// CreateCalls counts invocations of Create.
	CreateCalls int
}

func (m *MockOrderRepository) Create(ctx context.Context, order ValidatedOrder) (*PersistedOrder, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	persisted := NewPersistedOrder(order, 1, time.Now())
	return &persisted, nil
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]PersistedOrder, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*PersistedOrder, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, NotFound("order.find", "order", "unknown")
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id int64, status ShippingStatus) (*PersistedOrder, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, NotFound("order.updatestatus", "order", "unknown")
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

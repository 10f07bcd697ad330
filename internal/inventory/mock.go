package inventory

import "context"

// MockService is a configurable Service for testing.
type MockService struct {
	DecreaseFunc func(ctx context.Context, productID, quantity int64) error
	IncreaseFunc func(ctx context.Context, productID, quantity int64) error
	GetStockFunc func(ctx context.Context, productID int64) (*Stock, error)

	// DecreaseCalls records every (productID, quantity) passed to Decrease.
	DecreaseCalls [][2]int64
}

func (m *MockService) Decrease(ctx context.Context, productID, quantity int64) error {
	m.DecreaseCalls = append(m.DecreaseCalls, [2]int64{productID, quantity})
	if m.DecreaseFunc != nil {
		return m.DecreaseFunc(ctx, productID, quantity)
	}
	return nil
}

func (m *MockService) Increase(ctx context.Context, productID, quantity int64) error {
	if m.IncreaseFunc != nil {
		return m.IncreaseFunc(ctx, productID, quantity)
	}
	return nil
}

func (m *MockService) GetStock(ctx context.Context, productID int64) (*Stock, error) {
	if m.GetStockFunc != nil {
		return m.GetStockFunc(ctx, productID)
	}
	return &Stock{ProductID: productID}, nil
}

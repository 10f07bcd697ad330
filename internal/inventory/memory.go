package inventory

import (
	"context"
	"sync"
)

// Memory is an in-process Service backed by a map. Safe for concurrent
// use; event handlers may hit it from multiple goroutines at once.
type Memory struct {
	mu     sync.Mutex
	levels map[int64]int64
}

// NewMemory creates an in-memory inventory seeded with the given levels.
func NewMemory(initial map[int64]int64) *Memory {
	levels := make(map[int64]int64, len(initial))
	for id, qty := range initial {
		levels[id] = qty
	}
	return &Memory{levels: levels}
}

func (m *Memory) Decrease(ctx context.Context, productID, quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	have, ok := m.levels[productID]
	if !ok {
		return ErrProductNotFound(productID)
	}
	if have < quantity {
		return ErrInsufficientStock(productID, have, quantity)
	}
	m.levels[productID] = have - quantity
	return nil
}

func (m *Memory) Increase(ctx context.Context, productID, quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.levels[productID] += quantity
	return nil
}

func (m *Memory) GetStock(ctx context.Context, productID int64) (*Stock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	have, ok := m.levels[productID]
	if !ok {
		return nil, ErrProductNotFound(productID)
	}
	return &Stock{ProductID: productID, Quantity: have}, nil
}

// Package memory provides in-process repository adapters, used in
// development and as the reference implementations exercised by tests.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/dukerupert/orderflow/internal/domain"
)

// ProductRepository is an in-memory product catalog.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
}

// NewProductRepository creates a catalog seeded with the given products.
func NewProductRepository(products []domain.Product) *ProductRepository {
	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID.Int64()] = p
	}
	return &ProductRepository{products: byID}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID.Int64() < all[j].ID.Int64() })
	return all, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domain.NotFound("product.find", "product", strconv.FormatInt(id, 10))
	}
	return &p, nil
}

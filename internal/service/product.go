package service

import (
	"context"

	"github.com/dukerupert/orderflow/internal/domain"
)

type productService struct {
	products domain.ProductRepository
}

// NewProductService creates the catalog read service.
func NewProductService(products domain.ProductRepository) domain.ProductService {
	return &productService{products: products}
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if id < 1 {
		return nil, domain.Errorf(domain.EPARAMETER, "product.get", "product id must be at least 1, got %d", id)
	}
	return s.products.FindByID(ctx, id)
}

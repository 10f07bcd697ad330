package domain

import (
	"context"
	"math"
)

// ProductID identifies a catalog product. Always an integer >= 1.
type ProductID struct {
	value int64
}

func NewProductID(id int64) (ProductID, error) {
	if id < 1 {
		return ProductID{}, Errorf(EPRODUCTID, "productid.new", "product id must be at least 1, got %d", id)
	}
	return ProductID{value: id}, nil
}

func (p ProductID) Int64() int64 {
	return p.value
}

// Price is a non-negative catalog price. Unlike Money it is not
// constrained to whole yen; catalog sources may quote decimal prices.
type Price struct {
	value float64
}

func NewPrice(value float64) (Price, error) {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return Price{}, Errorf(EPRICE, "price.new", "price must be a non-negative number, got %v", value)
	}
	return Price{value: value}, nil
}

func (p Price) Float64() float64 {
	return p.value
}

// ToMoney converts the catalog price to Money. Fails when the price is
// not a whole number of yen.
func (p Price) ToMoney() (Money, error) {
	return NewMoney(p.value)
}

// Product is a catalog product.
type Product struct {
	ID          ProductID
	Title       string
	Price       Price
	Description string
}

// ProductRepository is the port to the product catalog.
// Implementations return ENOTFOUND for unknown products, ENETWORK when
// the catalog is unreachable, and EINTERNAL for anything else.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id int64) (*Product, error)
}

// ProductService provides read access to the catalog.
type ProductService interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
}

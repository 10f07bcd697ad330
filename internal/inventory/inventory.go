// Package inventory provides the stock management port and its adapters.
package inventory

import "context"

// Stock is the current stock level for one product.
type Stock struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// Service defines stock operations. Quantities are always positive;
// implementations reject decrements below zero with ErrInsufficientStock.
type Service interface {
	// Decrease removes quantity units of the product from stock.
	Decrease(ctx context.Context, productID, quantity int64) error

	// Increase adds quantity units of the product to stock.
	Increase(ctx context.Context, productID, quantity int64) error

	// GetStock returns the current stock level of the product.
	GetStock(ctx context.Context, productID int64) (*Stock, error)
}

package inventory

import "fmt"

// These constants mirror domain error codes to avoid circular imports.
const (
	codeConflict = "conflict"
	codeInternal = "internal"
	codeInvalid  = "invalid"
	codeNotFound = "not_found"
)

// InventoryError represents an inventory-specific error with a code and
// message, following the domain error pattern for consistent mapping.
type InventoryError struct {
	Code    string
	Message string
}

func (e *InventoryError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for status mapping.
func (e *InventoryError) ErrorCode() string {
	return e.Code
}

// ErrorMessage returns the user-facing message.
func (e *InventoryError) ErrorMessage() string {
	return e.Message
}

var (
	// ErrInvalidQuantity is returned for zero or negative quantities.
	ErrInvalidQuantity = &InventoryError{Code: codeInvalid, Message: "Quantity must be positive"}
)

// ErrInsufficientStock creates an error for a decrement below zero.
func ErrInsufficientStock(productID, have, want int64) error {
	return &InventoryError{
		Code:    codeConflict,
		Message: fmt.Sprintf("Insufficient stock for product %d: have %d, want %d", productID, have, want),
	}
}

// ErrProductNotFound creates an error for an untracked product.
func ErrProductNotFound(productID int64) error {
	return &InventoryError{
		Code:    codeNotFound,
		Message: fmt.Sprintf("Product %d is not tracked in inventory", productID),
	}
}

// ErrUpdateFailed wraps an unexpected storage failure.
func ErrUpdateFailed(err error) error {
	return &InventoryError{
		Code:    codeInternal,
		Message: fmt.Sprintf("Failed to update inventory: %v", err),
	}
}

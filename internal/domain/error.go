package domain

import (
	"errors"
	"fmt"
)

// Application error codes.
// Generic codes map directly to HTTP status codes; the fine-grained
// validation codes below all map to 400 and exist so callers can tell
// apart what exactly was wrong with the input.
const (
	ECONFLICT = "conflict"      // 409 - resource conflict (e.g. deleting a delivered order)
	EINTERNAL = "internal"      // 500 - internal error (hide details)
	EINVALID  = "invalid"       // 400 - validation error (bad input)
	ENOTFOUND = "not_found"     // 404 - resource not found
	ENETWORK  = "network_error" // 502 - upstream unreachable

	// Value-level validation codes.
	ENEGATIVEAMOUNT = "negative_amount"
	ENONINTEGER     = "non_integer_amount"
	EPOSTALCODE     = "invalid_postal_code"
	EEMPTYFIELD     = "empty_field"
	ETOOLONG        = "field_too_long"
	EEMAIL          = "invalid_email"
	EPHONE          = "invalid_phone"
	EPRODUCTID      = "invalid_product_id"
	EQUANTITY       = "invalid_quantity"
	EPRICE          = "invalid_price"

	// Aggregate and state-machine codes.
	EEMPTYORDER  = "empty_order_items"
	ECALCULATION = "calculation_error"
	ETRANSITION  = "invalid_transition"

	// Use-case codes.
	EVALIDATION     = "validation_error"
	EPRODUCTMISSING = "product_not_found"
	EREPOSITORY     = "repository_error"
	EPARAMETER      = "invalid_parameter"
)

// validationCodes are the codes that describe bad caller input.
// They all translate to HTTP 400.
var validationCodes = map[string]bool{
	EINVALID:        true,
	ENEGATIVEAMOUNT: true,
	ENONINTEGER:     true,
	EPOSTALCODE:     true,
	EEMPTYFIELD:     true,
	ETOOLONG:        true,
	EEMAIL:          true,
	EPHONE:          true,
	EPRODUCTID:      true,
	EQUANTITY:       true,
	EPRICE:          true,
	EEMPTYORDER:     true,
	ECALCULATION:    true,
	ETRANSITION:     true,
	EVALIDATION:     true,
	EPRODUCTMISSING: true,
	EPARAMETER:      true,
}

// IsValidationCode reports whether code describes invalid caller input.
func IsValidationCode(code string) bool {
	return validationCodes[code]
}

// Error represents an application error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	// Code is a machine-readable error code (e.g., EINVALID, ENOTFOUND).
	Code string

	// Message is a human-readable error message safe to show to users.
	Message string

	// Op is the operation where the error occurred (e.g., "order.create").
	// Used for debugging and logging, not shown to users.
	Op string

	// Err is the underlying error, if any. Used for error wrapping.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		if e.Op != "" {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode extracts the error code from an error.
// Returns EINTERNAL for non-domain errors.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return EINTERNAL
}

// ErrorMessage extracts a user-facing message from an error.
// For internal errors, returns a generic message to avoid leaking details.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		if e.Code == EINTERNAL {
			return "An internal error occurred. Please try again later."
		}
		return e.Message
	}

	return "An internal error occurred. Please try again later."
}

// ErrorOp extracts the operation from an error (for logging).
func ErrorOp(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}

	return ""
}

// Errorf creates a new domain error with formatted message.
// Example: domain.Errorf(domain.EQUANTITY, "orderitem.new", "quantity must be at most %d", MaxQuantity)
func Errorf(code, op, format string, args ...interface{}) error {
	return &Error{
		Code:    code,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an existing error with a domain error code and operation.
// Preserves the underlying error for logging while providing structure.
// Returns nil if err is nil.
func WrapError(err error, code, op, message string) error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsCode returns true if err has the given error code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}

// NotFound creates a not found error for a resource.
// Example: domain.NotFound("order.get", "order", "42")
func NotFound(op, resource, identifier string) error {
	return &Error{
		Code:    ENOTFOUND,
		Op:      op,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
	}
}

// Invalid creates a validation error for a single issue.
// Example: domain.Invalid("customer.validate", "name must not be empty")
func Invalid(op, message string) error {
	return &Error{
		Code:    EINVALID,
		Op:      op,
		Message: message,
	}
}

// Conflict creates a conflict error.
// Example: domain.Conflict("order.delete", "delivered orders cannot be deleted")
func Conflict(op, message string) error {
	return &Error{
		Code:    ECONFLICT,
		Op:      op,
		Message: message,
	}
}

// Internal creates an internal error (wraps underlying error).
// The message shown to users will be generic; the underlying error is for logging.
func Internal(err error, op, message string) error {
	return &Error{
		Code:    EINTERNAL,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

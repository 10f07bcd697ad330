package email

import "fmt"

// These constants mirror domain error codes to avoid circular imports.
const (
	codeInternal = "internal"
	codeInvalid  = "invalid"
)

// EmailError represents an email-specific error with a code and message,
// following the domain error pattern for consistent mapping.
type EmailError struct {
	Code    string
	Message string
}

func (e *EmailError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for status mapping.
func (e *EmailError) ErrorCode() string {
	return e.Code
}

// ErrorMessage returns the user-facing message.
func (e *EmailError) ErrorMessage() string {
	return e.Message
}

var (
	// ErrEmptyRecipient is returned when the recipient address is missing.
	ErrEmptyRecipient = &EmailError{Code: codeInvalid, Message: "Recipient address is required"}
)

// ErrSendFailed wraps a provider failure.
func ErrSendFailed(err error) error {
	return &EmailError{
		Code:    codeInternal,
		Message: fmt.Sprintf("Failed to send email: %v", err),
	}
}

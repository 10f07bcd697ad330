// Package email provides the notification port and its adapters.
package email

import "context"

// Message represents an email message to be sent.
type Message struct {
	To      string // Recipient email address
	Subject string // Email subject
	Body    string // Plain text body
}

// Sender defines the interface for sending emails.
// Implementations can use SMTP, Postmark, Resend, SES, etc.
type Sender interface {
	// Send sends an email message.
	Send(ctx context.Context, msg Message) error
}

package email

import (
	"context"
	"log/slog"
)

// Console is a Sender that writes messages to the log instead of
// delivering them. Used in development and as the default adapter when
// no provider is configured.
type Console struct {
	logger *slog.Logger
}

// NewConsole creates a console sender.
func NewConsole(logger *slog.Logger) *Console {
	return &Console{logger: logger}
}

// Send logs the message and always succeeds.
func (c *Console) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrEmptyRecipient
	}
	c.logger.Info("email (console)",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}

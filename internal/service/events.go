package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dukerupert/orderflow/internal/domain"
	"github.com/dukerupert/orderflow/internal/email"
	"github.com/dukerupert/orderflow/internal/eventbus"
	"github.com/dukerupert/orderflow/internal/inventory"
)

// DecreaseInventoryOnOrderCreated returns a handler that decrements stock
// for every order line. It never returns an error: an already-created
// order is not undone by a best-effort side effect, so failures are
// logged and the remaining lines are still processed.
func DecreaseInventoryOnOrderCreated(inv inventory.Service, logger *slog.Logger) eventbus.Handler {
	return func(ctx context.Context, event eventbus.Event) error {
		var payload domain.OrderCreatedPayload
		if err := event.DecodePayload(&payload); err != nil {
			logger.Error("failed to decode order created event", "event_id", event.ID, "error", err)
			return nil
		}

		for _, item := range payload.Items {
			if err := inv.Decrease(ctx, item.ProductID, item.Quantity); err != nil {
				logger.Error("failed to decrease inventory",
					"order_id", payload.OrderID,
					"product_id", item.ProductID,
					"quantity", item.Quantity,
					"error", err,
				)
			}
		}
		return nil
	}
}

// SendOrderConfirmationEmail returns a handler that emails the customer a
// confirmation listing each order line and the total. Like the inventory
// handler it logs failures and never returns an error.
func SendOrderConfirmationEmail(sender email.Sender, logger *slog.Logger) eventbus.Handler {
	return func(ctx context.Context, event eventbus.Event) error {
		var payload domain.OrderCreatedPayload
		if err := event.DecodePayload(&payload); err != nil {
			logger.Error("failed to decode order created event", "event_id", event.ID, "error", err)
			return nil
		}

		msg := email.Message{
			To:      payload.CustomerEmail,
			Subject: fmt.Sprintf("Order confirmation #%d", payload.OrderID),
			Body:    confirmationBody(payload),
		}
		if err := sender.Send(ctx, msg); err != nil {
			logger.Error("failed to send order confirmation",
				"order_id", payload.OrderID,
				"to", payload.CustomerEmail,
				"error", err,
			)
		}
		return nil
	}
}

func confirmationBody(payload domain.OrderCreatedPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\nThank you for your order.\n\n", payload.CustomerName)
	fmt.Fprintf(&b, "Order number: %d\n\nItems:\n", payload.OrderID)
	for _, item := range payload.Items {
		fmt.Fprintf(&b, "  - product %d x%d @ ¥%d\n", item.ProductID, item.Quantity, item.UnitPrice)
	}
	fmt.Fprintf(&b, "\nTotal: ¥%d\n", payload.TotalAmount)
	return b.String()
}

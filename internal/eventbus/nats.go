package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// NATS is a Bus backed by a NATS connection. Each event type maps to a
// subject under the configured prefix, e.g. "orderflow.events.ORDER_CREATED".
type NATS struct {
	conn   *nats.Conn
	prefix string
	logger *slog.Logger
	subs   []*nats.Subscription
}

// NewNATS wraps an established NATS connection.
func NewNATS(conn *nats.Conn, prefix string, logger *slog.Logger) *NATS {
	if prefix == "" {
		prefix = "orderflow.events"
	}
	return &NATS{conn: conn, prefix: prefix, logger: logger}
}

func (b *NATS) subject(eventType string) string {
	return b.prefix + "." + eventType
}

// Publish sends the event to the subject for its type.
func (b *NATS) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.ID, err)
	}
	if err := b.conn.Publish(b.subject(event.Type), data); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// Subscribe registers a handler for an event type. Handler errors are
// logged, not returned; delivery over NATS is detached from the publisher.
func (b *NATS) Subscribe(eventType string, handler Handler) {
	sub, err := b.conn.Subscribe(b.subject(eventType), func(msg *nats.Msg) {
		var event Event
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			b.logger.Error("failed to decode event", "subject", msg.Subject, "error", err)
			return
		}
		if err := handler(context.Background(), event); err != nil {
			b.logger.Error("event handler failed", "type", event.Type, "event_id", event.ID, "error", err)
		}
	})
	if err != nil {
		b.logger.Error("failed to subscribe", "type", eventType, "error", err)
		return
	}
	b.subs = append(b.subs, sub)
}

// Close drains all subscriptions.
func (b *NATS) Close() {
	for _, sub := range b.subs {
		if err := sub.Drain(); err != nil {
			b.logger.Warn("failed to drain subscription", "subject", sub.Subject, "error", err)
		}
	}
}

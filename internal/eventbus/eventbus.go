// Package eventbus provides the event publication port and its adapters.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is a domain event envelope. The payload is kept as raw JSON so
// the same envelope travels unchanged through the in-memory bus and NATS.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// New builds an event envelope around payload.
func New(eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    data,
	}, nil
}

// DecodePayload unmarshals the payload into v.
func (e Event) DecodePayload(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// Handler consumes one event. Handlers for best-effort side effects
// should log failures and return nil; a returned error surfaces from
// Publish on the in-memory bus.
type Handler func(ctx context.Context, event Event) error

// Bus is the event publication port.
type Bus interface {
	// Publish delivers the event to every handler subscribed to its type.
	// Publishing a type nobody subscribed to is a successful no-op.
	Publish(ctx context.Context, event Event) error

	// Subscribe registers a handler for an event type. Multiple handlers
	// for one type all fire on every publish.
	Subscribe(eventType string, handler Handler)
}

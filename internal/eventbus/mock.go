package eventbus

import "context"

// MockBus is a configurable Bus for testing.
type MockBus struct {
	PublishFunc   func(ctx context.Context, event Event) error
	SubscribeFunc func(eventType string, handler Handler)

	// Published records every event passed to Publish.
	Published []Event
}

func (m *MockBus) Publish(ctx context.Context, event Event) error {
	m.Published = append(m.Published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, event)
	}
	return nil
}

func (m *MockBus) Subscribe(eventType string, handler Handler) {
	if m.SubscribeFunc != nil {
		m.SubscribeFunc(eventType, handler)
	}
}

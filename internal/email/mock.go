package email

import "context"

// MockSender is a configurable Sender for testing.
type MockSender struct {
	SendFunc func(ctx context.Context, msg Message) error

	// Sent records every message passed to Send.
	Sent []Message
}

func (m *MockSender) Send(ctx context.Context, msg Message) error {
	m.Sent = append(m.Sent, msg)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}

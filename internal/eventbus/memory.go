package eventbus

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Memory is an in-process Bus. Handlers for a single publish run
// concurrently; Publish joins on all of them and returns the first
// handler error, if any. Handlers must not assume serialized access to
// shared state they close over.
type Memory struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewMemory creates an empty in-memory bus.
func NewMemory() *Memory {
	return &Memory{handlers: make(map[string][]Handler)}
}

// Subscribe appends the handler to the type's list in subscription order.
func (b *Memory) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish fans the event out to all handlers registered for its type and
// waits for every one to finish. An unregistered type is a no-op.
func (b *Memory) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := slices.Clone(b.handlers[event.Type])
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, handler := range handlers {
		g.Go(func() error {
			return handler(ctx, event)
		})
	}
	return g.Wait()
}

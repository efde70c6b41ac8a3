// Package event provides a small synchronous pub/sub bus. The terminal
// manager and config watcher publish lifecycle events on it; handlers
// run inline on the publisher's goroutine.
package event

import "sync"

// Handler receives a published event payload.
type Handler func(payload map[string]any)

// Bus is a topic-keyed synchronous event bus.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]Handler)}
}

// Subscribe registers a handler for a topic and returns an unsubscribe
// function.
func (b *Bus) Subscribe(topic string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	byID, ok := b.subs[topic]
	if !ok {
		byID = make(map[int]Handler)
		b.subs[topic] = byID
	}
	id := b.nextID
	b.nextID++
	byID[id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish delivers the payload to every subscriber of the topic,
// synchronously, in unspecified order.
func (b *Bus) Publish(topic string, payload map[string]any) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(payload)
	}
}

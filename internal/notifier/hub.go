package notifier

import (
	"context"
	"sync"

	"smartmenu-service/internal/service"
)

// Hub is the in-process registry of administrator sessions awaiting order
// notifications. Subscribers receive on buffered channels; a slow subscriber
// drops events instead of blocking the broadcast.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan service.OrderCreatedEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan service.OrderCreatedEvent]struct{})}
}

// Subscribe registers a new listener and returns its channel plus an
// unsubscribe func. The channel is closed on unsubscribe.
func (h *Hub) Subscribe() (<-chan service.OrderCreatedEvent, func()) {
	ch := make(chan service.OrderCreatedEvent, 8)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsubscribe
}

func (h *Hub) Broadcast(e service.OrderCreatedEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// PublishOrderCreated lets the hub stand in as the event bus when no broker
// is configured.
func (h *Hub) PublishOrderCreated(_ context.Context, e service.OrderCreatedEvent) error {
	h.Broadcast(e)
	return nil
}

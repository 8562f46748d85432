package events

import (
	"context"
	"sync"
)

// Hub is an in-process Relay. Every subscriber owns a channel with room for
// one pending notification; bursts coalesce and Notify never blocks on a
// slow reader.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*subscription]struct{}
}

type subscription struct {
	ch   chan string
	once sync.Once
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*subscription]struct{})}
}

func (h *Hub) Subscribe(ctx context.Context, id string) (<-chan string, func()) {
	s := &subscription{ch: make(chan string, 1)}

	h.mu.Lock()
	set, ok := h.subs[id]
	if !ok {
		set = make(map[*subscription]struct{})
		h.subs[id] = set
	}
	set[s] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		s.once.Do(func() {
			h.mu.Lock()
			delete(h.subs[id], s)
			if len(h.subs[id]) == 0 {
				delete(h.subs, id)
			}
			close(s.ch)
			h.mu.Unlock()
		})
	}
	stop := context.AfterFunc(ctx, cancel)
	return s.ch, func() {
		stop()
		cancel()
	}
}

func (h *Hub) Notify(_ context.Context, id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs[id] {
		select {
		case s.ch <- id:
		default:
		}
	}
	return nil
}

// Subscribers returns the number of live subscriptions to id.
func (h *Hub) Subscribers(id string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[id])
}

func (h *Hub) Close() error { return nil }

package editor

import "sync"

// Event names carried by updates.
const (
	EventPreview   = "preview"
	EventRetypeset = "retypeset"
)

// PreviewScope is the element id of the live preview region.
const PreviewScope = "preview"

// Update is a notification sent to preview subscribers.
type Update struct {
	Event string `json:"event"`
	HTML  string `json:"html,omitempty"`
	Scope string `json:"scope,omitempty"`
}

// Hub fans updates out to subscribers. Slow subscribers miss updates rather
// than blocking the publisher.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan Update]struct{}
	buffer int
	closed bool
}

// NewHub creates a hub whose subscriber channels hold buffer updates.
func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:   make(map[chan Update]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a subscriber. The returned function unsubscribes and
// closes the channel.
func (h *Hub) Subscribe() (<-chan Update, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Update, h.buffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	h.subs[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[ch]; ok {
				delete(h.subs, ch)
				close(ch)
			}
		})
	}
}

// Publish sends u to every subscriber with room in its buffer.
func (h *Hub) Publish(u Update) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- u:
		default:
		}
	}
}

// Subscribers returns the number of active subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close closes every subscriber channel. Later subscriptions get a closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
}

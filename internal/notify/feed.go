package notify

import "sync"

// Feed is the ordered list of currently visible notifications. Append
// only; the presentation layer removes entries through Dismiss. When
// the feed is full the oldest entry is evicted so an unattended session
// cannot grow without bound. All methods are safe for concurrent use.
type Feed struct {
	mu    sync.RWMutex
	items []Message
	cap   int
}

// NewFeed creates a Feed holding at most capacity messages. Capacity
// must be at least 1.
func NewFeed(capacity int) *Feed {
	if capacity < 1 {
		capacity = 1
	}
	return &Feed{cap: capacity}
}

// Append adds a message to the end of the feed, evicting the oldest
// entry when full.
func (f *Feed) Append(msg Message) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, msg)
	if len(f.items) > f.cap {
		f.items = f.items[len(f.items)-f.cap:]
	}
}

// Visible returns a snapshot of the feed in arrival order.
func (f *Feed) Visible() []Message {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Message, len(f.items))
	copy(out, f.items)
	return out
}

// Dismiss removes the message with the given id. Unknown ids are a
// no-op.
func (f *Feed) Dismiss(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, msg := range f.items {
		if msg.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of visible messages.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}

// Package events provides the pub-sub bus that carries checklist notifications
// from the engine to whatever presentation layer subscribes.
package events

import (
	"sync"
)

// DefaultBuffer is the channel capacity used when Subscribe is given n <= 0.
const DefaultBuffer = 64

// EventBus fans checklist events out to per-topic subscriber channels.
// Delivery never blocks the publisher: a full subscriber misses the event.
type EventBus struct {
	mu     sync.RWMutex
	topics map[string][]chan Event
	closed bool
}

// NewEventBus creates a new event bus.
func NewEventBus() *EventBus {
	return &EventBus{topics: make(map[string][]chan Event)}
}

// Subscribe returns a channel receiving the events published on topic.
// Callers that outlive a single command should Unsubscribe when done.
func (b *EventBus) Subscribe(topic string, n int) <-chan Event {
	if n <= 0 {
		n = DefaultBuffer
	}
	ch := make(chan Event, n)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch
	}
	b.topics[topic] = append(b.topics[topic], ch)
	return ch
}

// Unsubscribe detaches and closes a channel returned by Subscribe.
// Unknown channels and repeated calls are ignored.
func (b *EventBus) Unsubscribe(topic string, sub <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	chans := b.topics[topic]
	for i, ch := range chans {
		if ch != sub {
			continue
		}
		close(ch)
		b.topics[topic] = append(chans[:i], chans[i+1:]...)
		if len(b.topics[topic]) == 0 {
			delete(b.topics, topic)
		}
		return
	}
}

// Subscribers returns the number of channels attached to topic.
func (b *EventBus) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

// Publish delivers event to every subscriber of topic that has room for it.
func (b *EventBus) Publish(topic string, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for _, ch := range b.topics[topic] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Close closes every subscriber channel. Later calls are no-ops.
func (b *EventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for topic, chans := range b.topics {
		for _, ch := range chans {
			close(ch)
		}
		delete(b.topics, topic)
	}
}

package state

import (
	"log"
	"sync"
)

// EventChannel delivers one-shot events to a single consumer. Events are
// not replayed, and an event sent while the buffer is full is dropped.
type EventChannel[T any] struct {
	name   string
	mu     sync.Mutex
	ch     chan T
	closed bool
}

// NewEventChannel creates an event channel buffering up to size events.
func NewEventChannel[T any](name string, size int) *EventChannel[T] {
	if size < 1 {
		size = 1
	}
	return &EventChannel[T]{name: name, ch: make(chan T, size)}
}

// Send queues ev without blocking. It reports whether ev was queued.
func (e *EventChannel[T]) Send(ev T) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false
	}

	select {
	case e.ch <- ev:
		return true
	default:
		log.Printf("%s: buffer full, dropping event %v", e.name, ev)
		return false
	}
}

// Events returns the receive side. It is closed by Close.
func (e *EventChannel[T]) Events() <-chan T {
	return e.ch
}

// Close closes the receive side. Events already queued stay readable.
func (e *EventChannel[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.closed {
		e.closed = true
		close(e.ch)
	}
}

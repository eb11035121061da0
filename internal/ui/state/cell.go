package state

import "sync"

// Observable is the read side of a Cell.
type Observable[T any] interface {
	Get() T
	Subscribe() (<-chan T, func())
}

// Cell is an observable value holder. Subscribers receive the current
// value on subscription and every later change. A subscriber that falls
// behind only sees the newest value.
type Cell[T any] struct {
	mu     sync.Mutex
	value  T
	equal  func(a, b T) bool
	subs   map[uint64]chan T
	nextID uint64
	closed bool
}

// NewCell creates a cell holding initial. Set is a no-op when equal
// reports the new value matches the current one.
func NewCell[T any](initial T, equal func(a, b T) bool) *Cell[T] {
	return &Cell[T]{
		value: initial,
		equal: equal,
		subs:  make(map[uint64]chan T),
	}
}

// NewValueCell creates a cell for comparable values.
func NewValueCell[T comparable](initial T) *Cell[T] {
	return NewCell(initial, func(a, b T) bool { return a == b })
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set stores v and notifies subscribers. It reports whether the value
// changed.
func (c *Cell[T]) Set(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || (c.equal != nil && c.equal(c.value, v)) {
		return false
	}

	c.value = v
	for _, ch := range c.subs {
		offer(ch, v)
	}
	return true
}

// Subscribe returns a channel carrying the current value followed by
// changes, and a function that ends the subscription and closes the
// channel.
func (c *Cell[T]) Subscribe() (<-chan T, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan T, 1)
	if c.closed {
		close(ch)
		return ch, func() {}
	}

	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	ch <- c.value

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}
}

// Close ends every subscription. Later Sets are ignored.
func (c *Cell[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}

// offer replaces any unread value in ch with v. Callers hold the cell lock,
// so ch has room after the drain.
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}

package state

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func assertNothing[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected value %v", v)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestCell_ReplaysCurrentValue(t *testing.T) {
	c := NewValueCell("initial")
	c.Set("abc")

	ch, cancel := c.Subscribe()
	defer cancel()

	assert.Equal(t, "abc", receive(t, ch))
	assertNothing(t, ch)
}

func TestCell_NotifiesOnChange(t *testing.T) {
	c := NewValueCell(0)
	ch, cancel := c.Subscribe()
	defer cancel()

	assert.Equal(t, 0, receive(t, ch))

	assert.True(t, c.Set(1))
	assert.Equal(t, 1, receive(t, ch))
	assert.Equal(t, 1, c.Get())
}

func TestCell_EqualValueDoesNotNotify(t *testing.T) {
	c := NewValueCell("same")
	ch, cancel := c.Subscribe()
	defer cancel()
	receive(t, ch)

	assert.False(t, c.Set("same"))
	assertNothing(t, ch)
}

func TestCell_CustomEquality(t *testing.T) {
	c := NewCell([]int{1, 2}, slices.Equal[[]int])
	ch, cancel := c.Subscribe()
	defer cancel()
	receive(t, ch)

	assert.False(t, c.Set([]int{1, 2}))
	assert.True(t, c.Set([]int{3}))
	assert.Equal(t, []int{3}, receive(t, ch))
}

func TestCell_SlowSubscriberSeesLatest(t *testing.T) {
	c := NewValueCell(0)
	ch, cancel := c.Subscribe()
	defer cancel()

	for i := 1; i <= 10; i++ {
		c.Set(i)
	}

	assert.Equal(t, 10, receive(t, ch))
	assertNothing(t, ch)
}

func TestCell_Unsubscribe(t *testing.T) {
	c := NewValueCell(0)
	ch, cancel := c.Subscribe()
	receive(t, ch)

	cancel()
	cancel()

	c.Set(5)
	_, ok := <-ch
	assert.False(t, ok)
}

func TestCell_IndependentSubscribers(t *testing.T) {
	c := NewValueCell("a")
	first, cancelFirst := c.Subscribe()
	defer cancelFirst()
	second, cancelSecond := c.Subscribe()
	defer cancelSecond()

	c.Set("b")

	assert.Equal(t, "b", receive(t, first))
	assert.Equal(t, "b", receive(t, second))
}

func TestCell_Close(t *testing.T) {
	c := NewValueCell(1)
	ch, cancel := c.Subscribe()
	defer cancel()
	receive(t, ch)

	c.Close()
	_, ok := <-ch
	assert.False(t, ok)

	assert.False(t, c.Set(2))

	late, lateCancel := c.Subscribe()
	defer lateCancel()
	_, ok = <-late
	assert.False(t, ok)
}

func TestCell_ConcurrentReaders(t *testing.T) {
	c := NewValueCell(0)
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch, cancel := c.Subscribe()
			defer cancel()
			for v := range ch {
				if v == 100 {
					return
				}
			}
		}()
	}

	for i := 1; i <= 100; i++ {
		c.Set(i)
	}
	wg.Wait()
	assert.Equal(t, 100, c.Get())
}

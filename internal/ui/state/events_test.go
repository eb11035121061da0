package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventChannel_DeliversInOrder(t *testing.T) {
	e := NewEventChannel[string]("test", 4)

	assert.True(t, e.Send("a"))
	assert.True(t, e.Send("b"))

	assert.Equal(t, "a", receive(t, e.Events()))
	assert.Equal(t, "b", receive(t, e.Events()))
	assertNothing(t, e.Events())
}

func TestEventChannel_DropsWhenFull(t *testing.T) {
	e := NewEventChannel[int]("test", 1)

	assert.True(t, e.Send(1))
	assert.False(t, e.Send(2))

	assert.Equal(t, 1, receive(t, e.Events()))
	assertNothing(t, e.Events())
}

func TestEventChannel_Close(t *testing.T) {
	e := NewEventChannel[int]("test", 2)
	e.Send(7)
	e.Close()
	e.Close()

	assert.False(t, e.Send(8))

	v, ok := <-e.Events()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = <-e.Events()
	assert.False(t, ok)
}

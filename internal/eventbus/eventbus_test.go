package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	b := New[string]()
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish("F1")
	b.Publish("F2")
	assert.Equal(t, "F1", <-ch)
	assert.Equal(t, "F2", <-ch)
}

func TestCancelClosesChannel(t *testing.T) {
	b := New[int]()
	ch, cancel := b.Subscribe()
	cancel()
	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after cancel must not panic.
	b.Publish(1)
}

func TestSlowSubscriberDropsEvents(t *testing.T) {
	b := New[int]()
	ch, cancel := b.Subscribe()
	defer cancel()

	for i := 0; i < 100; i++ {
		b.Publish(i)
	}
	// Buffer holds the first events; the rest were dropped, not blocked on.
	require.Equal(t, 0, <-ch)
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New[int]()
	ch, _ := b.Subscribe()
	b.Close()
	b.Close()
	_, ok := <-ch
	assert.False(t, ok)

	sub, cancel := b.Subscribe()
	cancel()
	_, ok = <-sub
	assert.False(t, ok)
}

package eventbus

import "sync"

// Bus is a type-safe publish/subscribe bus used to fan progress events out
// to the CLI layer. Delivery is non-blocking: a slow subscriber drops
// events instead of stalling the publisher.
type Bus[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
	closed bool
}

// New creates an empty bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{subs: make(map[int]chan T)}
}

// Publish sends the event to every subscriber that has buffer room.
func (b *Bus[T]) Publish(ev T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe registers a subscriber and returns its channel along with a
// cancel function that removes the subscription and closes the channel.
func (b *Bus[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan T, 16)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			if !b.closed {
				close(sub)
			}
		}
	}
}

// Close closes every subscriber channel. Further publishes are dropped.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
}

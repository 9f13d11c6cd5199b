package signal

import "sync"

// Stream is an in-process publish/subscribe channel for a single value type.
// Subscription lifetime is explicit: Subscribe returns the handle that
// removes the subscriber again, so nothing listens ambiently.
type Stream[T any] struct {
	mu     sync.Mutex
	subs   map[int]func(T)
	nextID int
}

// NewStream creates an empty stream.
func NewStream[T any]() *Stream[T] {
	return &Stream[T]{subs: make(map[int]func(T))}
}

// Subscribe registers fn for future publications and returns the unsubscribe
// handle. Unsubscribing twice is harmless.
func (s *Stream[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Publish delivers v to every current subscriber. Delivery is synchronous
// and in no particular order.
func (s *Stream[T]) Publish(v T) {
	s.mu.Lock()
	fns := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// SubscriberCount returns the number of active subscribers.
func (s *Stream[T]) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

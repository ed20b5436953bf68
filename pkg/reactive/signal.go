package reactive

import (
	"reflect"
	"sync"
	"sync/atomic"
)

var idCounter atomic.Uint64

func nextID() uint64 {
	return idCounter.Add(1)
}

// Signal is a reactive value container.
type Signal[T any] struct {
	id    uint64
	value T
	mu    sync.RWMutex

	subs  map[uint64]func(T)
	subMu sync.Mutex

	// equal decides whether a write changes the value. Defaults to
	// reflect.DeepEqual.
	equal func(T, T) bool
}

// NewSignal creates a new signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		id:    nextID(),
		value: initial,
		subs:  make(map[uint64]func(T)),
	}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.Update(func(T) T { return value })
}

// Update atomically reads and replaces the value.
// Subscribers are notified outside the lock, only on change.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	old := s.value
	next := fn(old)
	changed := !s.equals(old, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.notify(next)
	}
}

// Subscribe registers fn to receive every new value. The returned function
// removes the subscription.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := nextID()
	s.subMu.Lock()
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// WithEquals sets a custom equality function.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}

// notify copies the subscriber set before calling out.
func (s *Signal[T]) notify(value T) {
	s.subMu.Lock()
	subs := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

package core

import "sync"

// Latest is a single-slot cell holding the most recent value written by an
// input source. Writers may run on any goroutine; the tick loop reads.
// A write overwrites any value that has not been read yet.
type Latest[T any] struct {
	mu    sync.Mutex
	value T
	fresh bool
	seen  bool
}

// Store overwrites the slot with v.
func (l *Latest[T]) Store(v T) {
	l.mu.Lock()
	l.value = v
	l.fresh = true
	l.seen = true
	l.mu.Unlock()
}

// Take returns the stored value and whether it was written since the last
// Take. The value stays in the slot.
func (l *Latest[T]) Take() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fresh := l.fresh
	l.fresh = false
	return l.value, fresh
}

// Peek returns the stored value and whether anything was ever written,
// without consuming freshness.
func (l *Latest[T]) Peek() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.seen
}

package lazy

import "sync"

// Lazy computes a value on first access and caches it for the rest of
// the owner's lifetime. Safe for concurrent Get.
type Lazy[T any] struct {
	once sync.Once
	fn   func() T
	v    T
}

func New[T any](fn func() T) *Lazy[T] {
	return &Lazy[T]{fn: fn}
}

// Get returns the cached value, computing it on the first call.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.v = l.fn()
		l.fn = nil
	})
	return l.v
}

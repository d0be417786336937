package view

// Sequence is a read-only view of a slice. It does not copy: the owner
// keeps mutating rights, readers holding the Sequence get none.
type Sequence[T comparable] struct {
	proxied []T
}

func NewSequence[T comparable](proxied []T) Sequence[T] {
	return Sequence[T]{proxied: proxied}
}

// At returns the element at position i. It panics if i is out of
// range, same as indexing a slice.
func (s Sequence[T]) At(i int) T {
	return s.proxied[i]
}

func (s Sequence[T]) Len() int {
	return len(s.proxied)
}

func (s Sequence[T]) Contains(item T) bool {
	_, ok := s.Index(item)
	return ok
}

// Index returns the position of the first occurrence of item.
func (s Sequence[T]) Index(item T) (int, bool) {
	for i, v := range s.proxied {
		if v == item {
			return i, true
		}
	}
	return 0, false
}

// Count returns how many elements equal item.
func (s Sequence[T]) Count(item T) int {
	count := 0
	for _, v := range s.proxied {
		if v == item {
			count++
		}
	}
	return count
}

// Items returns a copy of the viewed slice.
func (s Sequence[T]) Items() []T {
	items := make([]T, len(s.proxied))
	copy(items, s.proxied)
	return items
}

// Reversed returns a copy of the viewed slice in reverse order.
func (s Sequence[T]) Reversed() []T {
	items := make([]T, len(s.proxied))
	for i, v := range s.proxied {
		items[len(items)-1-i] = v
	}
	return items
}

// ForEach calls f for every element in order.
func (s Sequence[T]) ForEach(f func(T)) {
	for _, v := range s.proxied {
		f(v)
	}
}

package iterable

import (
	"context"
)

// Item is a single keyed element produced by an Iterable.
type Item[K any, V any] struct {
	Key   K
	Value V
}

// Iterable lazily produces items over a channel until it is exhausted
// or the context is cancelled.
type Iterable[K, V any] func(ctx context.Context) <-chan Item[K, V]

// FromSlice turns a slice into an Iterable keyed by index.
func FromSlice[V any](items []V) Iterable[int, V] {
	return func(ctx context.Context) <-chan Item[int, V] {
		resultCh := make(chan Item[int, V])
		go func() {
			defer close(resultCh)
			for i := 0; i < len(items); i++ {
				select {
				case <-ctx.Done():
					return
				case resultCh <- Item[int, V]{Key: i, Value: items[i]}:
				}
			}
		}()
		return resultCh
	}
}

// FromMap turns a map into an Iterable. Iteration order is undefined,
// same as ranging over the map.
func FromMap[K comparable, V any](m map[K]V) Iterable[K, V] {
	return func(ctx context.Context) <-chan Item[K, V] {
		resultCh := make(chan Item[K, V])
		go func() {
			defer close(resultCh)
			for k, v := range m {
				select {
				case <-ctx.Done():
					return
				case resultCh <- Item[K, V]{Key: k, Value: v}:
				}
			}
		}()
		return resultCh
	}
}

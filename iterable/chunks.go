package iterable

import (
	"context"

	"github.com/denismitr/discordkit/utils"
)

// Chunks regroups the values of it into chunks of at most maxSize,
// keyed by chunk number. The last chunk may be shorter. A maxSize
// below 1 yields an immediately-closed iterable.
func Chunks[K, V any](it Iterable[K, V], maxSize int) Iterable[int, []V] {
	return func(ctx context.Context) <-chan Item[int, []V] {
		resultCh := make(chan Item[int, []V])
		go func() {
			defer close(resultCh)
			if maxSize < 1 {
				return
			}

			chunk := make([]V, 0, maxSize)
			n := 0
			for item := range it(ctx) {
				chunk = append(chunk, item.Value)
				if len(chunk) == maxSize {
					select {
					case <-ctx.Done():
						return
					case resultCh <- Item[int, []V]{Key: n, Value: chunk}:
					}
					chunk = make([]V, 0, maxSize)
					n++
				}
			}

			if len(chunk) > 0 {
				select {
				case <-ctx.Done():
				case resultCh <- Item[int, []V]{Key: n, Value: chunk}:
				}
			}
		}()
		return resultCh
	}
}

// Find returns the first value of it satisfying pred. It stops
// consuming the iterable as soon as a match is seen.
func Find[K, V any](ctx context.Context, it Iterable[K, V], pred func(V) bool) (V, bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for item := range it(ctx) {
		if pred(item.Value) {
			return item.Value, true
		}
	}

	return utils.Zero[V](), false
}

// Collect drains it into a slice of values.
func Collect[K, V any](ctx context.Context, it Iterable[K, V]) []V {
	var values []V
	for item := range it(ctx) {
		values = append(values, item.Value)
	}
	return values
}

package lazy_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/denismitr/discordkit/lazy"
	"github.com/stretchr/testify/assert"
)

func TestLazy_Get(t *testing.T) {
	t.Run("computes once and caches", func(t *testing.T) {
		calls := 0
		l := lazy.New(func() int {
			calls++
			return 42
		})

		assert.Equal(t, 42, l.Get())
		assert.Equal(t, 42, l.Get())
		assert.Equal(t, 1, calls)
	})

	t.Run("not computed until first access", func(t *testing.T) {
		called := false
		_ = lazy.New(func() string {
			called = true
			return "expensive"
		})

		assert.False(t, called)
	})

	t.Run("concurrent access computes exactly once", func(t *testing.T) {
		var calls int64
		l := lazy.New(func() int64 {
			return atomic.AddInt64(&calls, 1)
		})

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, int64(1), l.Get())
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	})
}

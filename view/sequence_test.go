package view_test

import (
	"testing"

	"github.com/denismitr/discordkit/view"
	"github.com/stretchr/testify/assert"
)

func TestSequence_Access(t *testing.T) {
	t.Run("at, len and items", func(t *testing.T) {
		s := view.NewSequence([]string{"foo", "bar", "baz"})

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, "foo", s.At(0))
		assert.Equal(t, "baz", s.At(2))
		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
	})

	t.Run("view reflects later mutations of the owner slice", func(t *testing.T) {
		backing := []int{1, 2, 3}
		s := view.NewSequence(backing)

		backing[1] = 99

		assert.Equal(t, 99, s.At(1))
	})

	t.Run("items is a copy, not the backing store", func(t *testing.T) {
		backing := []int{1, 2, 3}
		s := view.NewSequence(backing)

		items := s.Items()
		items[0] = 42

		assert.Equal(t, 1, backing[0])
	})

	t.Run("out of range access panics", func(t *testing.T) {
		s := view.NewSequence([]int{1})
		assert.Panics(t, func() { s.At(5) })
	})
}

func TestSequence_Search(t *testing.T) {
	t.Run("index of first occurrence", func(t *testing.T) {
		s := view.NewSequence([]string{"a", "b", "a"})

		i, ok := s.Index("a")
		assert.True(t, ok)
		assert.Equal(t, 0, i)

		_, ok = s.Index("z")
		assert.False(t, ok)
	})

	t.Run("contains and count", func(t *testing.T) {
		s := view.NewSequence([]int{1, 3, 3, 5})

		assert.True(t, s.Contains(3))
		assert.False(t, s.Contains(4))
		assert.Equal(t, 2, s.Count(3))
		assert.Equal(t, 0, s.Count(4))
	})
}

func TestSequence_Order(t *testing.T) {
	t.Run("reversed", func(t *testing.T) {
		s := view.NewSequence([]int{1, 2, 3})
		assert.Equal(t, []int{3, 2, 1}, s.Reversed())
	})

	t.Run("for each visits in order", func(t *testing.T) {
		s := view.NewSequence([]string{"a", "b"})

		var seen []string
		s.ForEach(func(v string) { seen = append(seen, v) })

		assert.Equal(t, []string{"a", "b"}, seen)
	})
}

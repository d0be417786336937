package maputils_test

import (
	"strings"
	"testing"

	"github.com/denismitr/discordkit/maputils"
	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	t.Run("values are replaced, keys stay", func(t *testing.T) {
		in := map[string]string{"a": "x", "b": "y"}

		out := maputils.Transform(in, func(k, v string) string {
			return strings.ToUpper(v)
		})

		assert.Equal(t, map[string]string{"a": "X", "b": "Y"}, out)
		assert.Equal(t, "x", in["a"], "input map is untouched")
	})
}

func TestTransformWithKeys(t *testing.T) {
	t.Run("keys and values are both replaced", func(t *testing.T) {
		in := map[string]int{"a": 1, "b": 2}

		out := maputils.TransformWithKeys(in, func(k string, v int) (string, int) {
			return strings.ToUpper(k), v * 10
		})

		assert.Equal(t, map[string]int{"A": 10, "B": 20}, out)
	})
}

func TestFilter(t *testing.T) {
	t.Run("drops pairs failing the predicate", func(t *testing.T) {
		in := map[string]string{"keep": "v", "drop": ""}

		out := maputils.Filter(in, func(k, v string) bool { return v != "" })

		assert.Equal(t, map[string]string{"keep": "v"}, out)
	})

	t.Run("empty map", func(t *testing.T) {
		out := maputils.Filter(map[int]int{}, func(int, int) bool { return true })
		assert.Empty(t, out)
	})
}

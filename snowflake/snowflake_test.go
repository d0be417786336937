package snowflake_test

import (
	"testing"
	"time"

	"github.com/denismitr/discordkit/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_Time(t *testing.T) {
	t.Run("known snowflake resolves to its creation time", func(t *testing.T) {
		// 175928847299117063 >> 22 = 41944705796 ms past the epoch
		id := snowflake.ID(175928847299117063)
		want := time.Date(2016, time.April, 30, 11, 18, 25, 796*1e6, time.UTC)

		assert.Equal(t, want, id.Time())
	})

	t.Run("epoch snowflake", func(t *testing.T) {
		assert.Equal(t, time.UnixMilli(snowflake.Epoch).UTC(), snowflake.ID(0).Time())
	})
}

func TestFromTime(t *testing.T) {
	t.Run("round trips through Time", func(t *testing.T) {
		instant := time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)

		low := snowflake.FromTime(instant, false)
		high := snowflake.FromTime(instant, true)

		assert.Equal(t, instant, low.Time())
		assert.Equal(t, instant, high.Time())
		assert.Equal(t, low+(1<<22-1), high)
	})

	t.Run("low end is exclusive, high end is inclusive", func(t *testing.T) {
		instant := time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)
		id := snowflake.Generate(instant)

		assert.Greater(t, id, snowflake.FromTime(instant, false)-1)
		assert.LessOrEqual(t, id, snowflake.FromTime(instant, true))
	})
}

func TestGenerate(t *testing.T) {
	t.Run("generated snowflake carries the given time", func(t *testing.T) {
		instant := time.Date(2020, time.January, 2, 3, 4, 5, 678*1e6, time.UTC)
		id := snowflake.Generate(instant)

		assert.Equal(t, instant, id.Time())
	})

	t.Run("zero time means now", func(t *testing.T) {
		before := time.Now().UTC().Truncate(time.Millisecond)
		id := snowflake.Generate(time.Time{})
		after := time.Now().UTC()

		assert.False(t, id.Time().Before(before))
		assert.False(t, id.Time().After(after))
	})
}

func TestParse(t *testing.T) {
	t.Run("decimal wire form", func(t *testing.T) {
		id, err := snowflake.Parse("175928847299117063")
		require.NoError(t, err)
		assert.Equal(t, snowflake.ID(175928847299117063), id)
		assert.Equal(t, "175928847299117063", id.String())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := snowflake.Parse("not-a-snowflake")
		assert.Error(t, err)

		_, err = snowflake.Parse("-5")
		assert.Error(t, err)
	})
}

package snowflake

import (
	"strconv"
	"time"
)

// Epoch is the platform epoch in milliseconds since the Unix epoch
// (first millisecond of 2015). Snowflake timestamps count from here.
const Epoch = 1420070400000

// ID is a platform-assigned 64-bit identifier. The upper 42 bits hold
// the creation timestamp, so IDs are monotonically time-ordered.
type ID uint64

// Parse converts the decimal string form used on the wire into an ID.
func Parse(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(v), nil
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Time returns the creation instant encoded in the ID, in UTC.
func (id ID) Time() time.Time {
	millis := int64(id>>22) + Epoch
	return time.UnixMilli(millis).UTC()
}

// FromTime returns a snowflake pretending to be created at t.
//
// When used as the lower end of a range, FromTime(t, false) - 1 is
// inclusive and FromTime(t, true) is exclusive. When used as the higher
// end, FromTime(t, true) + 1 is inclusive and FromTime(t, false) is
// exclusive.
func FromTime(t time.Time, high bool) ID {
	millis := t.UnixMilli() - Epoch
	id := ID(millis) << 22
	if high {
		id += 1<<22 - 1
	}
	return id
}

// Generate returns a snowflake created at t with all non-timestamp bits
// set, suitable as a placeholder ID. A zero t means now.
func Generate(t time.Time) ID {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return ID(t.UnixMilli()-Epoch)<<22 | 0x3FFFFF
}

package timeutil

import (
	"context"
	"fmt"
	"time"
)

// StampStyle selects the rendering of a timestamp markup tag. The
// client substitutes the tag with a localized string.
type StampStyle string

const (
	ShortTime     StampStyle = "t" // 22:57
	LongTime      StampStyle = "T" // 22:57:58
	ShortDate     StampStyle = "d" // 17/05/2016
	LongDate      StampStyle = "D" // 17 May 2016
	ShortDateTime StampStyle = "f" // 17 May 2016 22:57
	LongDateTime  StampStyle = "F" // Tuesday, 17 May 2016 22:57
	RelativeTime  StampStyle = "R" // 5 years ago
)

// UTCNow returns the current time in UTC.
func UTCNow() time.Time {
	return time.Now().UTC()
}

// ParseTimestamp converts an ISO 8601 timestamp from an API payload
// into a time.Time. An empty string yields the zero time and no
// error, mirroring payload fields that may be null.
func ParseTimestamp(timestamp string) (time.Time, error) {
	if timestamp == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, timestamp)
}

// Stamp formats t as platform timestamp markup, <t:unix[:style]>.
// An empty style renders the client default (short date time).
func Stamp(t time.Time, style StampStyle) string {
	if style == "" {
		return fmt.Sprintf("<t:%d>", t.Unix())
	}
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style)
}

// SleepUntil blocks until the given instant or until ctx is
// cancelled, whichever comes first. Past instants return immediately.
func SleepUntil(ctx context.Context, when time.Time) error {
	delay := time.Until(when)
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Delay runs fn on its own goroutine after d has elapsed. The task is
// abandoned, errors included, if ctx is cancelled first.
func Delay(ctx context.Context, d time.Duration, fn func(context.Context) error) {
	go func() {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			if ctx.Err() != nil {
				return
			}
			_ = fn(ctx)
		case <-ctx.Done():
		}
	}()
}

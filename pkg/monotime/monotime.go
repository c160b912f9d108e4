// Package monotime reads the monotonic clock as a source of
// timespan.Duration values.
package monotime

import (
	"github.com/pkg/errors"

	"github.com/mailru/timespan/pkg/timespan"
)

// Timestamp is a point on the monotonic clock.
type Timestamp struct {
	// sec gives the number of seconds elapsed since some unspecified
	// point in the past. The point is not persistent across restarts.
	sec int64

	// nsec specifies a non-negative nanosecond offset within the seconds.
	// It must be in the range [0, 999999999].
	nsec int32
}

// Add returns the timestamp t+d.
func (t Timestamp) Add(d timespan.Duration) Timestamp {
	t.sec += d.WholeSeconds()

	nsec := t.nsec + d.SubsecNanoseconds()
	if nsec >= 1e9 {
		t.sec++

		nsec -= 1e9
	} else if nsec < 0 {
		t.sec--

		nsec += 1e9
	}

	t.nsec = nsec

	return t
}

// Sub returns the duration t-u. A difference outside the representable
// range is clamped to timespan.Min or timespan.Max.
func (t Timestamp) Sub(u Timestamp) timespan.Duration {
	sec := t.sec - u.sec
	if (u.sec < 0 && sec < t.sec) || (u.sec > 0 && sec > t.sec) {
		if t.Before(u) {
			return timespan.Min
		}

		return timespan.Max
	}

	// The nanosecond fields are both in [0, 1e9), so the difference fits
	// int32 and New folds it without a second overflow.
	return timespan.New(sec, t.nsec-u.nsec)
}

// Equal reports whether the t is equal to u.
func (t Timestamp) Equal(u Timestamp) bool {
	return t.sec == u.sec && t.nsec == u.nsec
}

// Before reports whether the t is before u.
func (t Timestamp) Before(u Timestamp) bool {
	return t.sec < u.sec || t.sec == u.sec && t.nsec < u.nsec
}

// After reports whether the t is after u.
func (t Timestamp) After(u Timestamp) bool {
	return t.sec > u.sec || t.sec == u.sec && t.nsec > u.nsec
}

// Since returns the duration elapsed since t.
func Since(t Timestamp) (timespan.Duration, error) {
	now, err := Monotonic()
	if err != nil {
		return timespan.Zero, errors.Wrap(err, "error reading monotonic clock")
	}

	return now.Sub(t), nil
}

// Measure runs f and returns the duration it took.
func Measure(f func()) (timespan.Duration, error) {
	start, err := Monotonic()
	if err != nil {
		return timespan.Zero, errors.Wrap(err, "error reading monotonic clock")
	}

	f()

	end, err := Monotonic()
	if err != nil {
		return timespan.Zero, errors.Wrap(err, "error reading monotonic clock")
	}

	return end.Sub(start), nil
}

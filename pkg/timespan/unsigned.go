package timespan

import (
	"fmt"
	"math"

	"github.com/mailru/timespan/pkg/timespan/errs"
)

// Unsigned is the unsigned-only standard duration representation: a full
// uint64 of whole seconds plus a non-negative nanosecond offset below 1e9.
// It cannot express sign, and its upper half lies beyond the signed range,
// so conversions against Duration are fallible in both directions.
type Unsigned struct {
	secs uint64
	nsec uint32
}

// NewUnsigned returns the unsigned span of secs seconds and nanoseconds.
// Nanoseconds of at least 1e9 are folded into the seconds part.
func NewUnsigned(secs uint64, nanoseconds uint32) Unsigned {
	secs += uint64(nanoseconds / nsecPerSec)
	nanoseconds %= nsecPerSec

	return Unsigned{secs: secs, nsec: nanoseconds}
}

// Secs returns the number of whole seconds.
func (u Unsigned) Secs() uint64 {
	return u.secs
}

// Nanos returns the nanoseconds past the whole seconds, in [0, 1e9).
func (u Unsigned) Nanos() uint32 {
	return u.nsec
}

// AsSecsF64 returns the unsigned span as a floating number of seconds.
func (u Unsigned) AsSecsF64() float64 {
	return float64(u.secs) + float64(u.nsec)/nsecPerSec
}

// FromUnsigned converts an unsigned span into a Duration. It fails with
// errs.ErrConversionRange when the second count exceeds the signed range.
func FromUnsigned(u Unsigned) (Duration, error) {
	if u.secs > math.MaxInt64 {
		return Zero, fmt.Errorf("%w: %d seconds exceed the signed range", errs.ErrConversionRange, u.secs)
	}

	return New(int64(u.secs), int32(u.nsec)), nil
}

// AsUnsigned converts the duration into the unsigned representation. It
// fails with errs.ErrConversionRange for negative durations; the target
// cannot represent sign and the value is never silently truncated.
func (d Duration) AsUnsigned() (Unsigned, error) {
	if d.IsNegative() {
		return Unsigned{}, fmt.Errorf("%w: negative duration has no unsigned form", errs.ErrConversionRange)
	}

	return Unsigned{secs: uint64(d.seconds), nsec: uint32(d.nsec)}, nil
}

// AddUnsigned returns d+rhs, panicking if rhs has no signed form or the
// addition overflows.
func (d Duration) AddUnsigned(rhs Unsigned) Duration {
	conv, err := FromUnsigned(rhs)
	if err != nil {
		panic("timespan: overflow converting unsigned duration to duration")
	}

	return d.Add(conv)
}

// SubUnsigned returns d-rhs, panicking if rhs has no signed form or the
// subtraction overflows.
func (d Duration) SubUnsigned(rhs Unsigned) Duration {
	conv, err := FromUnsigned(rhs)
	if err != nil {
		panic("timespan: overflow converting unsigned duration to duration")
	}

	return d.Sub(conv)
}

// DivUnsigned returns the dimensionless ratio d/rhs.
func (d Duration) DivUnsigned(rhs Unsigned) float64 {
	return d.AsSecondsF64() / rhs.AsSecsF64()
}

// EqualUnsigned reports whether d and rhs denote the same span. An
// unsigned value outside the signed range equals no Duration.
func (d Duration) EqualUnsigned(rhs Unsigned) bool {
	if d.IsNegative() || rhs.secs > math.MaxInt64 {
		return false
	}

	return d.seconds == int64(rhs.secs) && d.nsec == int32(rhs.nsec)
}

// CmpUnsigned returns -1, 0 or 1 ordering d against rhs. An unsigned
// value whose second count exceeds the signed range orders above every
// Duration, so the comparison itself never fails.
func (d Duration) CmpUnsigned(rhs Unsigned) int {
	if rhs.secs > math.MaxInt64 {
		return -1
	}

	switch {
	case d.seconds < int64(rhs.secs):
		return -1
	case d.seconds > int64(rhs.secs):
		return 1
	case d.nsec < int32(rhs.nsec):
		return -1
	case d.nsec > int32(rhs.nsec):
		return 1
	default:
		return 0
	}
}

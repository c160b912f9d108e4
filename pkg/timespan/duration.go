// Package timespan implements a signed span of time with nanosecond
// precision.
//
// Unlike time.Duration, a Duration is not limited to the int64 nanosecond
// range: it carries a full int64 of whole seconds plus a bounded nanosecond
// remainder. Arithmetic comes in three flavors: checked operations report
// failure with a comma-ok result, saturating operations clamp to Min/Max,
// and the plain operators panic on overflow.
package timespan

import (
	"math"
	"math/big"
)

const (
	nsecPerSec   = 1_000_000_000
	nsecPerMilli = 1_000_000
	nsecPerMicro = 1_000

	secsPerMinute = 60
	secsPerHour   = 3_600
	secsPerDay    = 86_400
	secsPerWeek   = 604_800
)

// Duration is a span of time composed of a whole number of seconds and a
// fractional part expressed in nanoseconds. Durations may be negative.
//
// The zero value is a zero-length span. Duration is a plain comparable
// value; == is exact equality.
type Duration struct {
	// seconds gives the number of whole seconds in the span.
	seconds int64

	// nsec specifies a nanosecond offset within the second. Its magnitude
	// is always below 1e9 and its sign always matches the seconds field.
	nsec int32
}

// Named spans.
var (
	Zero        = Duration{}
	Nanosecond  = Nanoseconds(1)
	Microsecond = Microseconds(1)
	Millisecond = Milliseconds(1)
	Second      = Seconds(1)
	Minute      = Minutes(1)
	Hour        = Hours(1)
	Day         = Days(1)
	Week        = Weeks(1)

	// Min is the smallest representable duration. Adding any negative
	// duration to it overflows.
	Min = Duration{seconds: math.MinInt64, nsec: -nsecPerSec + 1}

	// Max is the largest representable duration. Adding any positive
	// duration to it overflows.
	Max = Duration{seconds: math.MaxInt64, nsec: nsecPerSec - 1}
)

// normalize folds an out-of-range or sign-inconsistent nanosecond value
// into canonical form: |nsec| < 1e9 with the sign of nsec matching the
// sign of seconds. It is the single place the invariant is enforced;
// every constructor and arithmetic path goes through it, or through
// newUnchecked when the invariant is already established.
//
// The folded carry is at most ±2 seconds; if adding it to a seconds value
// near the int64 extremes overflows, the result saturates to Min/Max. The
// sign-correcting branches below always move seconds toward zero and
// cannot overflow.
func normalize(seconds int64, nsec int32) Duration {
	carry := int64(nsec) / nsecPerSec
	nsec %= nsecPerSec

	seconds, over := addI64(seconds, carry)
	if over {
		if carry > 0 {
			return Max
		}

		return Min
	}

	if seconds > 0 && nsec < 0 {
		seconds--
		nsec += nsecPerSec
	} else if seconds < 0 && nsec > 0 {
		seconds++
		nsec -= nsecPerSec
	}

	return Duration{seconds: seconds, nsec: nsec}
}

// newUnchecked builds a Duration without normalizing. The caller must have
// established the sign invariant already, e.g. by truncating division by a
// power of ten.
func newUnchecked(seconds int64, nsec int32) Duration {
	return Duration{seconds: seconds, nsec: nsec}
}

// New returns the span of seconds and nanoseconds. A nanosecond value of
// at least ±1e9, or one disagreeing in sign with seconds, is folded into
// the seconds part. If the fold carries past the int64 second range, the
// result saturates to Min/Max.
func New(seconds int64, nanoseconds int32) Duration {
	return normalize(seconds, nanoseconds)
}

// Weeks returns the span of n weeks.
func Weeks(n int64) Duration {
	return Seconds(n * secsPerWeek)
}

// Days returns the span of n days.
func Days(n int64) Duration {
	return Seconds(n * secsPerDay)
}

// Hours returns the span of n hours.
func Hours(n int64) Duration {
	return Seconds(n * secsPerHour)
}

// Minutes returns the span of n minutes.
func Minutes(n int64) Duration {
	return Seconds(n * secsPerMinute)
}

// Seconds returns the span of n seconds.
func Seconds(n int64) Duration {
	return newUnchecked(n, 0)
}

// Milliseconds returns the span of n milliseconds.
func Milliseconds(n int64) Duration {
	// Truncating division and remainder agree in sign, so the result is
	// canonical by construction.
	return newUnchecked(n/1_000, int32(n%1_000)*nsecPerMilli)
}

// Microseconds returns the span of n microseconds.
func Microseconds(n int64) Duration {
	return newUnchecked(n/1_000_000, int32(n%1_000_000)*nsecPerMicro)
}

// Nanoseconds returns the span of n nanoseconds.
func Nanoseconds(n int64) Duration {
	return newUnchecked(n/nsecPerSec, int32(n%nsecPerSec))
}

// SecondsF64 returns the span of n seconds given as a float64.
//
// Integral parts beyond the int64 range saturate to Min/Max seconds and
// NaN yields Zero.
func SecondsF64(n float64) Duration {
	return newUnchecked(satI64(n), int32(satI64(math.Mod(n, 1)*nsecPerSec)))
}

// SecondsF32 returns the span of n seconds given as a float32.
//
// Integral parts beyond the int64 range saturate to Min/Max seconds and
// NaN yields Zero.
func SecondsF32(n float32) Duration {
	return SecondsF64(float64(n))
}

// satI64 converts a float64 to int64, clamping out-of-range values and
// mapping NaN to zero.
func satI64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64: // rounds to 2^63, anything at or above saturates
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.nsec == 0
}

// IsNegative reports whether the duration is below zero.
func (d Duration) IsNegative() bool {
	return d.seconds < 0 || d.nsec < 0
}

// IsPositive reports whether the duration is above zero.
func (d Duration) IsPositive() bool {
	return d.seconds > 0 || d.nsec > 0
}

// Abs returns the absolute value of the duration, saturating to Max for
// Min (whose exact magnitude is not representable).
func (d Duration) Abs() Duration {
	seconds := d.seconds
	if seconds < 0 {
		if seconds == math.MinInt64 {
			seconds = math.MaxInt64
		} else {
			seconds = -seconds
		}
	}

	nsec := d.nsec
	if nsec < 0 {
		nsec = -nsec
	}

	return newUnchecked(seconds, nsec)
}

// WholeWeeks returns the number of whole weeks, truncated toward zero.
func (d Duration) WholeWeeks() int64 {
	return d.WholeSeconds() / secsPerWeek
}

// WholeDays returns the number of whole days, truncated toward zero.
func (d Duration) WholeDays() int64 {
	return d.WholeSeconds() / secsPerDay
}

// WholeHours returns the number of whole hours, truncated toward zero.
func (d Duration) WholeHours() int64 {
	return d.WholeSeconds() / secsPerHour
}

// WholeMinutes returns the number of whole minutes, truncated toward zero.
func (d Duration) WholeMinutes() int64 {
	return d.WholeSeconds() / secsPerMinute
}

// WholeSeconds returns the number of whole seconds.
func (d Duration) WholeSeconds() int64 {
	return d.seconds
}

// WholeMilliseconds returns the total number of whole milliseconds. The
// result does not fit int64 at extreme second counts, hence big.Int.
func (d Duration) WholeMilliseconds() *big.Int {
	return new(big.Int).Quo(d.bigNanoseconds(), bigNsecPerMilli)
}

// WholeMicroseconds returns the total number of whole microseconds.
func (d Duration) WholeMicroseconds() *big.Int {
	return new(big.Int).Quo(d.bigNanoseconds(), bigNsecPerMicro)
}

// WholeNanoseconds returns the total number of nanoseconds.
func (d Duration) WholeNanoseconds() *big.Int {
	return d.bigNanoseconds()
}

// SubsecMilliseconds returns the milliseconds past the whole seconds,
// in (-1000, 1000), zero or matching the sign of the duration.
func (d Duration) SubsecMilliseconds() int32 {
	return d.nsec / nsecPerMilli
}

// SubsecMicroseconds returns the microseconds past the whole seconds,
// in (-1e6, 1e6), zero or matching the sign of the duration.
func (d Duration) SubsecMicroseconds() int32 {
	return d.nsec / nsecPerMicro
}

// SubsecNanoseconds returns the nanoseconds past the whole seconds,
// in (-1e9, 1e9), zero or matching the sign of the duration.
func (d Duration) SubsecNanoseconds() int32 {
	return d.nsec
}

// AsSecondsF64 returns the duration as a floating number of seconds.
func (d Duration) AsSecondsF64() float64 {
	return float64(d.seconds) + float64(d.nsec)/nsecPerSec
}

// AsSecondsF32 returns the duration as a floating number of seconds.
func (d Duration) AsSecondsF32() float32 {
	return float32(d.seconds) + float32(d.nsec)/nsecPerSec
}

var (
	bigNsecPerSec   = big.NewInt(nsecPerSec)
	bigNsecPerMilli = big.NewInt(nsecPerMilli)
	bigNsecPerMicro = big.NewInt(nsecPerMicro)

	bigMinNanoseconds = Min.bigNanoseconds()
	bigMaxNanoseconds = Max.bigNanoseconds()
)

// bigNanoseconds returns seconds*1e9+nsec as a big.Int. Both fields share
// a sign, so the sum never cancels incorrectly.
func (d Duration) bigNanoseconds() *big.Int {
	n := big.NewInt(d.seconds)
	n.Mul(n, bigNsecPerSec)

	return n.Add(n, big.NewInt(int64(d.nsec)))
}

// fromBigNanoseconds rebuilds a Duration from a total nanosecond count.
// The caller must ensure n lies within [Min, Max]; the quotient/remainder
// split preserves the sign invariant. n is clobbered.
func fromBigNanoseconds(n *big.Int) Duration {
	var rem big.Int
	n.QuoRem(n, bigNsecPerSec, &rem)

	return newUnchecked(n.Int64(), int32(rem.Int64()))
}

package timespan

import "math"

// addI64 returns a+b, reporting overflow.
func addI64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return sum, true
	}

	return sum, false
}

// subI64 returns a-b, reporting overflow.
func subI64(a, b int64) (int64, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return diff, true
	}

	return diff, false
}

// mulI64 returns a*b, reporting overflow.
func mulI64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}

	if a == math.MinInt64 && b == -1 || b == math.MinInt64 && a == -1 {
		return a * b, true
	}

	prod := a * b

	return prod, prod/b != a
}

// CheckedAdd computes d+rhs, reporting false if the result would overflow.
//
// The seconds are added first with overflow detection; the nanosecond
// fields are both in range, so their sum lies in (-2e9, 2e9) and needs at
// most one carry step.
func (d Duration) CheckedAdd(rhs Duration) (Duration, bool) {
	seconds, over := addI64(d.seconds, rhs.seconds)
	if over {
		return Zero, false
	}

	nsec := d.nsec + rhs.nsec
	if nsec >= nsecPerSec || seconds < 0 && nsec > 0 {
		nsec -= nsecPerSec

		if seconds, over = addI64(seconds, 1); over {
			return Zero, false
		}
	} else if nsec <= -nsecPerSec || seconds > 0 && nsec < 0 {
		nsec += nsecPerSec

		if seconds, over = subI64(seconds, 1); over {
			return Zero, false
		}
	}

	return newUnchecked(seconds, nsec), true
}

// CheckedSub computes d-rhs, reporting false if the result would overflow.
func (d Duration) CheckedSub(rhs Duration) (Duration, bool) {
	seconds, over := subI64(d.seconds, rhs.seconds)
	if over {
		return Zero, false
	}

	nsec := d.nsec - rhs.nsec
	if nsec >= nsecPerSec || seconds < 0 && nsec > 0 {
		nsec -= nsecPerSec

		if seconds, over = addI64(seconds, 1); over {
			return Zero, false
		}
	} else if nsec <= -nsecPerSec || seconds > 0 && nsec < 0 {
		nsec += nsecPerSec

		if seconds, over = subI64(seconds, 1); over {
			return Zero, false
		}
	}

	return newUnchecked(seconds, nsec), true
}

// CheckedMul computes d*rhs, reporting false if the result would overflow.
//
// The nanosecond product is accumulated in int64, which cannot overflow
// for a 32-bit scalar: |nsec| < 1e9 and |rhs| <= 2^31 keep it below 2^62.
func (d Duration) CheckedMul(rhs int32) (Duration, bool) {
	totalNanos := int64(d.nsec) * int64(rhs)
	extraSecs := totalNanos / nsecPerSec
	nsec := int32(totalNanos % nsecPerSec)

	seconds, over := mulI64(d.seconds, int64(rhs))
	if over {
		return Zero, false
	}

	if seconds, over = addI64(seconds, extraSecs); over {
		return Zero, false
	}

	return newUnchecked(seconds, nsec), true
}

// CheckedDiv computes d/rhs with truncation toward zero, reporting false
// if rhs is zero or the seconds quotient overflows.
func (d Duration) CheckedDiv(rhs int32) (Duration, bool) {
	if rhs == 0 || d.seconds == math.MinInt64 && rhs == -1 {
		return Zero, false
	}

	seconds := d.seconds / int64(rhs)

	// The seconds lost to truncation are redistributed into nanoseconds.
	// carry is below |rhs| <= 2^31, so carry*1e9 stays within int64.
	carry := d.seconds - seconds*int64(rhs)
	extraNanos := carry * nsecPerSec / int64(rhs)
	nsec := d.nsec/rhs + int32(extraNanos)

	return newUnchecked(seconds, nsec), true
}

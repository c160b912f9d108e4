package timespan

import "math/big"

// Add returns d+rhs, panicking on overflow. CheckedAdd and SaturatingAdd
// are the opt-in non-panicking forms.
func (d Duration) Add(rhs Duration) Duration {
	sum, ok := d.CheckedAdd(rhs)
	if !ok {
		panic("timespan: overflow when adding durations")
	}

	return sum
}

// Sub returns d-rhs, panicking on overflow.
func (d Duration) Sub(rhs Duration) Duration {
	diff, ok := d.CheckedSub(rhs)
	if !ok {
		panic("timespan: overflow when subtracting durations")
	}

	return diff
}

// Neg returns -d. Uniform negation of both fields preserves the sign
// invariant, so no normalization pass is needed. Neg(Min) wraps.
func (d Duration) Neg() Duration {
	return newUnchecked(-d.seconds, -d.nsec)
}

// Mul returns d*rhs for an integer scalar, panicking on overflow. The
// product is computed over the total nanosecond count in arbitrary
// precision, so intermediate steps cannot overflow.
func (d Duration) Mul(rhs int64) Duration {
	total := d.bigNanoseconds()
	total.Mul(total, big.NewInt(rhs))

	if total.Cmp(bigMinNanoseconds) < 0 || total.Cmp(bigMaxNanoseconds) > 0 {
		panic("timespan: overflow when multiplying duration")
	}

	return fromBigNanoseconds(total)
}

// Div returns d/rhs for an integer scalar, truncating toward zero. It
// panics if rhs is zero, or on overflow: dividing Min by -1 produces a
// quotient one second beyond Max.
func (d Duration) Div(rhs int64) Duration {
	if rhs == 0 {
		panic("timespan: division by zero")
	}

	total := d.bigNanoseconds()
	total.Quo(total, big.NewInt(rhs))

	if total.Cmp(bigMinNanoseconds) < 0 || total.Cmp(bigMaxNanoseconds) > 0 {
		panic("timespan: overflow when dividing duration")
	}

	return fromBigNanoseconds(total)
}

// MulF64 returns d*rhs for a floating scalar. The operation runs over the
// floating seconds representation, avoiding compounded integer rounding
// across repeated fractional scaling.
func (d Duration) MulF64(rhs float64) Duration {
	return SecondsF64(d.AsSecondsF64() * rhs)
}

// MulF32 returns d*rhs for a float32 scalar.
func (d Duration) MulF32(rhs float32) Duration {
	return SecondsF32(d.AsSecondsF32() * rhs)
}

// DivF64 returns d/rhs for a floating scalar.
func (d Duration) DivF64(rhs float64) Duration {
	return SecondsF64(d.AsSecondsF64() / rhs)
}

// DivF32 returns d/rhs for a float32 scalar.
func (d Duration) DivF32(rhs float32) Duration {
	return SecondsF32(d.AsSecondsF32() / rhs)
}

// DivDuration returns the dimensionless ratio d/rhs.
func (d Duration) DivDuration(rhs Duration) float64 {
	return d.AsSecondsF64() / rhs.AsSecondsF64()
}

// Compare returns -1, 0 or 1 ordering d against rhs. Canonical values
// order lexicographically over (seconds, nsec).
func (d Duration) Compare(rhs Duration) int {
	switch {
	case d.seconds < rhs.seconds:
		return -1
	case d.seconds > rhs.seconds:
		return 1
	case d.nsec < rhs.nsec:
		return -1
	case d.nsec > rhs.nsec:
		return 1
	default:
		return 0
	}
}

// Sum adds up the given durations, panicking on overflow. Summing nothing
// yields Zero.
func Sum(ds ...Duration) Duration {
	total := Zero
	for _, d := range ds {
		total = total.Add(d)
	}

	return total
}

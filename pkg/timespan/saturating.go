package timespan

// SaturatingAdd computes d+rhs, clamping to Min/Max instead of
// overflowing. The clamp direction follows the sign of d, which is the
// operand whose sign dominates an overflowing addition.
func (d Duration) SaturatingAdd(rhs Duration) Duration {
	seconds, over := addI64(d.seconds, rhs.seconds)
	if over {
		if d.seconds > 0 {
			return Max
		}

		return Min
	}

	nsec := d.nsec + rhs.nsec
	if nsec >= nsecPerSec || seconds < 0 && nsec > 0 {
		nsec -= nsecPerSec

		if seconds, over = addI64(seconds, 1); over {
			return Max
		}
	} else if nsec <= -nsecPerSec || seconds > 0 && nsec < 0 {
		nsec += nsecPerSec

		if seconds, over = subI64(seconds, 1); over {
			return Min
		}
	}

	return newUnchecked(seconds, nsec)
}

// SaturatingSub computes d-rhs, clamping to Min/Max instead of
// overflowing.
func (d Duration) SaturatingSub(rhs Duration) Duration {
	seconds, over := subI64(d.seconds, rhs.seconds)
	if over {
		if d.seconds > 0 {
			return Max
		}

		return Min
	}

	nsec := d.nsec - rhs.nsec
	if nsec >= nsecPerSec || seconds < 0 && nsec > 0 {
		nsec -= nsecPerSec

		if seconds, over = addI64(seconds, 1); over {
			return Max
		}
	} else if nsec <= -nsecPerSec || seconds > 0 && nsec < 0 {
		nsec += nsecPerSec

		if seconds, over = subI64(seconds, 1); over {
			return Min
		}
	}

	return newUnchecked(seconds, nsec)
}

// SaturatingMul computes d*rhs, clamping to Min/Max instead of
// overflowing. When the seconds product overflows, agreeing operand signs
// clamp to Max and disagreeing signs to Min; when only the carry addition
// overflows, the direction follows the sign of the pre-carry product.
func (d Duration) SaturatingMul(rhs int32) Duration {
	totalNanos := int64(d.nsec) * int64(rhs)
	extraSecs := totalNanos / nsecPerSec
	nsec := int32(totalNanos % nsecPerSec)

	seconds, over := mulI64(d.seconds, int64(rhs))
	if over {
		if d.seconds > 0 && rhs > 0 || d.seconds < 0 && rhs < 0 {
			return Max
		}

		return Min
	}

	if seconds, over = addI64(seconds, extraSecs); over {
		if d.seconds > 0 && rhs > 0 {
			return Max
		}

		return Min
	}

	return newUnchecked(seconds, nsec)
}

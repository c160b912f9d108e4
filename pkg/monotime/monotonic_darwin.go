package monotime

import "time"

// Monotonic returns the current reading of the clock. Note that the
// returned value is not persistent; it is no longer actual after a system
// restart.
func Monotonic() (Timestamp, error) {
	now := time.Now()
	sec := now.Unix()
	nsec := int32(now.UnixNano() - sec*1e9)

	return Timestamp{
		sec:  sec,
		nsec: nsec,
	}, nil
}

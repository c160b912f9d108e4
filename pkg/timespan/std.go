package timespan

import (
	"fmt"
	"time"

	"github.com/mailru/timespan/pkg/timespan/errs"
)

// FromStd converts a time.Duration. The conversion is total: any int64
// nanosecond count is representable here.
func FromStd(d time.Duration) Duration {
	return Nanoseconds(int64(d))
}

// AsStd converts the duration to a time.Duration. It fails with
// errs.ErrConversionRange when the total nanosecond count exceeds the
// int64 range time.Duration is built on.
func (d Duration) AsStd() (time.Duration, error) {
	total := d.bigNanoseconds()
	if !total.IsInt64() {
		return 0, fmt.Errorf("%w: duration exceeds the time.Duration range", errs.ErrConversionRange)
	}

	return time.Duration(total.Int64()), nil
}

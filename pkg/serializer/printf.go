package serializer

import (
	"fmt"
	"strconv"

	"github.com/mailru/timespan/pkg/serializer/errs"
	"github.com/mailru/timespan/pkg/timespan"
)

// PrintfUnmarshalSeconds parses a printf'd floating number of seconds.
func PrintfUnmarshalSeconds(opt string, data string, v *timespan.Duration) error {
	f, err := strconv.ParseFloat(data, 64)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrPrintfParse, err)
	}

	*v = timespan.SecondsF64(f)

	return nil
}

// PrintfMarshalSeconds formats the duration as seconds with the given
// printf verb.
func PrintfMarshalSeconds(opt string, d timespan.Duration) (string, error) {
	return fmt.Sprintf(opt, d.AsSecondsF64()), nil
}

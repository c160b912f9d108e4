package timespan_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gotest.tools/assert"

	"github.com/mailru/timespan/pkg/timespan"
	"github.com/mailru/timespan/pkg/timespan/errs"
)

func TestUnsignedAccessors(t *testing.T) {
	u := timespan.NewUnsigned(1, 500_000_000)
	assert.Equal(t, u.Secs(), uint64(1))
	assert.Equal(t, u.Nanos(), uint32(500_000_000))
	assert.Equal(t, u.AsSecsF64(), 1.5)

	// Excess nanoseconds fold into the second count.
	folded := timespan.NewUnsigned(0, 2_500_000_000)
	assert.Equal(t, folded.Secs(), uint64(2))
	assert.Equal(t, folded.Nanos(), uint32(500_000_000))
}

func TestFromUnsigned(t *testing.T) {
	d, err := timespan.FromUnsigned(timespan.NewUnsigned(3, 250_000_000))
	assert.NilError(t, err)
	assert.Equal(t, d, timespan.New(3, 250_000_000))

	d, err = timespan.FromUnsigned(timespan.NewUnsigned(math.MaxInt64, 999_999_999))
	assert.NilError(t, err)
	assert.Equal(t, d, timespan.Max)

	_, err = timespan.FromUnsigned(timespan.NewUnsigned(math.MaxInt64+1, 0))
	assert.Assert(t, errors.Is(err, errs.ErrConversionRange))
}

func TestAsUnsigned(t *testing.T) {
	u, err := timespan.New(3, 250_000_000).AsUnsigned()
	assert.NilError(t, err)
	assert.Equal(t, u, timespan.NewUnsigned(3, 250_000_000))

	u, err = timespan.Zero.AsUnsigned()
	assert.NilError(t, err)
	assert.Equal(t, u, timespan.NewUnsigned(0, 0))

	_, err = timespan.Nanoseconds(-1).AsUnsigned()
	assert.Assert(t, errors.Is(err, errs.ErrConversionRange))
}

func TestUnsignedRoundTrip(t *testing.T) {
	for _, d := range []timespan.Duration{timespan.Zero, timespan.Nanosecond, timespan.New(12, 345_678_901), timespan.Max} {
		u, err := d.AsUnsigned()
		assert.NilError(t, err)

		back, err := timespan.FromUnsigned(u)
		assert.NilError(t, err)
		assert.Equal(t, back, d)
	}
}

func TestUnsignedArithmetic(t *testing.T) {
	assert.Equal(t, timespan.Seconds(1).AddUnsigned(timespan.NewUnsigned(2, 0)), timespan.Seconds(3))
	assert.Equal(t, timespan.Seconds(1).SubUnsigned(timespan.NewUnsigned(2, 0)), timespan.Seconds(-1))
	assert.Equal(t, timespan.Seconds(10).DivUnsigned(timespan.NewUnsigned(4, 0)), 2.5)

	require.PanicsWithValue(t, "timespan: overflow converting unsigned duration to duration", func() {
		timespan.Zero.AddUnsigned(timespan.NewUnsigned(math.MaxInt64+1, 0))
	})
	require.PanicsWithValue(t, "timespan: overflow when adding durations", func() {
		timespan.Max.AddUnsigned(timespan.NewUnsigned(0, 1))
	})
	require.PanicsWithValue(t, "timespan: overflow when subtracting durations", func() {
		timespan.Min.SubUnsigned(timespan.NewUnsigned(0, 1))
	})
}

func TestUnsignedComparisons(t *testing.T) {
	assert.Assert(t, timespan.Seconds(1).EqualUnsigned(timespan.NewUnsigned(1, 0)))
	assert.Assert(t, !timespan.Seconds(1).EqualUnsigned(timespan.NewUnsigned(2, 0)))
	// Negative durations never equal an unsigned span, including zero-like pairs.
	assert.Assert(t, !timespan.Seconds(-1).EqualUnsigned(timespan.NewUnsigned(1, 0)))
	assert.Assert(t, !timespan.Max.EqualUnsigned(timespan.NewUnsigned(math.MaxInt64+1, 0)))

	assert.Equal(t, timespan.Seconds(1).CmpUnsigned(timespan.NewUnsigned(1, 0)), 0)
	assert.Equal(t, timespan.Seconds(1).CmpUnsigned(timespan.NewUnsigned(2, 0)), -1)
	assert.Equal(t, timespan.Seconds(2).CmpUnsigned(timespan.NewUnsigned(1, 0)), 1)
	assert.Equal(t, timespan.Seconds(-1).CmpUnsigned(timespan.NewUnsigned(0, 0)), -1)
	assert.Equal(t, timespan.New(1, 2).CmpUnsigned(timespan.NewUnsigned(1, 1)), 1)
	// Beyond the signed range the unsigned span is greater than any Duration.
	assert.Equal(t, timespan.Max.CmpUnsigned(timespan.NewUnsigned(math.MaxInt64+1, 0)), -1)
}

func TestStdBridge(t *testing.T) {
	assert.Equal(t, timespan.FromStd(time.Second), timespan.Seconds(1))
	assert.Equal(t, timespan.FromStd(-1500*time.Millisecond), timespan.Milliseconds(-1_500))
	assert.Equal(t, timespan.FromStd(time.Duration(math.MaxInt64)), timespan.Nanoseconds(math.MaxInt64))

	std, err := timespan.Milliseconds(2_500).AsStd()
	assert.NilError(t, err)
	assert.Equal(t, std, 2500*time.Millisecond)

	std, err = timespan.Milliseconds(-2_500).AsStd()
	assert.NilError(t, err)
	assert.Equal(t, std, -2500*time.Millisecond)

	_, err = timespan.Max.AsStd()
	assert.Assert(t, errors.Is(err, errs.ErrConversionRange))
	_, err = timespan.Min.AsStd()
	assert.Assert(t, errors.Is(err, errs.ErrConversionRange))
}

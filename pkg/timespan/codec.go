package timespan

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/vmihailenco/msgpack.v2"
	"gopkg.in/yaml.v3"

	"github.com/mailru/timespan/pkg/timespan/errs"
)

// durationValue is the wire form of a Duration in structured encodings.
type durationValue struct {
	Seconds     int64 `json:"seconds" yaml:"seconds"`
	Nanoseconds int32 `json:"nanoseconds" yaml:"nanoseconds"`
}

// String renders the duration as signed decimal seconds with a trailing
// unit, e.g. "1.000000001s" or "-0.000000400s".
func (d Duration) String() string {
	text, _ := d.MarshalText()

	return string(text)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	buf := make([]byte, 0, 32)

	if d.IsNegative() {
		buf = append(buf, '-')
	}

	sec := uint64(d.seconds)
	if d.seconds < 0 {
		sec = uint64(-d.seconds) // wraps to the correct magnitude for MinInt64
	}

	buf = strconv.AppendUint(buf, sec, 10)

	nsec := d.nsec
	if nsec < 0 {
		nsec = -nsec
	}

	if nsec > 0 {
		buf = append(buf, '.')

		var frac [9]byte
		for i := 8; i >= 0; i-- {
			frac[i] = byte('0' + nsec%10)
			nsec /= 10
		}

		buf = append(buf, frac[:]...)
	}

	return append(buf, 's'), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the
// MarshalText form with an optional unit suffix and one to nine fraction
// digits.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSuffix(string(text), "s")
	neg := strings.HasPrefix(s, "-")

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	seconds, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrParseDuration, err)
	}

	var nsec int32

	if fracPart != "" {
		if len(fracPart) > 9 {
			return fmt.Errorf("%w: fraction %q is finer than a nanosecond", errs.ErrParseDuration, fracPart)
		}

		frac, err := strconv.ParseUint(fracPart+strings.Repeat("0", 9-len(fracPart)), 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrParseDuration, err)
		}

		nsec = int32(frac)
		if neg {
			nsec = -nsec
		}
	}

	*d = New(seconds, nsec)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(durationValue{Seconds: d.seconds, Nanoseconds: d.nsec})
}

// UnmarshalJSON implements json.Unmarshaler. Denormal input is folded to
// canonical form.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v durationValue

	err := json.Unmarshal(data, &v)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalValue, err)
	}

	*d = New(v.Seconds, v.Nanoseconds)

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return durationValue{Seconds: d.seconds, Nanoseconds: d.nsec}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Scalars are parsed as the
// text form, mappings as the seconds/nanoseconds pair.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string

		err := node.Decode(&s)
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrUnmarshalValue, err)
		}

		return d.UnmarshalText([]byte(s))
	}

	var v durationValue

	err := node.Decode(&v)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalValue, err)
	}

	*d = New(v.Seconds, v.Nanoseconds)

	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder: a two-element array of
// seconds and nanoseconds.
func (d Duration) EncodeMsgpack(enc *msgpack.Encoder) error {
	err := enc.EncodeSliceLen(2)
	if err != nil {
		return err
	}

	err = enc.EncodeInt64(d.seconds)
	if err != nil {
		return err
	}

	return enc.EncodeInt64(int64(d.nsec))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (d *Duration) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeSliceLen()
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalValue, err)
	}

	if n != 2 {
		return fmt.Errorf("%w: expected 2 elements, got %d", errs.ErrUnmarshalValue, n)
	}

	seconds, err := dec.DecodeInt64()
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalValue, err)
	}

	nsec, err := dec.DecodeInt64()
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalValue, err)
	}

	if nsec < math.MinInt32 || nsec > math.MaxInt32 {
		return fmt.Errorf("%w: nanoseconds %d overflow int32", errs.ErrUnmarshalValue, nsec)
	}

	*d = New(seconds, int32(nsec))

	return nil
}

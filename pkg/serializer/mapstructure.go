package serializer

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mailru/mapstructure"

	"github.com/mailru/timespan/pkg/serializer/errs"
	"github.com/mailru/timespan/pkg/timespan"
)

var durationType = reflect.TypeOf(timespan.Duration{})

// DurationHook decodes timespan.Duration targets from the loose forms
// found in config maps: the text form ("1.5s"), numeric seconds, or a
// {seconds, nanoseconds} map.
func DurationHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != durationType || from == durationType {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		var d timespan.Duration

		err := d.UnmarshalText([]byte(v))
		if err != nil {
			return nil, err
		}

		return d, nil
	case float64:
		return timespan.SecondsF64(v), nil
	case float32:
		return timespan.SecondsF32(v), nil
	case int:
		return timespan.Seconds(int64(v)), nil
	case int64:
		return timespan.Seconds(v), nil
	case map[string]interface{}:
		seconds, ok := looseInt64(v["seconds"])
		if !ok {
			return nil, fmt.Errorf("%w: bad seconds in %v", errs.ErrMapstructureDecode, v)
		}

		nsec, ok := looseInt64(v["nanoseconds"])
		if !ok {
			return nil, fmt.Errorf("%w: bad nanoseconds in %v", errs.ErrMapstructureDecode, v)
		}

		return timespan.New(seconds, int32(nsec)), nil
	default:
		return data, nil
	}
}

// durationEncodeHook is the reverse direction: Duration values leaving
// through MapstructureMarshal become {seconds, nanoseconds} maps.
func durationEncodeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from != durationType {
		return data, nil
	}

	d, ok := data.(timespan.Duration)
	if !ok {
		return data, nil
	}

	return map[string]interface{}{
		"seconds":     d.WholeSeconds(),
		"nanoseconds": int64(d.SubsecNanoseconds()),
	}, nil
}

// looseInt64 accepts the numeric types a JSON or YAML decoder may have
// produced. A missing value counts as zero.
func looseInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

func MapstructureUnmarshal(data string, v any) error {
	m := make(map[string]interface{})

	err := json.Unmarshal([]byte(data), &m)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalJSON, err)
	}

	config := &mapstructure.DecoderConfig{
		DecodeHook: DurationHook,
		// Включает режим, при котором если какое-то поле не использовалось при декодировании, то возращается ошибка
		ErrorUnused: true,
		// Включает режим перезатирания, то есть при декодировании поля в целевой структуре сбрасываются до default value
		// По умолчанию mapstructure пытается смержить 2 объекта
		ZeroFields: true,
		Result:     v,
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMapstructureNewDecoder, err)
	}

	err = decoder.Decode(m)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMapstructureDecode, err)
	}

	return nil
}

func MapstructureWeakUnmarshal(data string, v any) error {
	var m map[string]interface{}

	err := json.Unmarshal([]byte(data), &m)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalJSON, err)
	}

	config := &mapstructure.DecoderConfig{
		DecodeHook: DurationHook,
		// Включает режим, при котором если какое-то поле не использовалось при декодировании, то возращается ошибка
		ErrorUnused: true,
		// Включает режим перезатирания, то есть при декодировании поля в целевой структуре сбрасываются до default value
		// По умолчанию mapstructure пытается смержить 2 объекта
		ZeroFields: true,
		// Включает режим, нестрогой типизации
		WeaklyTypedInput: true,
		Result:           v,
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMapstructureNewDecoder, err)
	}

	err = decoder.Decode(m)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMapstructureDecode, err)
	}

	return nil
}

func MapstructureMarshal(v any) (string, error) {
	m := make(map[string]interface{})

	config := &mapstructure.DecoderConfig{
		DecodeHook: durationEncodeHook,
		Result:     &m,
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMapstructureNewDecoder, err)
	}

	err = decoder.Decode(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMapstructureEncode, err)
	}

	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMarshalJSON, err)
	}

	return string(b), nil
}

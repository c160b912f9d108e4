// Package serializer converts values carrying timespan.Duration fields
// to and from the interchange formats used in configs and storage: JSON,
// YAML, msgpack and loosely-typed maps.
package serializer

import (
	"encoding/json"
	"fmt"

	"github.com/mailru/timespan/pkg/serializer/errs"
	"github.com/mailru/timespan/pkg/timespan"
)

func JSONUnmarshal(data string, v any) error {
	err := json.Unmarshal([]byte(data), v)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalJSON, err)
	}

	return nil
}

func JSONMarshal(v any) (string, error) {
	ret, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMarshalJSON, err)
	}

	return string(ret), nil
}

// JSONUnmarshalDuration decodes a single duration value.
func JSONUnmarshalDuration(data string) (timespan.Duration, error) {
	var d timespan.Duration

	err := JSONUnmarshal(data, &d)
	if err != nil {
		return timespan.Zero, err
	}

	return d, nil
}

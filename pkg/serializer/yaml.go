package serializer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mailru/timespan/pkg/serializer/errs"
)

func YAMLUnmarshal(data string, v any) error {
	err := yaml.Unmarshal([]byte(data), v)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalYAML, err)
	}

	return nil
}

func YAMLMarshal(v any) (string, error) {
	ret, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMarshalYAML, err)
	}

	return string(ret), nil
}

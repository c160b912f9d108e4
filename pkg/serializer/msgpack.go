package serializer

import (
	"fmt"

	"gopkg.in/vmihailenco/msgpack.v2"

	"github.com/mailru/timespan/pkg/serializer/errs"
)

func MsgpackUnmarshal(data []byte, v any) error {
	err := msgpack.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalMsgpack, err)
	}

	return nil
}

func MsgpackMarshal(v any) ([]byte, error) {
	ret, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMarshalMsgpack, err)
	}

	return ret, nil
}

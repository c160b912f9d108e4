package errs

import "errors"

var (
	ErrConversionRange = errors.New("err conversion out of range")
	ErrParseDuration   = errors.New("err parse duration")
	ErrUnmarshalValue  = errors.New("err unmarshal duration value")
)

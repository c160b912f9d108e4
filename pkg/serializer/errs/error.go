package errs

import "errors"

var (
	ErrMarshalJSON            = errors.New("err marshal json")
	ErrUnmarshalJSON          = errors.New("err unmarshal json")
	ErrMarshalYAML            = errors.New("err marshal yaml")
	ErrUnmarshalYAML          = errors.New("err unmarshal yaml")
	ErrMarshalMsgpack         = errors.New("err marshal msgpack")
	ErrUnmarshalMsgpack       = errors.New("err unmarshal msgpack")
	ErrMapstructureNewDecoder = errors.New("err mapstructure new decoder")
	ErrMapstructureDecode     = errors.New("err mapstructure decode")
	ErrMapstructureEncode     = errors.New("err mapstructure encode")
	ErrPrintfParse            = errors.New("err printf parse")
)

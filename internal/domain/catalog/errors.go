package catalog

import "errors"

var (
	ErrInvalidArgument      = errors.New("catalog: invalid argument")
	ErrOutOfStock           = errors.New("catalog: insufficient stock")
	ErrUnsupportedOperation = errors.New("catalog: operation not supported")
)

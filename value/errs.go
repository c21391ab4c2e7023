package value

import "errors"

var (
	ErrMixedTypes = errors.New("mixed scalar types")
	ErrShape      = errors.New("shape error")
	ErrNotScalar  = errors.New("not a scalar type")
)

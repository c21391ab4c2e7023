package index

import "errors"

var (
	ErrParse      = errors.New("index parse error")
	ErrMixedSigns = errors.New("cannot mix positive and negative positions")
)

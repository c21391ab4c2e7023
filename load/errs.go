package load

import "errors"

var (
	ErrLoad = errors.New("load error")
	ErrTag  = errors.New("bad tagged value")
)

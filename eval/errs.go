package eval

import "errors"

var (
	ErrCompile      = errors.New("predicate compile error")
	ErrNotPredicate = errors.New("predicate did not return a logical")
)

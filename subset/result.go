package subset

import (
	"fmt"

	"github.com/signadot/subset/index"
	"github.com/signadot/subset/value"
)

// Miss says why a lookup did not find a value.
type Miss int

const (
	Found Miss = iota
	OutOfRange
	NoMatch
	AmbiguousMatch
)

func (m Miss) String() string {
	switch m {
	case Found:
		return "found"
	case OutOfRange:
		return "out of range"
	case NoMatch:
		return "no match"
	case AmbiguousMatch:
		return "ambiguous match"
	}
	return "<unknown miss>"
}

// Result is the outcome of a single-element lookup: either a value or a
// missing marker with the reason it is missing.
type Result struct {
	v    value.Value
	miss Miss
	key  index.Key
}

func found(v value.Value) Result {
	return Result{v: v}
}

func missing(m Miss, k index.Key) Result {
	return Result{miss: m, key: k}
}

// Value returns the value found, and false when the result is missing.
func (r Result) Value() (value.Value, bool) {
	if r.miss != Found {
		return nil, false
	}
	return r.v, true
}

// OrNA returns the value found or the missing marker value.
func (r Result) OrNA() value.Value {
	if r.miss != Found {
		return value.NA()
	}
	return r.v
}

func (r Result) Missing() bool { return r.miss != Found }

func (r Result) Reason() Miss { return r.miss }

// Key returns the key which missed, nil when found.
func (r Result) Key() index.Key { return r.key }

// Err returns the error strict mode reports for r, nil when found.
func (r Result) Err() error {
	switch r.miss {
	case Found:
		return nil
	case OutOfRange:
		return fmt.Errorf("%w: %s", ErrOutOfRange, r.key)
	case AmbiguousMatch:
		return fmt.Errorf("%w: %s", ErrAmbiguous, r.key)
	default:
		return fmt.Errorf("%w: %s", ErrNotFound, r.key)
	}
}

func (r Result) String() string {
	if r.miss == Found {
		return fmt.Sprintf("found %s", r.v.Type())
	}
	return fmt.Sprintf("missing (%s: %s)", r.miss, r.key)
}

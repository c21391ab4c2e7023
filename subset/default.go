package subset

import (
	"github.com/signadot/subset/index"
	"github.com/signadot/subset/value"
)

// The functions below use the default engine.

func Extract(v value.Value, ix index.Index) (value.Value, error) {
	return defaultEngine.Extract(v, ix)
}

func ExtractOne(v value.Value, k index.Index) (Result, error) {
	return defaultEngine.ExtractOne(v, k)
}

func ExtractByLiteral(v value.Value, ident string) (Result, error) {
	return defaultEngine.ExtractByLiteral(v, ident)
}

func ExtractMany(l *value.List, ix index.Index) (*value.List, error) {
	return defaultEngine.ExtractMany(l, ix)
}

func ExtractArray(a *value.Array, axes []index.Index, drop bool) (value.Value, error) {
	return defaultEngine.ExtractArrayDrop(a, axes, drop)
}

func Filter(v value.Value, mask []bool) (value.Value, error) {
	return defaultEngine.Filter(v, mask)
}

package subset

import (
	"fmt"

	"github.com/signadot/subset/index"
	"github.com/signadot/subset/value"
)

// CompleteMask returns, for equal-length containers, a mask that is true
// at position i iff no container is missing a value there. Tables are
// read row-wise across all columns, arrays element-wise over their data
// and lists item-wise, an item being missing when it is the NA value.
func CompleteMask(vs ...value.Value) ([]bool, error) {
	var res []bool
	for j, v := range vs {
		m, err := completeOne(v)
		if err != nil {
			return nil, err
		}
		if j == 0 {
			res = m
			continue
		}
		if len(m) != len(res) {
			return nil, fmt.Errorf("%w: argument %d has length %d, want %d", ErrShapeMismatch, j+1, len(m), len(res))
		}
		for i := range res {
			res[i] = res[i] && m[i]
		}
	}
	if res == nil {
		res = []bool{}
	}
	return res, nil
}

func completeOne(v value.Value) ([]bool, error) {
	switch x := v.(type) {
	case *value.Sequence:
		return completeSeq(x), nil
	case *value.Array:
		return completeSeq(x.Data()), nil
	case *value.Table:
		res := make([]bool, x.Rows())
		for i := range res {
			res[i] = true
		}
		for _, c := range x.Columns() {
			for i := range res {
				res[i] = res[i] && !c.Data.At(i).Missing
			}
		}
		return res, nil
	case *value.List:
		res := make([]bool, x.Len())
		for i := range res {
			res[i] = !value.IsNA(x.At(i).Value)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidContainer, typeOf(v))
}

func completeSeq(s *value.Sequence) []bool {
	res := make([]bool, s.Len())
	for i := range res {
		res[i] = !s.At(i).Missing
	}
	return res
}

// Filter applies mask to v: elements of sequences, arrays (yielding a
// sequence) and lists, rows of tables.
func (e *Engine) Filter(v value.Value, mask []bool) (value.Value, error) {
	if t, ok := v.(*value.Table); ok {
		return e.ExtractRows(t, index.Mask(mask))
	}
	return e.Extract(v, index.Mask(mask))
}

// Complete drops every position where any of v's values is missing; it
// is Filter over CompleteMask(v).
func (e *Engine) Complete(v value.Value) (value.Value, error) {
	m, err := CompleteMask(v)
	if err != nil {
		return nil, err
	}
	return e.Filter(v, m)
}

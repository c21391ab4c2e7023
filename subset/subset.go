package subset

import (
	"fmt"
	"log/slog"

	"github.com/signadot/subset/debug"
	"github.com/signadot/subset/index"
	"github.com/signadot/subset/value"
)

// Extract selects elements of v, returning a container of the same kind:
// a Sequence for sequences and arrays (arrays index their column-major
// data), a List for lists and a Table of the selected columns for tables.
//
// Out-of-range positions and unmatched names select missing elements.
// A mask whose length does not divide the target length fails with
// ErrShapeMismatch unless the engine recycles leniently.
func (e *Engine) Extract(v value.Value, ix index.Index) (value.Value, error) {
	x, err := e.Of(v)
	if err != nil {
		return nil, err
	}
	res, err := x.Extract(ix)
	if err != nil {
		return nil, err
	}
	if debug.Extract() {
		debug.Logf("extract %s[%s] -> %s len %d\n", v.Type(), ix, res.Type(), res.Len())
	}
	return res, nil
}

// ExtractOne returns the single element of v selected by k, unwrapped: an
// element of a sequence as a length-1 sequence, an item's value for
// lists, a column for tables. A Path key descends one key at a time.
//
// Names match exactly, else by unique prefix unless the engine requires
// exact matches. A miss is a missing Result, or an error in strict mode.
func (e *Engine) ExtractOne(v value.Value, k index.Index) (Result, error) {
	var path index.Path
	switch x := k.(type) {
	case index.Path:
		path = x
	case index.Pos, index.Name:
		path = index.Path{x.(index.Key)}
	default:
		kk, ok := index.AsKey(k)
		if !ok {
			return Result{}, fmt.Errorf("%w: %T %s is not a single key", ErrInvalidKey, k, k)
		}
		path = index.Path{kk}
	}
	if len(path) == 0 {
		return Result{}, fmt.Errorf("%w: empty path", ErrInvalidKey)
	}
	cur := v
	for i, kk := range path {
		x, err := e.Of(cur)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", path[:i+1], err)
		}
		r, err := x.ExtractOne(kk)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", path[:i+1], err)
		}
		if r.Missing() {
			e.log.Debug("lookup missed", slog.String("path", path[:i+1].String()), slog.String("reason", r.miss.String()))
			if e.strict {
				return r, r.Err()
			}
			return r, nil
		}
		cur = r.v
	}
	return found(cur), nil
}

// ExtractByLiteral looks up a bareword identifier in a list or table. It
// behaves as ExtractOne with a Name key; an absent name is a missing
// Result, not an error, outside strict mode.
func (e *Engine) ExtractByLiteral(v value.Value, ident string) (Result, error) {
	if !index.IsIdent(ident) {
		return Result{}, fmt.Errorf("%w: %q is not an identifier", ErrInvalidKey, ident)
	}
	switch v.(type) {
	case *value.List, *value.Table:
	default:
		return Result{}, fmt.Errorf("%w: literal name lookup on %s", ErrInvalidContainer, typeOf(v))
	}
	return e.ExtractOne(v, index.Name(ident))
}

// ExtractMany selects items of l, returning a new list with the selected
// (name, value) pairs in index order. A Path is taken as a top-level
// selection of its keys, never as nested descent.
func (e *Engine) ExtractMany(l *value.List, ix index.Index) (*value.List, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil list", ErrInvalidContainer)
	}
	res, err := e.Extract(l, ix)
	if err != nil {
		return nil, err
	}
	return res.(*value.List), nil
}

// ExtractArray indexes each axis of a using the engine's drop policy.
func (e *Engine) ExtractArray(a *value.Array, axes []index.Index) (value.Value, error) {
	return e.ExtractArrayDrop(a, axes, e.drop)
}

// ExtractArrayDrop indexes each axis of a. Axis indices may be Pos,
// Positions, Mask or All; out-of-range coordinates select missing cells.
//
// With drop set, every axis of extent 1 is removed from the result, and a
// result of rank 1 or less is returned as a Sequence. Fixing every axis to
// one coordinate yields a length-1 *value.Sequence, not a value.Scalar;
// use At(0) for the cell. Without drop the result keeps the rank of a.
func (e *Engine) ExtractArrayDrop(a *value.Array, axes []index.Index, drop bool) (value.Value, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil array", ErrInvalidContainer)
	}
	if len(axes) != a.Rank() {
		return nil, fmt.Errorf("%w: %d indices for rank %d", ErrRank, len(axes), a.Rank())
	}
	sel := make([][]int, len(axes))
	dims := make([]int, len(axes))
	total := 1
	for ax, ix := range axes {
		switch ix.(type) {
		case index.Pos, index.Positions, index.Mask, index.All:
		default:
			return nil, fmt.Errorf("%w: axis %d: %T is not an axis index", ErrInvalidKey, ax+1, ix)
		}
		pos, err := e.resolve(target{n: a.Dim(ax)}, ix)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", ax+1, err)
		}
		sel[ax] = pos
		dims[ax] = len(pos)
		total *= len(pos)
	}
	cells := make([]value.Scalar, total)
	src := make([]int, len(axes))
	for off := range total {
		rem := off
		out := false
		for ax := range axes {
			c := sel[ax][rem%dims[ax]]
			rem /= dims[ax]
			src[ax] = c
			out = out || c == -1
		}
		if out {
			cells[off] = value.Missing(a.Elem())
			continue
		}
		cells[off] = a.At(src...)
	}
	data := value.MustSequence(a.Elem(), cells...)
	if debug.Extract() {
		debug.Logf("array %v[%v] -> dims %v drop %v\n", a.Dims(), axes, dims, drop)
	}
	if !drop {
		return value.NewArray(data, dims...)
	}
	kept := make([]int, 0, len(dims))
	for _, d := range dims {
		if d != 1 {
			kept = append(kept, d)
		}
	}
	if len(kept) <= 1 {
		return data, nil
	}
	return value.NewArray(data, kept...)
}

// ExtractRows selects rows of t, keeping every column in order.
func (e *Engine) ExtractRows(t *value.Table, rows index.Index) (*value.Table, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrInvalidContainer)
	}
	pos, err := e.resolve(target{n: t.Rows(), v: t}, rows)
	if err != nil {
		return nil, err
	}
	cols := t.Columns()
	for i := range cols {
		cols[i].Data = cols[i].Data.Select(pos)
	}
	return value.NewTable(cols...)
}

func typeOf(v value.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Type().String()
}

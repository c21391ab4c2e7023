package subset

import (
	"fmt"

	"github.com/signadot/subset/index"
	"github.com/signadot/subset/value"
)

// Indexer is the per-container side of the engine. Extract keeps the
// container kind; ExtractOne unwraps a single element.
type Indexer interface {
	Len() int
	Names() []string
	Extract(ix index.Index) (value.Value, error)
	ExtractOne(k index.Key) (Result, error)
}

// Of returns the indexer for v.
func (e *Engine) Of(v value.Value) (Indexer, error) {
	switch x := v.(type) {
	case *value.Sequence:
		return &seqIndexer{e: e, s: x}, nil
	case *value.Array:
		return &arrayIndexer{seqIndexer: seqIndexer{e: e, s: x.Data()}, a: x}, nil
	case *value.List:
		return &listIndexer{e: e, l: x}, nil
	case *value.Table:
		return &tableIndexer{e: e, t: x}, nil
	case nil:
		return nil, fmt.Errorf("%w: nil value", ErrInvalidContainer)
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidContainer, v)
}

type seqIndexer struct {
	e *Engine
	s *value.Sequence
}

func (x *seqIndexer) Len() int        { return x.s.Len() }
func (x *seqIndexer) Names() []string { return x.s.Names() }

func (x *seqIndexer) Extract(ix index.Index) (value.Value, error) {
	pos, err := x.e.resolve(target{n: x.s.Len(), names: x.s.Names(), v: x.s}, ix)
	if err != nil {
		return nil, err
	}
	return x.s.Select(pos), nil
}

func (x *seqIndexer) ExtractOne(k index.Key) (Result, error) {
	i, miss, err := x.e.key(x.s.Len(), x.s.Names(), k)
	if err != nil {
		return Result{}, err
	}
	if miss != Found {
		return missing(miss, k), nil
	}
	return found(value.MustSequence(x.s.Elem(), x.s.At(i))), nil
}

// arrayIndexer indexes an array as its column-major data when given a
// single index; see Engine.ExtractArray for per-axis indexing.
type arrayIndexer struct {
	seqIndexer
	a *value.Array
}

type listIndexer struct {
	e *Engine
	l *value.List
}

func (x *listIndexer) Len() int        { return x.l.Len() }
func (x *listIndexer) Names() []string { return x.l.Names() }

func (x *listIndexer) Extract(ix index.Index) (value.Value, error) {
	pos, err := x.e.resolve(target{n: x.l.Len(), names: x.l.Names(), v: x.l}, ix)
	if err != nil {
		return nil, err
	}
	items := make([]value.Item, len(pos))
	for i, p := range pos {
		if p == -1 {
			items[i] = value.Unnamed(value.NA())
			continue
		}
		items[i] = x.l.At(p)
	}
	return value.NewList(items...), nil
}

func (x *listIndexer) ExtractOne(k index.Key) (Result, error) {
	i, miss, err := x.e.key(x.l.Len(), x.l.Names(), k)
	if err != nil {
		return Result{}, err
	}
	if miss != Found {
		return missing(miss, k), nil
	}
	return found(x.l.At(i).Value), nil
}

// tableIndexer selects columns; rows are selected with Engine.ExtractRows.
type tableIndexer struct {
	e *Engine
	t *value.Table
}

func (x *tableIndexer) Len() int        { return x.t.Len() }
func (x *tableIndexer) Names() []string { return x.t.Names() }

// Extract selects columns. A table cannot hold a missing column, so an
// unknown column is an error rather than a missing marker.
func (x *tableIndexer) Extract(ix index.Index) (value.Value, error) {
	pos, err := x.e.resolve(target{n: x.t.Len(), names: x.t.Names(), v: x.t}, ix)
	if err != nil {
		return nil, err
	}
	cols := make([]value.Column, len(pos))
	for i, p := range pos {
		if p == -1 {
			return nil, fmt.Errorf("%w: undefined column selected by %s", ErrOutOfRange, ix)
		}
		cols[i] = x.t.ColumnAt(p)
	}
	return value.NewTable(cols...)
}

func (x *tableIndexer) ExtractOne(k index.Key) (Result, error) {
	i, miss, err := x.e.key(x.t.Len(), x.t.Names(), k)
	if err != nil {
		return Result{}, err
	}
	if miss != Found {
		return missing(miss, k), nil
	}
	return found(x.t.ColumnAt(i).Data), nil
}

// key resolves a single key to a 0-based position.
func (e *Engine) key(n int, names []string, k index.Key) (int, Miss, error) {
	switch x := k.(type) {
	case index.Pos:
		if x <= 0 {
			return -1, Found, fmt.Errorf("%w: position %d must be positive", ErrInvalidKey, x)
		}
		if int(x) > n {
			return -1, OutOfRange, nil
		}
		return int(x) - 1, Found, nil
	case index.Name:
		i, miss := lookup(names, string(x), !e.exact)
		return i, miss, nil
	}
	return -1, Found, fmt.Errorf("%w: %T", ErrInvalidKey, k)
}

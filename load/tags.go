package load

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"

	"github.com/signadot/subset/value"
)

// fromTag decodes n under tag. Tags other than ours and !!str leave the
// node as it is.
func fromTag(tag string, n ast.Node) (value.Value, error) {
	switch tag {
	case ArrayTag:
		return fromArray(n)
	case TableTag:
		return fromTable(n)
	case "!!str":
		if s, ok := n.(*ast.StringNode); ok {
			return value.Strings(s.Value), nil
		}
		if n != nil && n.GetToken() != nil {
			return value.Strings(n.GetToken().Value), nil
		}
	}
	return fromNode(n)
}

func fields(tag string, n ast.Node) ([]*ast.MappingValueNode, error) {
	switch x := n.(type) {
	case *ast.MappingNode:
		return x.Values, nil
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{x}, nil
	}
	return nil, fmt.Errorf("%w: %s needs a mapping", ErrTag, tag)
}

func fromArray(n ast.Node) (value.Value, error) {
	kvs, err := fields(ArrayTag, n)
	if err != nil {
		return nil, err
	}
	var dims []int
	var data *value.Sequence
	for _, kv := range kvs {
		switch k := keyOf(kv.Key); k {
		case "dim":
			v, err := fromNode(kv.Value)
			if err != nil {
				return nil, err
			}
			dims, err = intsOf(v)
			if err != nil {
				return nil, err
			}
		case "data":
			v, err := fromNode(kv.Value)
			if err != nil {
				return nil, err
			}
			s, ok := v.(*value.Sequence)
			if !ok {
				return nil, fmt.Errorf("%w: %s data must be a sequence of scalars, got %s", ErrTag, ArrayTag, v.Type())
			}
			data = s
		default:
			return nil, fmt.Errorf("%w: unknown %s field %q", ErrTag, ArrayTag, k)
		}
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s without data", ErrTag, ArrayTag)
	}
	if dims == nil {
		dims = []int{data.Len()}
	}
	a, err := value.NewArray(data, dims...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTag, err)
	}
	return a, nil
}

func intsOf(v value.Value) ([]int, error) {
	s, ok := v.(*value.Sequence)
	if !ok || s.Elem() != value.NumberType {
		return nil, fmt.Errorf("%w: dim must be a sequence of integers", ErrTag)
	}
	res := make([]int, s.Len())
	for i := range res {
		e := s.At(i)
		if e.Missing || e.Number != float64(int(e.Number)) {
			return nil, fmt.Errorf("%w: dim %s is not an integer", ErrTag, e.Text())
		}
		res[i] = int(e.Number)
	}
	return res, nil
}

func fromTable(n ast.Node) (value.Value, error) {
	kvs, err := fields(TableTag, n)
	if err != nil {
		return nil, err
	}
	cols := make([]value.Column, len(kvs))
	for i, kv := range kvs {
		k := keyOf(kv.Key)
		v, err := fromNode(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		s, ok := v.(*value.Sequence)
		if !ok {
			return nil, fmt.Errorf("%w: column %q must be a sequence of scalars, got %s", ErrTag, k, v.Type())
		}
		cols[i] = value.Column{Name: k, Data: s}
	}
	t, err := value.NewTable(cols...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTag, err)
	}
	return t, nil
}

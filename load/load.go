package load

import (
	"fmt"
	"io"
	"os"
	"strconv"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/signadot/subset/debug"
	"github.com/signadot/subset/value"
)

const (
	ArrayTag = "!array"
	TableTag = "!table"
)

// Decode decodes the first document in data.
func Decode(data []byte, opts ...Option) (value.Value, error) {
	ls := &loadState{}
	for _, opt := range opts {
		opt(ls)
	}
	data, err := ls.patch(data)
	if err != nil {
		return nil, err
	}
	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return value.NewList(), nil
	}
	v, err := fromNode(f.Docs[0].Body)
	if err != nil {
		return nil, err
	}
	if debug.Load() {
		debug.Logf("decoded %s of length %d\n", v.Type(), v.Len())
	}
	return v, nil
}

func Reader(r io.Reader, opts ...Option) (value.Value, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(d, opts...)
}

func File(path string, opts ...Option) (value.Value, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := Decode(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func (ls *loadState) patch(data []byte) ([]byte, error) {
	if len(ls.patches) == 0 {
		return data, nil
	}
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	for i, p := range ls.patches {
		ops, err := jsonpatch.DecodePatch(p)
		if err != nil {
			return nil, fmt.Errorf("%w: patch %d: %w", ErrLoad, i+1, err)
		}
		j, err = ops.Apply(j)
		if err != nil {
			return nil, fmt.Errorf("%w: patch %d: %w", ErrLoad, i+1, err)
		}
		if debug.Load() {
			debug.Logf("applied patch %d: %s\n", i+1, j)
		}
	}
	return j, nil
}

func fromNode(n ast.Node) (value.Value, error) {
	switch x := n.(type) {
	case *ast.TagNode:
		return fromTag(x.Start.Value, x.Value)
	case *ast.AnchorNode:
		return fromNode(x.Value)
	case *ast.AliasNode:
		return nil, fmt.Errorf("%w: alias %s is not supported", ErrLoad, x.Value)
	case *ast.MappingNode:
		return fromMapping(x.Values)
	case *ast.MappingValueNode:
		return fromMapping([]*ast.MappingValueNode{x})
	case *ast.SequenceNode:
		return fromSequence(x.Values)
	}
	s, err := scalarOf(n)
	if err != nil {
		return nil, err
	}
	if s.Missing {
		return value.NA(), nil
	}
	return value.MustSequence(s.Type, s), nil
}

func fromMapping(kvs []*ast.MappingValueNode) (value.Value, error) {
	if len(kvs) == 1 {
		switch k := keyOf(kvs[0].Key); k {
		case ArrayTag, TableTag:
			return fromTag(k, kvs[0].Value)
		}
	}
	items := make([]value.Item, len(kvs))
	for i, kv := range kvs {
		k := keyOf(kv.Key)
		v, err := fromNode(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		items[i] = value.Named(k, v)
	}
	return value.NewList(items...), nil
}

func fromSequence(elts []ast.Node) (value.Value, error) {
	if s, ok := scalarSequence(elts); ok {
		return s, nil
	}
	items := make([]value.Item, len(elts))
	for i, elt := range elts {
		v, err := fromNode(elt)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i+1, err)
		}
		items[i] = value.Unnamed(v)
	}
	return value.NewList(items...), nil
}

// scalarSequence returns elts as a Sequence when every element is a
// scalar of one kind or null. Empty sequences and sequences of nulls only
// are logical.
func scalarSequence(elts []ast.Node) (*value.Sequence, bool) {
	if len(elts) == 0 {
		return value.Empty(value.LogicalType), true
	}
	vals := make([]value.Scalar, len(elts))
	t := value.LogicalType
	typed := false
	for i, elt := range elts {
		s, err := scalarOf(elt)
		if err != nil {
			return nil, false
		}
		vals[i] = s
		if s.Missing {
			continue
		}
		if typed && s.Type != t {
			return nil, false
		}
		t, typed = s.Type, true
	}
	seq, err := value.NewSequence(t, vals)
	if err != nil {
		return nil, false
	}
	return seq, true
}

func scalarOf(n ast.Node) (value.Scalar, error) {
	switch x := n.(type) {
	case *ast.NullNode:
		return value.Missing(value.LogicalType), nil
	case *ast.BoolNode:
		return value.FromBool(x.Value), nil
	case *ast.IntegerNode:
		switch i := x.Value.(type) {
		case int64:
			return value.FromNumber(float64(i)), nil
		case uint64:
			return value.FromNumber(float64(i)), nil
		}
		f, err := strconv.ParseFloat(x.GetToken().Value, 64)
		if err != nil {
			return value.Scalar{}, fmt.Errorf("%w: integer %s: %w", ErrLoad, x.GetToken().Value, err)
		}
		return value.FromNumber(f), nil
	case *ast.FloatNode:
		return value.FromNumber(x.Value), nil
	case *ast.InfinityNode:
		return value.FromNumber(x.Value), nil
	case *ast.NanNode:
		return value.Missing(value.NumberType), nil
	case *ast.StringNode:
		if x.Value == value.MissingText {
			return value.Missing(value.LogicalType), nil
		}
		return value.FromString(x.Value), nil
	case *ast.LiteralNode:
		return value.FromString(x.Value.Value), nil
	case *ast.AnchorNode:
		return scalarOf(x.Value)
	case nil:
		return value.Missing(value.LogicalType), nil
	}
	return value.Scalar{}, fmt.Errorf("%w: %s is not a scalar", ErrLoad, n.Type())
}

func keyOf(k ast.Node) string {
	switch x := k.(type) {
	case *ast.StringNode:
		return x.Value
	case *ast.MappingKeyNode:
		return keyOf(x.Value)
	case nil:
		return ""
	}
	return k.GetToken().Value
}

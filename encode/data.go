package encode

import (
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/signadot/subset/value"
)

func encodeData(v value.Value, w io.Writer, es *EncState) error {
	var opts []yaml.EncodeOption
	if es.format.IsJSON() {
		opts = append(opts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(ToData(v), opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

// ToData returns the document form of v: nil, bool, int64, float64,
// string, []any and yaml.MapSlice values. A length-1 unnamed sequence is
// its element; arrays and tables are mappings under the single key
// "!array" or "!table".
func ToData(v value.Value) any {
	switch x := v.(type) {
	case *value.Sequence:
		if x.Len() == 1 && !x.Named() {
			return scalarData(x.At(0))
		}
		if x.Named() {
			res := make(yaml.MapSlice, x.Len())
			for i := range res {
				res[i] = yaml.MapItem{Key: x.Name(i), Value: scalarData(x.At(i))}
			}
			return res
		}
		return seqData(x)
	case *value.Array:
		dims := x.Dims()
		ds := make([]any, len(dims))
		for i, d := range dims {
			ds[i] = d
		}
		return yaml.MapSlice{{Key: "!array", Value: yaml.MapSlice{
			{Key: "dim", Value: ds},
			{Key: "data", Value: seqData(x.Data())},
		}}}
	case *value.List:
		named := false
		for _, n := range x.Names() {
			named = named || n != ""
		}
		if !named {
			res := make([]any, x.Len())
			for i := range res {
				res[i] = ToData(x.At(i).Value)
			}
			return res
		}
		res := make(yaml.MapSlice, x.Len())
		for i := range res {
			it := x.At(i)
			k := it.Name
			if k == "" {
				k = fmt.Sprintf("[[%d]]", i+1)
			}
			res[i] = yaml.MapItem{Key: k, Value: ToData(it.Value)}
		}
		return res
	case *value.Table:
		cols := make(yaml.MapSlice, x.Len())
		for i := range cols {
			c := x.ColumnAt(i)
			cols[i] = yaml.MapItem{Key: c.Name, Value: seqData(c.Data)}
		}
		return yaml.MapSlice{{Key: "!table", Value: cols}}
	}
	return nil
}

func seqData(s *value.Sequence) []any {
	res := make([]any, s.Len())
	for i := range res {
		res[i] = scalarData(s.At(i))
	}
	return res
}

func scalarData(s value.Scalar) any {
	if s.Missing {
		return nil
	}
	if s.Type == value.NumberType {
		f := s.Number
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	}
	return s.Any()
}

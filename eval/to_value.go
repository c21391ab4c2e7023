package eval

import "github.com/signadot/subset/value"

// ToAny converts v to the Go form predicates see: nil for the missing
// marker, a bare scalar for length-1 sequences, []any for longer
// sequences and arrays, map[string]any for tables keyed by column and
// []any for lists.
func ToAny(v value.Value) any {
	switch x := v.(type) {
	case *value.Sequence:
		if x.Len() == 1 {
			return x.At(0).Any()
		}
		return seqAny(x)
	case *value.Array:
		return seqAny(x.Data())
	case *value.List:
		res := make([]any, x.Len())
		for i := range res {
			res[i] = ToAny(x.At(i).Value)
		}
		return res
	case *value.Table:
		res := make(map[string]any, x.Len())
		for _, c := range x.Columns() {
			res[c.Name] = seqAny(c.Data)
		}
		return res
	}
	return nil
}

func seqAny(s *value.Sequence) []any {
	res := make([]any, s.Len())
	for i := range res {
		res[i] = s.At(i).Any()
	}
	return res
}

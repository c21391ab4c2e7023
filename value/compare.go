package value

import "slices"

// Identical reports whether a and b are structurally the same value.
// Unlike Scalar.Equal, missing markers of the same kind are identical.
func Identical(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case *Sequence:
		return identicalSequences(x, b.(*Sequence))
	case *Array:
		y := b.(*Array)
		return slices.Equal(x.dims, y.dims) && identicalSequences(x.data, y.data)
	case *List:
		y := b.(*List)
		if len(x.items) != len(y.items) {
			return false
		}
		for i := range x.items {
			if x.items[i].Name != y.items[i].Name {
				return false
			}
			if !Identical(x.items[i].Value, y.items[i].Value) {
				return false
			}
		}
		return true
	case *Table:
		y := b.(*Table)
		if len(x.cols) != len(y.cols) || x.rows != y.rows {
			return false
		}
		for i := range x.cols {
			if x.cols[i].Name != y.cols[i].Name {
				return false
			}
			if !identicalSequences(x.cols[i].Data, y.cols[i].Data) {
				return false
			}
		}
		return true
	}
	return false
}

func identicalSequences(a, b *Sequence) bool {
	if a.elem != b.elem || len(a.vals) != len(b.vals) {
		return false
	}
	if (a.names == nil) != (b.names == nil) || !slices.Equal(a.names, b.names) {
		return false
	}
	for i := range a.vals {
		if !a.vals[i].Identical(b.vals[i]) {
			return false
		}
	}
	return true
}

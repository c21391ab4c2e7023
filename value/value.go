package value

// Value is any container: *Sequence, *Array, *List or *Table.
//
// Values are never modified once constructed; operations producing a
// value from another one copy what they keep.
type Value interface {
	Type() Type
	Len() int
}

// NA returns the missing marker as a value: a length-1 logical sequence
// holding a missing element.
func NA() *Sequence {
	return &Sequence{elem: LogicalType, vals: []Scalar{Missing(LogicalType)}}
}

// IsNA reports whether v is a length-1 sequence holding a missing element.
func IsNA(v Value) bool {
	s, ok := v.(*Sequence)
	if !ok || s.Len() != 1 {
		return false
	}
	return s.vals[0].Missing
}

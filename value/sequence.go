package value

import (
	"fmt"
	"slices"
)

// Sequence is an ordered run of scalars sharing one element type, with
// optional element names.
type Sequence struct {
	elem  Type
	vals  []Scalar
	names []string
}

// NewSequence builds a sequence of element type t. Missing markers are
// coerced to t; any other scalar of a different type is an error.
func NewSequence(t Type, vals []Scalar) (*Sequence, error) {
	if !t.IsScalar() {
		return nil, fmt.Errorf("%w: %s", ErrNotScalar, t)
	}
	res := &Sequence{elem: t, vals: make([]Scalar, len(vals))}
	for i, v := range vals {
		if v.Missing {
			res.vals[i] = Missing(t)
			continue
		}
		if v.Type != t {
			return nil, fmt.Errorf("%w: element %d is %s in %s sequence", ErrMixedTypes, i+1, v.Type, t)
		}
		res.vals[i] = v
	}
	return res, nil
}

func MustSequence(t Type, vals ...Scalar) *Sequence {
	s, err := NewSequence(t, vals)
	if err != nil {
		panic(err)
	}
	return s
}

func Numbers(vs ...float64) *Sequence {
	res := &Sequence{elem: NumberType, vals: make([]Scalar, len(vs))}
	for i, v := range vs {
		res.vals[i] = FromNumber(v)
	}
	return res
}

func Strings(vs ...string) *Sequence {
	res := &Sequence{elem: StringType, vals: make([]Scalar, len(vs))}
	for i, v := range vs {
		res.vals[i] = FromString(v)
	}
	return res
}

func Logicals(vs ...bool) *Sequence {
	res := &Sequence{elem: LogicalType, vals: make([]Scalar, len(vs))}
	for i, v := range vs {
		res.vals[i] = FromBool(v)
	}
	return res
}

// Range returns the numbers from a to b inclusive, counting down when a > b.
func Range(a, b int) *Sequence {
	step := 1
	if a > b {
		step = -1
	}
	n := (b-a)*step + 1
	res := &Sequence{elem: NumberType, vals: make([]Scalar, 0, n)}
	for v := a; ; v += step {
		res.vals = append(res.vals, FromNumber(float64(v)))
		if v == b {
			break
		}
	}
	return res
}

// Empty returns a zero-length sequence of element type t.
func Empty(t Type) *Sequence {
	return &Sequence{elem: t, vals: []Scalar{}}
}

func (s *Sequence) Type() Type { return SequenceType }
func (s *Sequence) Len() int { return len(s.vals) }

// Elem returns the element type.
func (s *Sequence) Elem() Type { return s.elem }

// At returns the element at 0-based position i.
func (s *Sequence) At(i int) Scalar { return s.vals[i] }

func (s *Sequence) Scalars() []Scalar { return slices.Clone(s.vals) }

// Names returns a copy of the element names, or nil when the sequence is
// unnamed.
func (s *Sequence) Names() []string { return slices.Clone(s.names) }

func (s *Sequence) Named() bool { return s.names != nil }

// Name returns the name of the element at 0-based position i.
func (s *Sequence) Name(i int) string {
	if s.names == nil {
		return ""
	}
	return s.names[i]
}

// WithNames returns a copy of s carrying names.
func (s *Sequence) WithNames(names ...string) (*Sequence, error) {
	if len(names) != len(s.vals) {
		return nil, fmt.Errorf("%w: %d names for %d elements", ErrShape, len(names), len(s.vals))
	}
	res := s.Clone()
	res.names = slices.Clone(names)
	return res, nil
}

func (s *Sequence) Clone() *Sequence {
	return &Sequence{
		elem:  s.elem,
		vals:  slices.Clone(s.vals),
		names: slices.Clone(s.names),
	}
}

// Select returns a new sequence of the elements at the given 0-based
// positions; a position of -1 yields a missing element.
func (s *Sequence) Select(positions []int) *Sequence {
	res := &Sequence{elem: s.elem, vals: make([]Scalar, len(positions))}
	if s.names != nil {
		res.names = make([]string, len(positions))
	}
	for i, p := range positions {
		if p < 0 || p >= len(s.vals) {
			res.vals[i] = Missing(s.elem)
			if res.names != nil {
				res.names[i] = MissingText
			}
			continue
		}
		res.vals[i] = s.vals[p]
		if res.names != nil {
			res.names[i] = s.names[p]
		}
	}
	return res
}

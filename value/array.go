package value

import (
	"fmt"
	"slices"
)

// Array is a dense multi-axis array. Elements are stored column-major:
// the first axis varies fastest.
type Array struct {
	data *Sequence
	dims []int
}

func NewArray(data *Sequence, dims ...int) (*Array, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: array needs at least one dimension", ErrShape)
	}
	n := 1
	for _, d := range dims {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension %d", ErrShape, d)
		}
		n *= d
	}
	if n != data.Len() {
		return nil, fmt.Errorf("%w: dims %v hold %d elements, data has %d", ErrShape, dims, n, data.Len())
	}
	d := data.Clone()
	d.names = nil
	return &Array{data: d, dims: slices.Clone(dims)}, nil
}

func MustArray(data *Sequence, dims ...int) *Array {
	a, err := NewArray(data, dims...)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Array) Type() Type { return ArrayType }
func (a *Array) Len() int { return a.data.Len() }
func (a *Array) Elem() Type { return a.data.elem }
func (a *Array) Rank() int { return len(a.dims) }
func (a *Array) Dims() []int { return slices.Clone(a.dims) }
func (a *Array) Dim(ax int) int { return a.dims[ax] }

// Data returns the column-major element sequence.
func (a *Array) Data() *Sequence { return a.data.Clone() }

// Offset maps 0-based coordinates to a 0-based column-major offset.
func (a *Array) Offset(coords []int) (int, bool) {
	if len(coords) != len(a.dims) {
		return 0, false
	}
	off, stride := 0, 1
	for ax, c := range coords {
		if c < 0 || c >= a.dims[ax] {
			return 0, false
		}
		off += c * stride
		stride *= a.dims[ax]
	}
	return off, true
}

// At returns the element at 0-based coordinates, or a missing marker when
// they fall outside the array.
func (a *Array) At(coords ...int) Scalar {
	off, ok := a.Offset(coords)
	if !ok {
		return Missing(a.data.elem)
	}
	return a.data.vals[off]
}

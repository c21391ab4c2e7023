package subset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/subset/index"
	"github.com/signadot/subset/value"
)

var na = value.Missing(value.NumberType)

func num(f float64) value.Scalar { return value.FromNumber(f) }

func nums(vs ...value.Scalar) *value.Sequence {
	return value.MustSequence(value.NumberType, vs...)
}

func seqEqual(t *testing.T, want *value.Sequence, got value.Value) {
	t.Helper()
	if !value.Identical(want, got) {
		t.Errorf("got %s, want %s", show(got), show(want))
	}
}

func show(v value.Value) string {
	s, ok := v.(*value.Sequence)
	if !ok {
		if v == nil {
			return "<nil>"
		}
		return v.Type().String()
	}
	res := "["
	for i := range s.Len() {
		if i > 0 {
			res += " "
		}
		res += s.At(i).Text()
	}
	return res + "]"
}

func TestExtractSequence(t *testing.T) {
	x := value.Numbers(10, 20, 30, 40)
	tests := []struct {
		name string
		ix   index.Index
		want *value.Sequence
	}{
		{"single", index.Pos(2), value.Numbers(20)},
		{"out of range", index.Pos(9), nums(na)},
		{"zero", index.Pos(0), value.Numbers()},
		{"exclude", index.Pos(-1), value.Numbers(20, 30, 40)},
		{"set in order", index.Positions{3, 1}, value.Numbers(30, 10)},
		{"duplicates", index.Positions{2, 2, 2}, value.Numbers(20, 20, 20)},
		{"set out of range", index.Positions{1, 5}, nums(num(10), na)},
		{"exclude set", index.Positions{-1, -4}, value.Numbers(20, 30)},
		{"mask", index.Mask{true, false, false, true}, value.Numbers(10, 40)},
		{"mask recycled", index.Mask{false, true}, value.Numbers(20, 40)},
		{"all", index.All{}, value.Numbers(10, 20, 30, 40)},
		{"computed", index.Where("x >= 25"), value.Numbers(30, 40)},
		{"path flattened", index.Path{index.Pos(4), index.Pos(1)}, value.Numbers(40, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(x, tt.ix)
			if err != nil {
				t.Fatal(err)
			}
			seqEqual(t, tt.want, got)
		})
	}
}

func TestExtractSinglePosition(t *testing.T) {
	x := value.Strings("a", "b", "c")
	for i := 1; i <= x.Len(); i++ {
		got, err := Extract(x, index.Pos(i))
		if err != nil {
			t.Fatal(err)
		}
		if got.Len() != 1 {
			t.Fatalf("len = %d", got.Len())
		}
		if !got.(*value.Sequence).At(0).Equal(x.At(i - 1)) {
			t.Errorf("Extract(x, %d) = %s", i, show(got))
		}
	}
}

func TestExtractIdentity(t *testing.T) {
	for _, x := range []*value.Sequence{
		value.Numbers(),
		value.Numbers(1),
		value.Strings("a", "b", "c"),
		nums(na, num(1), na),
	} {
		ps := make(index.Positions, x.Len())
		for i := range ps {
			ps[i] = i + 1
		}
		got, err := Extract(x, ps)
		if err != nil {
			t.Fatal(err)
		}
		seqEqual(t, x, got)
	}
}

func TestExtractMaskCount(t *testing.T) {
	x := value.Range(1, 6)
	for _, m := range []index.Mask{
		{true, true, true, true, true, true},
		{false, false, false, false, false, false},
		{true, false, true, false, false, true},
	} {
		got, err := Extract(x, m)
		if err != nil {
			t.Fatal(err)
		}
		n := 0
		for _, b := range m {
			if b {
				n++
			}
		}
		if got.Len() != n {
			t.Errorf("Extract(x, %s) has %d elements, want %d", m, got.Len(), n)
		}
	}
}

func TestExtractMaskShapeMismatch(t *testing.T) {
	x := value.Range(1, 5)
	for _, m := range []index.Mask{{true, false}, {true, true, true, true, true, true}, {}} {
		if _, err := Extract(x, m); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("Extract(x, %v) error = %v, want ErrShapeMismatch", m, err)
		}
	}
}

func TestExtractMaskLenient(t *testing.T) {
	e := New(LenientRecycle(true))
	x := value.Range(1, 5)
	got, err := e.Extract(x, index.Mask{true, false})
	if err != nil {
		t.Fatal(err)
	}
	seqEqual(t, value.Numbers(1, 3, 5), got)

	got, err = e.Extract(value.Numbers(1, 2), index.Mask{false, true, true})
	if err != nil {
		t.Fatal(err)
	}
	seqEqual(t, nums(num(2), na), got)
}

func TestExtractMixedSigns(t *testing.T) {
	if _, err := Extract(value.Range(1, 3), index.Positions{1, -2}); !errors.Is(err, ErrMixedSigns) {
		t.Errorf("error = %v, want ErrMixedSigns", err)
	}
}

func TestExtractNamedSequence(t *testing.T) {
	x, err := value.Numbers(1, 2, 3).WithNames("a", "b", "c")
	if err != nil {
		t.Fatal(err)
	}
	got, err := Extract(x, index.Names{"c", "zz", "a"})
	if err != nil {
		t.Fatal(err)
	}
	s := got.(*value.Sequence)
	if diff := cmp.Diff([]string{"c", "NA", "a"}, s.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if !s.At(1).Missing || s.At(0).Number != 3 || s.At(2).Number != 1 {
		t.Errorf("got %s", show(s))
	}
}

func TestExtractClosure(t *testing.T) {
	x := value.Logicals(true, false, true)
	got, err := Extract(x, index.Positions{1, 3})
	if err != nil {
		t.Fatal(err)
	}
	s, ok := got.(*value.Sequence)
	if !ok || s.Elem() != value.LogicalType {
		t.Errorf("got %T of %v", got, s.Elem())
	}
}

func TestExtractOneSequence(t *testing.T) {
	x, _ := value.Numbers(1, 2).WithNames("alpha", "beta")
	r, err := ExtractOne(x, index.Name("be"))
	if err != nil {
		t.Fatal(err)
	}
	v, ok := r.Value()
	if !ok {
		t.Fatalf("missing: %s", r)
	}
	seqEqual(t, value.Numbers(2), v)

	r, err = ExtractOne(x, index.Pos(3))
	if err != nil {
		t.Fatal(err)
	}
	if r.Reason() != OutOfRange {
		t.Errorf("reason = %s, want out of range", r.Reason())
	}
	if _, err := ExtractOne(x, index.Pos(0)); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("error = %v, want ErrInvalidKey", err)
	}
}

package subset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/subset/index"
	"github.com/signadot/subset/value"
)

func TestCompleteMask(t *testing.T) {
	x := nums(num(1), num(2), na, num(4), na, num(5))
	m, err := CompleteMask(x)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, true, false, true, false, true}, m); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}
	got, err := Filter(x, m)
	if err != nil {
		t.Fatal(err)
	}
	seqEqual(t, value.Numbers(1, 2, 4, 5), got)
}

func TestCompleteMaskMany(t *testing.T) {
	a := nums(num(1), na, num(3))
	b := value.MustSequence(value.StringType, value.FromString("x"), value.FromString("y"), value.Missing(value.StringType))
	m, err := CompleteMask(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, false, false}, m); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}
	if _, err := CompleteMask(a, value.Numbers(1)); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestCompleteMaskEmpty(t *testing.T) {
	m, err := CompleteMask()
	if err != nil {
		t.Fatal(err)
	}
	if m == nil || len(m) != 0 {
		t.Errorf("got %v, want empty mask", m)
	}
	m, err = CompleteMask(value.Numbers())
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 0 {
		t.Errorf("got %v", m)
	}
}

func TestCompleteMaskTable(t *testing.T) {
	tb := people()
	m, err := CompleteMask(tb)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, false, true, false}, m); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}
	got, err := Default().Complete(tb)
	if err != nil {
		t.Fatal(err)
	}
	ft := got.(*value.Table)
	if ft.Rows() != 2 || ft.Len() != 3 {
		t.Fatalf("got %d rows x %d columns", ft.Rows(), ft.Len())
	}
	if diff := cmp.Diff([]string{"name", "age", "ok"}, ft.Names()); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	name, _ := ft.Column("name")
	seqEqual(t, value.Strings("ann", "cy"), name)
}

func TestCompleteMaskListAndArray(t *testing.T) {
	l := value.NewList(value.Unnamed(value.Numbers(1)), value.Named("b", value.NA()))
	m, err := CompleteMask(l)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, false}, m); diff != "" {
		t.Errorf("list mask mismatch (-want +got):\n%s", diff)
	}
	a := value.MustArray(nums(num(1), na, num(3), num(4)), 2, 2)
	m, err = CompleteMask(a)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, false, true, true}, m); diff != "" {
		t.Errorf("array mask mismatch (-want +got):\n%s", diff)
	}
	if _, err := CompleteMask(nil); !errors.Is(err, ErrInvalidContainer) {
		t.Errorf("error = %v", err)
	}
}

func TestCompleteIdempotent(t *testing.T) {
	x := nums(na, num(2), na)
	once, err := Default().Complete(x)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Default().Complete(once)
	if err != nil {
		t.Fatal(err)
	}
	seqEqual(t, value.Numbers(2), once)
	seqEqual(t, value.Numbers(2), twice)
}

func people() *value.Table {
	return value.MustTable(
		value.Column{Name: "name", Data: value.Strings("ann", "bo", "cy", "di")},
		value.Column{Name: "age", Data: nums(num(31), na, num(27), num(40))},
		value.Column{Name: "ok", Data: value.MustSequence(value.LogicalType,
			value.FromBool(true), value.FromBool(true), value.FromBool(false), value.Missing(value.LogicalType))},
	)
}

func TestTableColumns(t *testing.T) {
	tb := people()
	got, err := Extract(tb, index.Names{"ok", "name"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"ok", "name"}, got.(*value.Table).Names()); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	if _, err := Extract(tb, index.Name("height")); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unknown column error = %v", err)
	}
	seqEqual(t, value.Strings("ann", "bo", "cy", "di"), mustOne(t, tb, index.Name("na")))
	seqEqual(t, value.Strings("ann", "bo", "cy", "di"), mustOne(t, tb, index.Pos(1)))
}

func TestTableRows(t *testing.T) {
	tb := people()
	got, err := Default().ExtractRows(tb, index.Positions{4, 1})
	if err != nil {
		t.Fatal(err)
	}
	name, _ := got.Column("name")
	seqEqual(t, value.Strings("di", "ann"), name)
	if got.Len() != 3 {
		t.Errorf("got %d columns, want 3", got.Len())
	}

	got, err = Default().ExtractRows(tb, index.Where("age > 30"))
	if err != nil {
		t.Fatal(err)
	}
	name, _ = got.Column("name")
	seqEqual(t, value.Strings("ann", "di"), name)
}

func TestTableFilter(t *testing.T) {
	got, err := Filter(people(), []bool{false, true})
	if err != nil {
		t.Fatal(err)
	}
	name, _ := got.(*value.Table).Column("name")
	seqEqual(t, value.Strings("bo", "di"), name)
	if _, err := Filter(people(), []bool{true, false, true}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("error = %v", err)
	}
}

func TestExtractWhere(t *testing.T) {
	x := nums(num(5), na, num(1), num(8))
	got, err := Extract(x, index.Where("!na && x > 2"))
	if err != nil {
		t.Fatal(err)
	}
	seqEqual(t, value.Numbers(5, 8), got)

	got, err = Extract(x, index.Where("x > 2"))
	if err != nil {
		t.Fatal(err)
	}
	seqEqual(t, value.Numbers(5, 8), got)

	got, err = Extract(x, index.Where("i % 2 == 1"))
	if err != nil {
		t.Fatal(err)
	}
	seqEqual(t, value.Numbers(5, 1), got)
}

func TestTableRowsShadowedNames(t *testing.T) {
	tb := value.MustTable(
		value.Column{Name: "na", Data: value.Numbers(1, 2)},
		value.Column{Name: "i", Data: value.Numbers(5, 6)},
	)
	got, err := Default().ExtractRows(tb, index.Where("na == 2"))
	if err != nil {
		t.Fatal(err)
	}
	col, _ := got.Column("i")
	seqEqual(t, value.Numbers(6), col)

	got, err = Default().ExtractRows(tb, index.Where("i > 5"))
	if err != nil {
		t.Fatal(err)
	}
	col, _ = got.Column("na")
	seqEqual(t, value.Numbers(2), col)
}

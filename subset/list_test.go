package subset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/subset/index"
	"github.com/signadot/subset/libdiff"
	"github.com/signadot/subset/value"
)

func fooBarBaz() *value.List {
	return value.NewList(
		value.Named("foo", value.Numbers(1, 2, 3, 4)),
		value.Named("bar", value.Numbers(0.6)),
		value.Named("baz", value.Strings("hello")),
	)
}

func mustOne(t *testing.T, v value.Value, k index.Index) value.Value {
	t.Helper()
	r, err := ExtractOne(v, k)
	if err != nil {
		t.Fatalf("ExtractOne(%s): %v", k, err)
	}
	got, ok := r.Value()
	if !ok {
		t.Fatalf("ExtractOne(%s) missing: %s", k, r)
	}
	return got
}

func TestExtractOneList(t *testing.T) {
	l := fooBarBaz()
	seqEqual(t, value.Numbers(1, 2, 3, 4), mustOne(t, l, index.Pos(1)))
	seqEqual(t, value.Numbers(0.6), mustOne(t, l, index.Name("bar")))
	seqEqual(t, value.Strings("hello"), mustOne(t, l, index.Name("baz")))
}

func TestExtractOneUnwraps(t *testing.T) {
	l := value.NewList(value.Named("inner", value.NewList(value.Unnamed(value.Numbers(1)))))
	got := mustOne(t, l, index.Name("inner"))
	if got.Type() != value.ListType || got.Len() != 1 {
		t.Errorf("got %s of length %d, want the inner list", got.Type(), got.Len())
	}
}

func TestExtractOnePartial(t *testing.T) {
	l := value.NewList(
		value.Named("aardvark", value.Range(1, 5)),
		value.Named("abacus", value.Numbers(1)),
		value.Named("zebra", value.Numbers(2)),
	)
	seqEqual(t, value.Range(1, 5), mustOne(t, l, index.Name("aar")))
	seqEqual(t, value.Numbers(2), mustOne(t, l, index.Name("z")))

	r, err := ExtractOne(l, index.Name("a"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Reason() != AmbiguousMatch {
		t.Errorf("reason = %s, want ambiguous match", r.Reason())
	}
	r, err = ExtractOne(l, index.Name("q"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Reason() != NoMatch {
		t.Errorf("reason = %s, want no match", r.Reason())
	}
	if !value.IsNA(r.OrNA()) {
		t.Errorf("OrNA() = %v", r.OrNA())
	}
}

func TestExtractOneExactWins(t *testing.T) {
	l := value.NewList(
		value.Named("ab", value.Numbers(1)),
		value.Named("abc", value.Numbers(2)),
	)
	seqEqual(t, value.Numbers(1), mustOne(t, l, index.Name("ab")))
}

func TestExtractOneExactMatch(t *testing.T) {
	e := New(ExactMatch(true))
	r, err := e.ExtractOne(fooBarBaz(), index.Name("fo"))
	if err != nil {
		t.Fatal(err)
	}
	if !r.Missing() {
		t.Errorf("partial match with exact matching: %s", r)
	}
}

func TestExtractOneDuplicateNames(t *testing.T) {
	l := value.NewList(
		value.Named("x", value.Numbers(1)),
		value.Named("x", value.Numbers(2)),
	)
	seqEqual(t, value.Numbers(1), mustOne(t, l, index.Name("x")))
}

func nested() *value.List {
	return value.NewList(
		value.Named("a", value.NewList(
			value.Unnamed(value.Numbers(10)),
			value.Unnamed(value.Numbers(12)),
			value.Unnamed(value.Numbers(14)),
		)),
		value.Named("b", value.Numbers(3.14, 2.81)),
	)
}

func TestExtractOnePath(t *testing.T) {
	l := nested()
	got := mustOne(t, l, index.Path{index.Name("a"), index.Pos(3)})
	seqEqual(t, value.Numbers(14), got)

	chained := mustOne(t, mustOne(t, l, index.Name("a")), index.Pos(3))
	if !value.Identical(got, chained) {
		t.Errorf("path %s != chained %s", show(got), show(chained))
	}
	seqEqual(t, value.Numbers(2.81), mustOne(t, l, index.Path{index.Name("b"), index.Pos(2)}))
}

func TestExtractOnePathParsed(t *testing.T) {
	l := nested()
	p, err := index.ParsePath("a[3]")
	if err != nil {
		t.Fatal(err)
	}
	viaPath := mustOne(t, l, p)
	chained := mustOne(t, mustOne(t, l, index.Name("a")), index.Pos(3))
	if d, same := libdiff.Diff(chained, viaPath); !same {
		t.Errorf("path and chained extraction differ:\n%s", d)
	}
}

func TestExtractOnePathMiss(t *testing.T) {
	l := nested()
	r, err := ExtractOne(l, index.Path{index.Name("a"), index.Pos(9)})
	if err != nil {
		t.Fatal(err)
	}
	if r.Reason() != OutOfRange {
		t.Errorf("reason = %s, want out of range", r.Reason())
	}
	if r.Key() != index.Pos(9) {
		t.Errorf("key = %v", r.Key())
	}
}

func TestExtractOneStrict(t *testing.T) {
	e := New(Strict(true))
	if _, err := e.ExtractOne(nested(), index.Name("zzz")); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if _, err := e.ExtractOne(nested(), index.Path{index.Name("a"), index.Pos(7)}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("error = %v, want ErrOutOfRange", err)
	}
	l := value.NewList(value.Named("ab", value.NA()), value.Named("ac", value.NA()))
	if _, err := e.ExtractOne(l, index.Name("a")); !errors.Is(err, ErrAmbiguous) {
		t.Errorf("error = %v, want ErrAmbiguous", err)
	}
}

func TestExtractOneInvalidKey(t *testing.T) {
	l := fooBarBaz()
	for _, k := range []index.Index{index.Mask{true}, index.Positions{1, 2}, index.All{}, index.Path{}, index.Where("true")} {
		if _, err := ExtractOne(l, k); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("ExtractOne(%T) error = %v, want ErrInvalidKey", k, err)
		}
	}
	seqEqual(t, value.Numbers(0.6), mustOne(t, l, index.Positions{2}))
}

func TestExtractByLiteral(t *testing.T) {
	l := value.NewList(value.Named("aardvark", value.Range(1, 5)))
	r, err := ExtractByLiteral(l, "zzz")
	if err != nil {
		t.Fatalf("absent literal name is an error: %v", err)
	}
	if !r.Missing() || r.Reason() != NoMatch {
		t.Errorf("ExtractByLiteral(zzz) = %s, want missing", r)
	}
	r, err = ExtractByLiteral(l, "aard")
	if err != nil {
		t.Fatal(err)
	}
	v, ok := r.Value()
	if !ok {
		t.Fatalf("partial literal missing: %s", r)
	}
	seqEqual(t, value.Range(1, 5), v)

	direct := mustOne(t, l, index.Name("aardvark"))
	if !value.Identical(v, direct) {
		t.Error("literal and name key lookups differ")
	}
}

func TestExtractByLiteralErrors(t *testing.T) {
	l := fooBarBaz()
	for _, bad := range []string{"", "1x", "a b", `"foo"`} {
		if _, err := ExtractByLiteral(l, bad); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("ExtractByLiteral(%q) error = %v, want ErrInvalidKey", bad, err)
		}
	}
	if _, err := ExtractByLiteral(value.Numbers(1), "x"); !errors.Is(err, ErrInvalidContainer) {
		t.Errorf("literal on sequence error = %v", err)
	}
}

func TestExtractMany(t *testing.T) {
	l := fooBarBaz()
	got, err := ExtractMany(l, index.Positions{1, 3})
	if err != nil {
		t.Fatal(err)
	}
	want := value.NewList(
		value.Named("foo", value.Numbers(1, 2, 3, 4)),
		value.Named("baz", value.Strings("hello")),
	)
	if !value.Identical(want, got) {
		t.Errorf("got names %v", got.Names())
	}

	got, err = ExtractMany(l, index.Names{"baz", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"baz", "foo"}, got.Names()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractManySingleKeepsList(t *testing.T) {
	got, err := ExtractMany(fooBarBaz(), index.Pos(2))
	if err != nil {
		t.Fatal(err)
	}
	want := value.NewList(value.Named("bar", value.Numbers(0.6)))
	if !value.Identical(want, got) {
		t.Errorf("got %v", got.Names())
	}
}

func TestExtractManyDoesNotDescend(t *testing.T) {
	l := value.NewList(
		value.Named("p", value.Numbers(1, 2, 3)),
		value.Named("q", value.Numbers(4)),
		value.Named("r", value.Numbers(5)),
	)
	path := index.Path{index.Pos(1), index.Pos(3)}
	many, err := ExtractMany(l, path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"p", "r"}, many.Names()); diff != "" {
		t.Errorf("path taken as nested descent (-want +got):\n%s", diff)
	}
	one := mustOne(t, l, path)
	seqEqual(t, value.Numbers(3), one)
}

func TestExtractManyMissing(t *testing.T) {
	got, err := ExtractMany(fooBarBaz(), index.Names{"bar", "nope"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 || !value.IsNA(got.At(1).Value) || got.At(1).Name != "" {
		t.Errorf("missing entry = %+v", got.At(1))
	}
	got, err = ExtractMany(fooBarBaz(), index.Positions{4})
	if err != nil {
		t.Fatal(err)
	}
	if !value.IsNA(got.At(0).Value) {
		t.Errorf("out of range entry = %+v", got.At(0))
	}
}

func TestExtractManyIdempotent(t *testing.T) {
	l := fooBarBaz()
	ix := index.Positions{3, 1}
	a, err := ExtractMany(l, ix)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ExtractMany(l, ix)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Identical(a, b) {
		t.Error("repeated ExtractMany differs")
	}
	if !value.Identical(l, fooBarBaz()) {
		t.Error("ExtractMany modified its input")
	}
}

func TestExtractManyMask(t *testing.T) {
	got, err := ExtractMany(fooBarBaz(), index.Mask{true, false, true})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"foo", "baz"}, got.Names()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	got, err = ExtractMany(fooBarBaz(), index.Where(`name != "bar"`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"foo", "baz"}, got.Names()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOfInvalid(t *testing.T) {
	if _, err := Default().Of(nil); !errors.Is(err, ErrInvalidContainer) {
		t.Errorf("error = %v", err)
	}
	if _, err := ExtractMany(nil, index.Pos(1)); !errors.Is(err, ErrInvalidContainer) {
		t.Errorf("error = %v", err)
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/subset/index"
	"github.com/signadot/subset/subset"
	"github.com/signadot/subset/value"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte("exact: true\nstrict: true\ncacheSize: 4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Exact == nil || !*c.Exact || c.Drop != nil || c.CacheSize != 4 {
		t.Errorf("got %+v", c)
	}
	if len(c.Options()) != 3 {
		t.Errorf("got %d options, want 3", len(c.Options()))
	}
}

func TestParseErrors(t *testing.T) {
	for _, d := range []string{"exact: [1]\n", "colour: red\n", "cacheSize: -1\n"} {
		if _, err := Parse([]byte(d)); !errors.Is(err, ErrConfig) {
			t.Errorf("Parse(%q) error = %v", d, err)
		}
	}
}

func TestOptionsApply(t *testing.T) {
	p := filepath.Join(t.TempDir(), "subset.yaml")
	if err := os.WriteFile(p, []byte("exact: true\ndrop: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	e := subset.New(c.Options()...)
	l := value.NewList(value.Named("alpha", value.Numbers(1)))
	r, err := e.ExtractOne(l, index.Name("al"))
	if err != nil {
		t.Fatal(err)
	}
	if !r.Missing() {
		t.Error("exact config allowed a partial match")
	}
	a := value.MustArray(value.Range(1, 4), 2, 2)
	v, err := e.ExtractArray(a, []index.Index{index.Pos(1), index.Pos(2)})
	if err != nil {
		t.Fatal(err)
	}
	if v.Type() != value.ArrayType {
		t.Errorf("drop: false config dropped dimensions: %s", v.Type())
	}
}

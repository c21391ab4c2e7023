package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/signadot/subset/debug"
	"github.com/signadot/subset/value"
)

const DefaultCacheSize = 128

// Compiler compiles predicate sources and evaluates them over containers.
// Compiled programs are kept in an LRU cache keyed by source; a Compiler
// is safe for concurrent use.
type Compiler struct {
	cache *lru.Cache[string, *vm.Program]
}

func NewCompiler(cacheSize int) *Compiler {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *vm.Program](cacheSize)
	if err != nil {
		panic(err)
	}
	return &Compiler{cache: cache}
}

func (c *Compiler) Compile(src string) (*vm.Program, error) {
	if prg, ok := c.cache.Get(src); ok {
		return prg, nil
	}
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, src, err)
	}
	c.cache.Add(src, prg)
	return prg, nil
}

// Cached reports whether src has a compiled program in the cache.
func (c *Compiler) Cached(src string) bool {
	return c.cache.Contains(src)
}

// Mask evaluates src once per element of v and returns the resulting
// mask. The environment binds
//
//	x     the element (nil when missing)
//	i     its 1-based position
//	name  its name, "" when unnamed
//	na    whether it is missing
//
// Sequences and arrays are evaluated per element and lists per item. For
// tables src is evaluated per row with every column bound by name, plus i
// and na (whether the row has a missing cell). A column named i or na
// hides the row binding of that name.
//
// A predicate failing on a missing element yields false for it.
func (c *Compiler) Mask(v value.Value, src string) ([]bool, error) {
	prg, err := c.Compile(src)
	if err != nil {
		return nil, err
	}
	envs, missing, ok := envsOf(v)
	if !ok {
		return nil, fmt.Errorf("%w: cannot evaluate over %T", ErrNotPredicate, v)
	}
	res := make([]bool, len(envs))
	for i, env := range envs {
		b, err := run(prg, env)
		if err != nil {
			if missing[i] {
				continue
			}
			return nil, fmt.Errorf("element %d: %w", i+1, err)
		}
		res[i] = b
	}
	if debug.Eval() {
		debug.Logf("predicate %q over %s -> %v\n", src, v.Type(), res)
	}
	return res, nil
}

func run(prg *vm.Program, env map[string]any) (bool, error) {
	out, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	switch b := out.(type) {
	case bool:
		return b, nil
	case nil:
		return false, nil
	}
	return false, fmt.Errorf("%w: got %T", ErrNotPredicate, out)
}

// envsOf returns one environment per element of v and whether each
// element is, or for tables has, a missing value.
func envsOf(v value.Value) ([]map[string]any, []bool, bool) {
	switch x := v.(type) {
	case *value.Sequence:
		envs, missing := seqEnvs(x)
		return envs, missing, true
	case *value.Array:
		envs, missing := seqEnvs(x.Data())
		return envs, missing, true
	case *value.List:
		res := make([]map[string]any, x.Len())
		missing := make([]bool, x.Len())
		for i := range res {
			it := x.At(i)
			missing[i] = value.IsNA(it.Value)
			res[i] = map[string]any{
				"x":    ToAny(it.Value),
				"i":    i + 1,
				"name": it.Name,
				"na":   missing[i],
			}
		}
		return res, missing, true
	case *value.Table:
		res := make([]map[string]any, x.Rows())
		missing := make([]bool, x.Rows())
		cols := x.Columns()
		for i := range res {
			for _, c := range cols {
				missing[i] = missing[i] || c.Data.At(i).Missing
			}
			env := map[string]any{"i": i + 1, "na": missing[i]}
			for _, c := range cols {
				env[c.Name] = c.Data.At(i).Any()
			}
			res[i] = env
		}
		return res, missing, true
	}
	return nil, nil, false
}

func seqEnvs(s *value.Sequence) ([]map[string]any, []bool) {
	res := make([]map[string]any, s.Len())
	missing := make([]bool, s.Len())
	for i := range res {
		e := s.At(i)
		missing[i] = e.Missing
		res[i] = map[string]any{
			"x":    e.Any(),
			"i":    i + 1,
			"name": s.Name(i),
			"na":   e.Missing,
		}
	}
	return res, missing
}

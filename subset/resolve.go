package subset

import (
	"fmt"

	"github.com/signadot/subset/debug"
	"github.com/signadot/subset/index"
	"github.com/signadot/subset/value"
)

// target describes what an index is resolved against: n elements with
// optional names, and the container itself for computed indices.
type target struct {
	n     int
	names []string
	v     value.Value
}

// resolve maps ix to 0-based positions into t. A position of -1 marks an
// out-of-range position or an unmatched name.
func (e *Engine) resolve(t target, ix index.Index) ([]int, error) {
	switch x := ix.(type) {
	case index.All:
		res := make([]int, t.n)
		for i := range res {
			res[i] = i
		}
		return res, nil
	case index.Pos:
		return resolvePositions(t.n, []int{int(x)})
	case index.Positions:
		return resolvePositions(t.n, x)
	case index.Mask:
		return e.resolveMask(t.n, x)
	case index.Name:
		return []int{lookupExact(t.names, string(x))}, nil
	case index.Names:
		res := make([]int, len(x))
		for i, n := range x {
			res[i] = lookupExact(t.names, n)
		}
		return res, nil
	case index.Where:
		if t.v == nil {
			return nil, fmt.Errorf("%w: computed index %s needs a container", ErrInvalidKey, x)
		}
		m, err := e.preds.Mask(t.v, string(x))
		if err != nil {
			return nil, err
		}
		return e.resolveMask(t.n, m)
	case index.Path:
		flat, err := flatten(x)
		if err != nil {
			return nil, err
		}
		return e.resolve(t, flat)
	case nil:
		return nil, fmt.Errorf("%w: nil index", ErrInvalidKey)
	}
	return nil, fmt.Errorf("%w: unsupported index %T", ErrInvalidKey, ix)
}

// flatten turns a path into the top-level selection of its keys. Multi
// extraction never descends.
func flatten(p index.Path) (index.Index, error) {
	var (
		ps    index.Positions
		ns    index.Names
		mixed bool
	)
	for _, k := range p {
		switch x := k.(type) {
		case index.Pos:
			ps = append(ps, int(x))
			mixed = mixed || ns != nil
		case index.Name:
			ns = append(ns, string(x))
			mixed = mixed || ps != nil
		}
	}
	if mixed {
		return nil, fmt.Errorf("%w: path %s mixes names and positions", ErrInvalidKey, p)
	}
	if ns != nil {
		return ns, nil
	}
	if ps == nil {
		ps = index.Positions{}
	}
	return ps, nil
}

func resolvePositions(n int, ps []int) ([]int, error) {
	pos, neg := false, false
	for _, p := range ps {
		pos = pos || p > 0
		neg = neg || p < 0
	}
	if pos && neg {
		return nil, fmt.Errorf("%w: %v", ErrMixedSigns, ps)
	}
	if neg {
		drop := make(map[int]bool, len(ps))
		for _, p := range ps {
			drop[-p-1] = true
		}
		res := make([]int, 0, n)
		for i := range n {
			if !drop[i] {
				res = append(res, i)
			}
		}
		return res, nil
	}
	res := make([]int, 0, len(ps))
	for _, p := range ps {
		switch {
		case p == 0:
		case p > n:
			res = append(res, -1)
		default:
			res = append(res, p-1)
		}
	}
	return res, nil
}

// resolveMask recycles m over n elements. A mask whose length does not
// divide n is a shape mismatch unless the engine is lenient; a lenient
// mask longer than n selects missing elements for its extra true entries.
func (e *Engine) resolveMask(n int, m []bool) ([]int, error) {
	if n == 0 {
		return []int{}, nil
	}
	k := len(m)
	exact := k == n || (k != 0 && k < n && n%k == 0)
	if !exact {
		if !e.lenient {
			return nil, fmt.Errorf("%w: mask of length %d over %d elements", ErrShapeMismatch, k, n)
		}
		e.log.Warn("mask length is not a multiple of target length", "mask", k, "target", n)
	}
	res := []int{}
	if k == 0 {
		return res, nil
	}
	for i := range max(n, k) {
		if !m[i%k] {
			continue
		}
		if i >= n {
			res = append(res, -1)
			continue
		}
		res = append(res, i)
	}
	if debug.Extract() {
		debug.Logf("mask %v over %d -> %v\n", m, n, res)
	}
	return res, nil
}

func lookupExact(names []string, key string) int {
	if key == "" {
		return -1
	}
	for i, n := range names {
		if n == key {
			return i
		}
	}
	return -1
}

// lookup resolves key against names: an exact match wins; otherwise, when
// partial is set, the unique name having key as a prefix.
func lookup(names []string, key string, partial bool) (int, Miss) {
	if i := lookupExact(names, key); i != -1 {
		return i, Found
	}
	if !partial || key == "" {
		return -1, NoMatch
	}
	match := -1
	for i, n := range names {
		if len(n) <= len(key) || n[:len(key)] != key {
			continue
		}
		if match != -1 {
			return -1, AmbiguousMatch
		}
		match = i
	}
	if match == -1 {
		return -1, NoMatch
	}
	return match, Found
}

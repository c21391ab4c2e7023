// Package eval evaluates computed indices.
//
// A computed index is an expr-lang boolean expression evaluated once per
// element of a container; the results form a logical mask.
//
//	c := eval.NewCompiler(eval.DefaultCacheSize)
//	m, err := c.Mask(value.Numbers(1, 5, 3), "x > 2") // [false true true]
//
// Besides the bindings documented on Compiler.Mask, predicates may call
// isna(v) and hasprefix(s, prefix).
package eval

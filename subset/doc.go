// Package subset implements the indexing rules for sequences, arrays,
// keyed lists and tables.
//
// # Operators
//
//   - Extract: multi-element selection keeping the container kind
//   - ExtractArray: per-axis array indexing with a dimension drop policy
//   - ExtractOne: strict single-element extraction, unwrapped, with
//     nested descent along a Path
//   - ExtractByLiteral: lookup by bareword identifier
//   - ExtractMany: keyed-list selection returning a keyed list
//   - CompleteMask and Filter: missing-value filtering
//
// Positions are 1-based. Lookups that find nothing do not fail: Extract
// yields missing elements and ExtractOne a missing Result.
//
//	l := value.NewList(
//	    value.Named("foo", value.Numbers(1, 2, 3, 4)),
//	    value.Named("bar", value.Numbers(0.6)),
//	)
//	r, err := subset.ExtractOne(l, index.Name("b"))  // partial match: bar
//	v, ok := r.Value()
//
// # Multi extraction does not descend
//
// ExtractOne(l, Path{Pos(1), Pos(3)}) is the third element of the first
// item. ExtractMany(l, Path{Pos(1), Pos(3)}) is the first and third items
// of l.
//
// # Policy
//
// An Engine carries the policy: ExactMatch, Drop, Strict and
// LenientRecycle. The package level functions use Default().
package subset

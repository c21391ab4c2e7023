// Package value provides the containers the subset engine indexes.
//
// # Containers
//
//   - Sequence: ordered homogeneous scalars (logical, number or string),
//     optionally named
//   - Array: a Sequence with a fixed shape, stored column-major
//   - List: ordered (optional name, value) pairs with heterogeneous,
//     possibly nested, values
//   - Table: ordered equal-length named columns
//
// # Missing values
//
// Every scalar kind has a missing marker, built with Missing. A missing
// marker is not equal to anything under Scalar.Equal, itself included;
// use Scalar.Identical or Identical for structural comparison.
//
//	s := value.MustSequence(value.NumberType,
//	    value.FromNumber(1), value.Missing(value.NumberType))
//	s.At(1).Missing // true
//
// # Immutability
//
// Containers expose no mutators. Constructors copy their inputs and
// accessors returning slices return copies, so a value can be shared
// freely once built.
package value

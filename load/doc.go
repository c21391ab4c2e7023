// Package load builds values from YAML or JSON documents.
//
// The mapping from document to value:
//
//   - a mapping becomes a List with one named item per key, in document order
//   - a sequence of scalars of one kind becomes a Sequence; null elements
//     are missing
//   - any other sequence becomes a List of unnamed items
//   - a scalar becomes a length-1 Sequence, null the missing marker
//   - the plain string NA and .nan are missing too
//
// Arrays and tables are written as tagged mappings:
//
//	m: !array
//	  dim: [2, 3]
//	  data: [1, 2, 3, 4, 5, 6]
//	t: !table
//	  name: [ann, bo]
//	  age: [31, null]
//
// JSON documents, which cannot carry tags, may use a mapping with the
// single key "!array" or "!table" instead.
package load

// Package index provides index expressions and their textual syntax.
//
// An Index selects elements of a container. The concrete types are
//
//   - Pos: one 1-based position
//   - Positions: several positions, in order, duplicates allowed
//   - Mask: a logical mask, recycled over the target when shorter
//   - Name, Names: selection by element name
//   - Path: a sequence of Pos and Name keys for nested descent
//   - All: every element, the stand-in for an omitted axis index
//   - Where: a computed predicate yielding a mask
//
// # Text forms
//
//	ix, err := index.ParseIndex("1,3")     // Positions{1, 3}
//	ix, err = index.ParseIndex("a[3]")     // Path{Name("a"), Pos(3)}
//	ix, err = index.ParseIndex("?x > 2")   // Where("x > 2")
//	axes, err := index.ParseAxes("1;*")    // []Index{Pos(1), All{}}
//
// Paths use kinded syntax: ".name" or a leading bare name for names and
// "[n]" for positions, with double quotes around names holding special
// characters.
package index

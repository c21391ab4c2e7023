// Package encode prints values.
//
// The text format follows the usual console rendering of vectors:
//
//	[1] 1 2 NA
//
// named sequences print their names above the values, arrays print as
// grids with [i,] and [,j] labels, lists print one $name or [[i]] header
// per item and tables print as aligned columns with row numbers.
//
// The YAML and JSON formats produce documents which package load reads
// back.
//
// # Usage
//
//	err := encode.Encode(v, os.Stdout, encode.EncodeColors(encode.NewColors()))
//	s := encode.MustString(v)
package encode

// Package format names the output formats of the encoder.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	err = encode.Encode(v, os.Stdout, encode.EncodeFormat(f))
package format

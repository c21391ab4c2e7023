package load

type Option func(*loadState)

type loadState struct {
	patches [][]byte
}

// WithPatch applies an RFC 6902 JSON patch to the document before it is
// decoded. Patches apply in the order given.
//
// Patching goes through the JSON form of the document, which does not
// keep tags or mapping key order; keys of patched mappings are sorted.
func WithPatch(p []byte) Option {
	return func(ls *loadState) { ls.patches = append(ls.patches, p) }
}

package libdiff

import (
	"fmt"

	"github.com/signadot/subset/encode"
	"github.com/signadot/subset/value"
)

// Diff compares two values. It reports whether they are identical and,
// when they are not, a line diff of their printed forms.
func Diff(from, to value.Value) (string, bool) {
	if value.Identical(from, to) {
		return "", true
	}
	a, b := show(from), show(to)
	if d := DiffText(a, b); d != "" {
		return d, false
	}
	// same text: the difference is in element kinds
	return fmt.Sprintf("- %s\n+ %s\n", describe(from), describe(to)), false
}

func show(v value.Value) string {
	if v == nil {
		return "<nil>"
	}
	return encode.MustString(v) + "\n"
}

func describe(v value.Value) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case *value.Sequence:
		return fmt.Sprintf("%s of %s, length %d", x.Type(), x.Elem(), x.Len())
	case *value.Array:
		return fmt.Sprintf("%s of %s, dims %v", x.Type(), x.Elem(), x.Dims())
	}
	return fmt.Sprintf("%s, length %d", v.Type(), v.Len())
}

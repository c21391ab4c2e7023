package value

import (
	"strconv"
)

// MissingText is how a missing marker is rendered.
const MissingText = "NA"

// Scalar is a single element of a Sequence.
//
// Exactly one of Bool, Number or String carries the value, selected by Type.
// When Missing is set the value fields are meaningless.
type Scalar struct {
	Type    Type
	Missing bool

	Bool   bool
	Number float64
	String string
}

// Missing returns the missing marker of kind t.
func Missing(t Type) Scalar {
	return Scalar{Type: t, Missing: true}
}

func FromBool(v bool) Scalar {
	return Scalar{Type: LogicalType, Bool: v}
}

func FromNumber(v float64) Scalar {
	return Scalar{Type: NumberType, Number: v}
}

func FromString(v string) Scalar {
	return Scalar{Type: StringType, String: v}
}

// Equal compares two scalars under the language's equality: a missing
// marker is never equal to anything, itself included.
func (s Scalar) Equal(o Scalar) bool {
	if s.Missing || o.Missing {
		return false
	}
	return s.Identical(o)
}

// Identical compares two scalars structurally; two missing markers of the
// same kind are identical.
func (s Scalar) Identical(o Scalar) bool {
	if s.Type != o.Type || s.Missing != o.Missing {
		return false
	}
	if s.Missing {
		return true
	}
	switch s.Type {
	case LogicalType:
		return s.Bool == o.Bool
	case NumberType:
		return s.Number == o.Number
	case StringType:
		return s.String == o.String
	}
	return false
}

// Text returns the printed form of s.
func (s Scalar) Text() string {
	if s.Missing {
		return MissingText
	}
	switch s.Type {
	case LogicalType:
		if s.Bool {
			return "TRUE"
		}
		return "FALSE"
	case NumberType:
		return strconv.FormatFloat(s.Number, 'g', -1, 64)
	case StringType:
		return s.String
	}
	return "<?>"
}

// Any returns the Go value of s, nil when missing.
func (s Scalar) Any() any {
	if s.Missing {
		return nil
	}
	switch s.Type {
	case LogicalType:
		return s.Bool
	case NumberType:
		return s.Number
	case StringType:
		return s.String
	}
	return nil
}

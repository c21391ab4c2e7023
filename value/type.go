package value

import "fmt"

type Type int

const (
	LogicalType Type = iota
	NumberType
	StringType
	SequenceType
	ArrayType
	ListType
	TableType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LogicalType:  "Logical",
		NumberType:   "Number",
		StringType:   "String",
		SequenceType: "Sequence",
		ArrayType:    "Array",
		ListType:     "List",
		TableType:    "Table",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Logical":  LogicalType,
		"Number":   NumberType,
		"String":   StringType,
		"Sequence": SequenceType,
		"Array":    ArrayType,
		"List":     ListType,
		"Table":    TableType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		LogicalType,
		NumberType,
		StringType,
		SequenceType,
		ArrayType,
		ListType,
		TableType,
	}
}

// IsScalar reports whether t is an element kind rather than a container kind.
func (t Type) IsScalar() bool {
	switch t {
	case LogicalType, NumberType, StringType:
		return true
	default:
		return false
	}
}

package format

import (
	"errors"
	"fmt"
)

// Format selects how encode writes a value: console text, or a YAML or
// JSON document that load reads back.
type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// ParseFormat accepts a format name or its usual abbreviation or file
// extension, case sensitively.
func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"text": TextFormat,
		"txt":  TextFormat,
		"t":    TextFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"y":    YAMLFormat,
		"json": JSONFormat,
		"j":    JSONFormat,
	}[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q (want text, yaml or json)", ErrBadFormat, v)
	}
	return f, nil
}

var names = map[Format]string{
	TextFormat: "text",
	YAMLFormat: "yaml",
	JSONFormat: "json",
}

func (f Format) String() string {
	if n, ok := names[f]; ok {
		return n
	}
	return fmt.Sprintf("<format %d>", int(f))
}

func (f Format) MarshalText() ([]byte, error) {
	n, ok := names[f]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(n), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }

// IsData reports whether f writes a document rather than console text.
func (f Format) IsData() bool { return f != TextFormat }

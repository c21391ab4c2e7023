package index

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath parses a kinded path into a Path.
//
// Path syntax:
//   - "a.b" → name a, then name b
//   - "a[3]" → name a, then position 3 (1-based)
//   - "[1][3]" → position 1, then position 3
//   - `"field name".x` or `a["field name"]` → quoted names
//   - "" → empty path (returns nil)
func ParsePath(p string) (Path, error) {
	if p == "" {
		return nil, nil
	}
	var res Path
	if err := parseFrag(p, true, &res); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrParse, p, err)
	}
	return res, nil
}

func parseFrag(frag string, first bool, dst *Path) error {
	for len(frag) != 0 {
		switch frag[0] {
		case '.':
			field, rest, err := parseField(frag[1:])
			if err != nil {
				return err
			}
			*dst = append(*dst, Name(field))
			frag = rest
		case '[':
			i := closingBracket(frag)
			if i == -1 {
				return fmt.Errorf("expected '[' <index> ']'")
			}
			k, err := parseBracket(frag[1:i])
			if err != nil {
				return err
			}
			*dst = append(*dst, k)
			frag = frag[i+1:]
		default:
			if !first {
				return fmt.Errorf("expected '.' or '[', got %q", frag[0])
			}
			field, rest, err := parseField(frag)
			if err != nil {
				return err
			}
			*dst = append(*dst, Name(field))
			frag = rest
		}
		first = false
	}
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if frag[0] == '"' {
		q, err := strconv.QuotedPrefix(frag)
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted field: %w", err)
		}
		field, _ = strconv.Unquote(q)
		return field, frag[len(q):], nil
	}
	i := strings.IndexAny(frag, ".[")
	if i == 0 {
		return "", "", fmt.Errorf("empty field")
	}
	if i == -1 {
		return frag, "", nil
	}
	return frag[:i], frag[i:], nil
}

// closingBracket finds the ']' closing frag[0] == '[', skipping quoted
// text.
func closingBracket(frag string) int {
	inQuote, esc := false, false
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case esc:
			esc = false
		case inQuote && c == '\\':
			esc = true
		case c == '"':
			inQuote = !inQuote
		case !inQuote && c == ']':
			return i
		}
	}
	return -1
}

func parseBracket(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if len(s) != 0 && s[0] == '"' {
		n, err := strconv.Unquote(s)
		if err != nil {
			return nil, fmt.Errorf("invalid quoted key %s: %w", s, err)
		}
		return Name(n), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid position %q", s)
	}
	return Pos(n), nil
}

// ParseIndex parses the textual form of an index:
//
//	""  or "*"       All
//	"3", "-2"        Pos
//	"1,3,2"          Positions
//	"T,F" "TRUE"     Mask
//	`a,"b c"`        Names
//	"a"              Name
//	"a[3]", "[1][2]" Path
//	"?x > 2"         Where
func ParseIndex(s string) (Index, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "*":
		return All{}, nil
	case s[0] == '?':
		return Where(strings.TrimSpace(s[1:])), nil
	}
	parts, err := splitList(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrParse, s, err)
	}
	if len(parts) > 1 {
		return parseList(s, parts)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Pos(n), nil
	}
	if b, ok := parseBool(s); ok {
		return Mask{b}, nil
	}
	p, err := ParsePath(s)
	if err != nil {
		return nil, err
	}
	if len(p) == 1 {
		return p[0], nil
	}
	return p, nil
}

// ParseAxes parses per-axis indices separated by ';'. An empty axis is
// All: "1;" selects row 1 and every column.
func ParseAxes(s string) ([]Index, error) {
	axes := strings.Split(s, ";")
	res := make([]Index, len(axes))
	for i, ax := range axes {
		ix, err := ParseIndex(ax)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i+1, err)
		}
		if _, ok := ix.(Path); ok {
			return nil, fmt.Errorf("%w: axis %d: path %q is not an axis index", ErrParse, i+1, ax)
		}
		res[i] = ix
	}
	return res, nil
}

func parseList(src string, parts []string) (Index, error) {
	if ps, ok := parseInts(parts); ok {
		return ps, nil
	}
	if m, ok := parseBools(parts); ok {
		return m, nil
	}
	res := make(Names, len(parts))
	for i, p := range parts {
		if len(p) != 0 && p[0] == '"' {
			n, err := strconv.Unquote(p)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: invalid quoted name %s", ErrParse, src, p)
			}
			res[i] = n
			continue
		}
		if p == "" {
			return nil, fmt.Errorf("%w: %q: empty name", ErrParse, src)
		}
		res[i] = p
	}
	return res, nil
}

func parseInts(parts []string) (Positions, bool) {
	res := make(Positions, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		res[i] = n
	}
	return res, true
}

func parseBools(parts []string) (Mask, bool) {
	res := make(Mask, len(parts))
	for i, p := range parts {
		b, ok := parseBool(p)
		if !ok {
			return nil, false
		}
		res[i] = b
	}
	return res, true
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "T", "TRUE", "true":
		return true, true
	case "F", "FALSE", "false":
		return false, true
	}
	return false, false
}

// splitList splits s on commas outside double quotes, trimming space.
func splitList(s string) ([]string, error) {
	var (
		res          []string
		start        int
		inQuote, esc bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case esc:
			esc = false
		case inQuote && c == '\\':
			esc = true
		case c == '"':
			inQuote = !inQuote
		case !inQuote && c == ',':
			res = append(res, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	return append(res, strings.TrimSpace(s[start:])), nil
}

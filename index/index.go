package index

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Index is an index expression. The concrete types are Pos, Positions,
// Mask, Name, Names, Path, All and Where.
type Index interface {
	String() string
	isIndex()
}

// Key is an index usable as a single-element key or a path segment: Pos
// or Name.
type Key interface {
	Index
	isKey()
}

// Pos is a 1-based position. Zero selects nothing, a negative position
// excludes that element.
type Pos int

// Positions is a set of 1-based positions in the order they are to be
// returned. Duplicates are allowed.
type Positions []int

// Mask selects the elements where it is true. It is recycled over the
// target when shorter.
type Mask []bool

type Name string

type Names []string

// Path is a sequence of keys for nested descent.
type Path []Key

// All selects everything; it stands for an omitted axis index.
type All struct{}

// Where is a computed index: a predicate evaluated per element yielding a
// Mask.
type Where string

func (Pos) isIndex() {}
func (Positions) isIndex() {}
func (Mask) isIndex() {}
func (Name) isIndex() {}
func (Names) isIndex() {}
func (Path) isIndex() {}
func (All) isIndex() {}
func (Where) isIndex() {}

func (Pos) isKey() {}
func (Name) isKey() {}

func (p Pos) String() string { return strconv.Itoa(int(p)) }

func (ps Positions) String() string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

func (m Mask) String() string {
	parts := make([]string, len(m))
	for i, b := range m {
		if b {
			parts[i] = "T"
		} else {
			parts[i] = "F"
		}
	}
	return strings.Join(parts, ",")
}

func (n Name) String() string { return quoteName(string(n)) }

func (ns Names) String() string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = quoteName(n)
	}
	return strings.Join(parts, ",")
}

// String returns the kinded path form, eg `a.b[3]`.
func (p Path) String() string {
	var b strings.Builder
	for _, k := range p {
		switch x := k.(type) {
		case Pos:
			fmt.Fprintf(&b, "[%d]", int(x))
		case Name:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(quoteName(string(x)))
		}
	}
	return b.String()
}

func (All) String() string { return "*" }
func (w Where) String() string { return "?" + string(w) }

// IsIdent reports whether s is a bareword identifier: a letter, '_' or a
// '.' not followed by a digit, then letters, digits, '.' and '_'.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r), r == '_':
		case r == '.' && i == 0:
		case i > 0 && (unicode.IsDigit(r) || r == '.'):
		default:
			return false
		}
	}
	if s[0] == '.' && len(s) > 1 {
		r, _ := utf8.DecodeRuneInString(s[1:])
		return !unicode.IsDigit(r)
	}
	return true
}

func quoteName(n string) string {
	if n != "" && strings.IndexAny(n, ".[]\"', ") == -1 && !isInt(n) {
		return n
	}
	return strconv.Quote(n)
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// AsKey converts ix to a Key. A one-element Positions or Names converts
// to its Pos or Name form.
func AsKey(ix Index) (Key, bool) {
	switch x := ix.(type) {
	case Pos:
		return x, true
	case Name:
		return x, true
	case Positions:
		if len(x) == 1 {
			return Pos(x[0]), true
		}
	case Names:
		if len(x) == 1 {
			return Name(x[0]), true
		}
	}
	return nil, false
}

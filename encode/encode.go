package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/subset/format"
	"github.com/signadot/subset/index"
	"github.com/signadot/subset/value"
)

type EncState struct {
	format format.Format
	quote  bool

	Color func(value.Type, ColorAttr, string) string
}

func Encode(v value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{quote: true}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsData() {
		return encodeData(v, w, es)
	}
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrEncoding)
	}
	lines, err := es.lines(v, "")
	if err != nil {
		return err
	}
	return writeString(w, strings.Join(lines, "\n")+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) paint(t value.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// cell is a piece of text of known width, colored when written.
type cell struct {
	text string
	t    value.Type
	attr ColorAttr
}

func (c cell) width() int { return utf8.RuneCountInString(c.text) }

func (es *EncState) pad(c cell, w int) string {
	sp := strings.Repeat(" ", max(0, w-c.width()))
	return sp + es.paint(c.t, c.attr, c.text)
}

func (es *EncState) scalar(s value.Scalar, quote bool) cell {
	if s.Missing {
		return cell{text: value.MissingText, t: s.Type, attr: MissingColor}
	}
	text := s.Text()
	if quote && s.Type == value.StringType {
		text = strconv.Quote(text)
	}
	return cell{text: text, t: s.Type, attr: ValueColor}
}

func (es *EncState) label(t value.Type, s string) cell {
	return cell{text: s, t: t, attr: IndexColor}
}

func (es *EncState) lines(v value.Value, prefix string) ([]string, error) {
	switch x := v.(type) {
	case *value.Sequence:
		return es.sequence(x), nil
	case *value.Array:
		return es.array(x), nil
	case *value.List:
		return es.list(x, prefix)
	case *value.Table:
		return es.table(x), nil
	}
	return nil, fmt.Errorf("%w: cannot encode %T", ErrEncoding, v)
}

func (es *EncState) sequence(s *value.Sequence) []string {
	if s.Len() == 0 {
		return []string{strings.ToLower(s.Elem().String()) + "(0)"}
	}
	if !s.Named() {
		parts := make([]string, 0, s.Len()+1)
		parts = append(parts, es.paint(value.SequenceType, IndexColor, "[1]"))
		for i := range s.Len() {
			c := es.scalar(s.At(i), es.quote)
			parts = append(parts, es.pad(c, 0))
		}
		return []string{strings.Join(parts, " ")}
	}
	names := make([]string, s.Len())
	vals := make([]string, s.Len())
	for i := range s.Len() {
		n := cell{text: s.Name(i), t: value.SequenceType, attr: NameColor}
		c := es.scalar(s.At(i), es.quote)
		w := max(n.width(), c.width())
		names[i] = es.pad(n, w)
		vals[i] = es.pad(c, w)
	}
	return []string{strings.Join(names, " "), strings.Join(vals, " ")}
}

func (es *EncState) array(a *value.Array) []string {
	dims := a.Dims()
	for _, d := range dims {
		if d == 0 {
			ds := make([]string, len(dims))
			for i, d := range dims {
				ds[i] = strconv.Itoa(d)
			}
			return []string{fmt.Sprintf("<%s array of %s>", strings.Join(ds, " x "), strings.ToLower(a.Elem().String()))}
		}
	}
	if len(dims) == 1 {
		return es.sequence(a.Data())
	}
	if len(dims) == 2 {
		return es.grid(a, nil)
	}
	// one grid per combination of the coordinates past the second axis,
	// first of them varying fastest
	outer := dims[2:]
	coords := make([]int, len(outer))
	var res []string
	for {
		hdr := make([]string, len(coords))
		for i, c := range coords {
			hdr[i] = strconv.Itoa(c + 1)
		}
		res = append(res, es.paint(value.ArrayType, IndexColor, ", , "+strings.Join(hdr, ", ")), "")
		res = append(res, es.grid(a, coords)...)
		res = append(res, "")
		i := 0
		for ; i < len(coords); i++ {
			coords[i]++
			if coords[i] < outer[i] {
				break
			}
			coords[i] = 0
		}
		if i == len(coords) {
			return res
		}
	}
}

// grid renders the rows and columns of a at the given trailing coordinates.
func (es *EncState) grid(a *value.Array, rest []int) []string {
	rows, cols := a.Dim(0), a.Dim(1)
	at := func(r, c int) value.Scalar {
		return a.At(append([]int{r, c}, rest...)...)
	}
	rowLabels := make([]cell, rows)
	rw := 0
	for r := range rows {
		rowLabels[r] = es.label(value.ArrayType, fmt.Sprintf("[%d,]", r+1))
		rw = max(rw, rowLabels[r].width())
	}
	colLabels := make([]cell, cols)
	widths := make([]int, cols)
	for c := range cols {
		colLabels[c] = es.label(value.ArrayType, fmt.Sprintf("[,%d]", c+1))
		widths[c] = colLabels[c].width()
		for r := range rows {
			widths[c] = max(widths[c], es.scalar(at(r, c), es.quote).width())
		}
	}
	res := make([]string, 0, rows+1)
	hdr := []string{strings.Repeat(" ", rw)}
	for c := range cols {
		hdr = append(hdr, es.pad(colLabels[c], widths[c]))
	}
	res = append(res, strings.Join(hdr, " "))
	for r := range rows {
		ln := []string{es.pad(rowLabels[r], rw)}
		for c := range cols {
			ln = append(ln, es.pad(es.scalar(at(r, c), es.quote), widths[c]))
		}
		res = append(res, strings.Join(ln, " "))
	}
	return res
}

func (es *EncState) list(l *value.List, prefix string) ([]string, error) {
	if l.Len() == 0 {
		return []string{"list()"}, nil
	}
	var res []string
	for i := range l.Len() {
		it := l.At(i)
		hdr := prefix + itemHeader(it.Name, i)
		res = append(res, es.paint(value.ListType, NameColor, hdr))
		inner, err := es.lines(it.Value, hdr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", hdr, err)
		}
		res = append(res, inner...)
		res = append(res, "")
	}
	return res, nil
}

func itemHeader(name string, i int) string {
	switch {
	case name == "":
		return fmt.Sprintf("[[%d]]", i+1)
	case index.IsIdent(name):
		return "$" + name
	default:
		return "$`" + name + "`"
	}
}

func (es *EncState) table(t *value.Table) []string {
	cols := t.Columns()
	if len(cols) == 0 {
		return []string{fmt.Sprintf("table with 0 columns and %d rows", t.Rows())}
	}
	rw := len(strconv.Itoa(t.Rows()))
	widths := make([]int, len(cols))
	hdr := []string{strings.Repeat(" ", rw)}
	for j, c := range cols {
		n := cell{text: c.Name, t: value.TableType, attr: NameColor}
		widths[j] = n.width()
		for i := range t.Rows() {
			widths[j] = max(widths[j], es.scalar(c.Data.At(i), false).width())
		}
		hdr = append(hdr, es.pad(n, widths[j]))
	}
	res := []string{strings.Join(hdr, " ")}
	if t.Rows() == 0 {
		return append(res, "<0 rows>")
	}
	for i := range t.Rows() {
		ln := []string{es.pad(es.label(value.TableType, strconv.Itoa(i+1)), rw)}
		for j, c := range cols {
			ln = append(ln, es.pad(es.scalar(c.Data.At(i), false), widths[j]))
		}
		res = append(res, strings.Join(ln, " "))
	}
	return res
}

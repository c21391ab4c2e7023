package value

import (
	"fmt"
	"slices"
)

type Column struct {
	Name string
	Data *Sequence
}

// Table is an ordered collection of equal-length named columns.
type Table struct {
	cols []Column
	rows int
}

func NewTable(cols ...Column) (*Table, error) {
	res := &Table{cols: make([]Column, len(cols))}
	for i, c := range cols {
		if c.Data == nil {
			return nil, fmt.Errorf("%w: column %q has no data", ErrShape, c.Name)
		}
		if i == 0 {
			res.rows = c.Data.Len()
		} else if c.Data.Len() != res.rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrShape, c.Name, c.Data.Len(), res.rows)
		}
		res.cols[i] = Column{Name: c.Name, Data: c.Data.Clone()}
	}
	return res, nil
}

func MustTable(cols ...Column) *Table {
	t, err := NewTable(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Type() Type { return TableType }

// Len returns the number of columns.
func (t *Table) Len() int { return len(t.cols) }
func (t *Table) Rows() int { return t.rows }

func (t *Table) ColumnAt(i int) Column { return t.cols[i] }

func (t *Table) Columns() []Column { return slices.Clone(t.cols) }

func (t *Table) Column(name string) (*Sequence, bool) {
	for i := range t.cols {
		if t.cols[i].Name == name {
			return t.cols[i].Data, true
		}
	}
	return nil, false
}

func (t *Table) Names() []string {
	res := make([]string, len(t.cols))
	for i := range t.cols {
		res[i] = t.cols[i].Name
	}
	return res
}

package value

import "slices"

// Item is one (optional name, value) pair of a List. An empty Name means
// the item is unnamed.
type Item struct {
	Name  string
	Value Value
}

func Named(name string, v Value) Item {
	return Item{Name: name, Value: v}
}

func Unnamed(v Value) Item {
	return Item{Value: v}
}

// List is an ordered heterogeneous collection of optionally named values.
// Names need not be unique.
type List struct {
	items []Item
}

func NewList(items ...Item) *List {
	return &List{items: slices.Clone(items)}
}

func (l *List) Type() Type { return ListType }
func (l *List) Len() int { return len(l.items) }

// At returns the item at 0-based position i.
func (l *List) At(i int) Item { return l.items[i] }

func (l *List) Items() []Item { return slices.Clone(l.items) }

func (l *List) Names() []string {
	res := make([]string, len(l.items))
	for i := range l.items {
		res[i] = l.items[i].Name
	}
	return res
}

// Get returns the value of the first item named name.
func Get(l *List, name string) Value {
	for i := range l.items {
		if l.items[i].Name == name {
			return l.items[i].Value
		}
	}
	return nil
}

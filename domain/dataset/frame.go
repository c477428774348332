package dataset

import (
	"github.com/AdmcCarthy/Stroop-Effect/domain/core"
)

// Column is a named, ordered sequence of numeric observations.
// Missing values are expected to have been dropped by whoever built it.
type Column struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// NewColumn creates a column holding a copy of values
func NewColumn(name string, values []float64) Column {
	cp := make([]float64, len(values))
	copy(cp, values)
	return Column{Name: name, Values: cp}
}

// Count returns the number of observations
func (c Column) Count() int {
	return len(c.Values)
}

// IsEmpty reports whether the column holds no observations
func (c Column) IsEmpty() bool {
	return len(c.Values) == 0
}

// Frame is a set of numeric columns addressable by name.
// Column order is the order in which columns were added.
type Frame struct {
	order   []string
	columns map[string]Column
}

// NewFrame creates a frame from columns; a later column with a duplicate
// name replaces the earlier one but keeps its position.
func NewFrame(columns ...Column) *Frame {
	f := &Frame{columns: make(map[string]Column, len(columns))}
	for _, c := range columns {
		f.Add(c)
	}
	return f
}

// Add inserts or replaces a column
func (f *Frame) Add(c Column) {
	if f.columns == nil {
		f.columns = make(map[string]Column)
	}
	if _, exists := f.columns[c.Name]; !exists {
		f.order = append(f.order, c.Name)
	}
	f.columns[c.Name] = c
}

// Column looks up a column by name
func (f *Frame) Column(name string) (Column, error) {
	c, ok := f.columns[name]
	if !ok {
		return Column{}, core.NewUnknownColumnError(name)
	}
	return c, nil
}

// Select returns the named columns in the requested order.
// An empty name list selects every column in frame order.
func (f *Frame) Select(names ...string) ([]Column, error) {
	if len(names) == 0 {
		names = f.order
	}
	out := make([]Column, 0, len(names))
	for _, name := range names {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Names returns column names in frame order
func (f *Frame) Names() []string {
	names := make([]string, len(f.order))
	copy(names, f.order)
	return names
}

// Len returns the number of columns
func (f *Frame) Len() int {
	return len(f.order)
}

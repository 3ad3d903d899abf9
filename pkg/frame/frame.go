// Package frame implements a small columnar table whose columns share one length.
//
// Ranging over a Frame's Columns visits the column names,
// Rows visits every row with its position,
// and Column visits the values of a single column.
package frame

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrLengthMismatch    errorkit.Error = "ErrLengthMismatch"
	ErrDuplicateColumn   errorkit.Error = "ErrDuplicateColumn"
	ErrColumnNotFound    errorkit.Error = "ErrColumnNotFound"
	ErrColumnType        errorkit.Error = "ErrColumnType"
	ErrIndexOutOfRange   errorkit.Error = "ErrIndexOutOfRange"
	ErrMissingColumnName errorkit.Error = "ErrMissingColumnName"
)

// Column is a named list of values.
type Column struct {
	Name   string
	Values []any
}

// Col builds a Column from typed values.
func Col[V any](name string, values ...V) Column {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Column{Name: name, Values: vs}
}

type Frame struct {
	names  []string
	values [][]any
	index  map[string]int
	length int
}

// New creates a Frame from columns of equal length.
// Column order is kept as given.
func New(columns ...Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(columns))}
	for i, c := range columns {
		if c.Name == "" {
			return nil, ErrMissingColumnName.F("column %d has no name", i)
		}
		if _, ok := f.index[c.Name]; ok {
			return nil, ErrDuplicateColumn.F("%q", c.Name)
		}
		if i == 0 {
			f.length = len(c.Values)
		}
		if len(c.Values) != f.length {
			return nil, ErrLengthMismatch.F("column %q has %d values, expected %d", c.Name, len(c.Values), f.length)
		}
		f.index[c.Name] = i
		f.names = append(f.names, c.Name)
		f.values = append(f.values, slices.Clone(c.Values))
	}
	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.length
}

// Columns yields the column names in order.
func (f *Frame) Columns() iter.Seq[string] {
	return slices.Values(f.names)
}

// Column yields the values of the named column.
func (f *Frame) Column(name string) (iter.Seq[any], error) {
	i, ok := f.index[name]
	if !ok {
		return nil, ErrColumnNotFound.F("%q", name)
	}
	return slices.Values(f.values[i]), nil
}

// ColumnOf yields the values of the named column as V.
// Every value of the column must be a V.
func ColumnOf[V any](f *Frame, name string) (iter.Seq[V], error) {
	i, ok := f.index[name]
	if !ok {
		return nil, ErrColumnNotFound.F("%q", name)
	}
	for row, v := range f.values[i] {
		if _, ok := v.(V); !ok {
			var zero V
			return nil, ErrColumnType.F("column %q row %d holds %T, not %T", name, row, v, zero)
		}
	}
	return func(yield func(V) bool) {
		for _, v := range f.values[i] {
			if !yield(v.(V)) {
				return
			}
		}
	}, nil
}

// Row returns the row at the given position.
func (f *Frame) Row(i int) (Row, error) {
	if i < 0 || f.length <= i {
		return Row{}, ErrIndexOutOfRange.F("row %d, length %d", i, f.length)
	}
	return Row{Index: i, frame: f}, nil
}

// Rows yields every row with its position.
func (f *Frame) Rows() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i := 0; i < f.length; i++ {
			if !yield(i, Row{Index: i, frame: f}) {
				return
			}
		}
	}
}

// Fprint renders the frame as a table with the row positions in the first column.
func (f *Frame) Fprint(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(append([]string{""}, f.names...))
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})
	for i, row := range f.Rows() {
		line := []string{strconv.Itoa(i)}
		for _, v := range row.Values() {
			line = append(line, fmt.Sprint(v))
		}
		table.Append(line)
	}
	table.Render()
	return nil
}

// Row is a view of a single row of a Frame.
type Row struct {
	Index int
	frame *Frame
}

// Get returns the value of the named column in this row.
func (r Row) Get(name string) (any, error) {
	i, ok := r.frame.index[name]
	if !ok {
		return nil, ErrColumnNotFound.F("%q", name)
	}
	return r.frame.values[i][r.Index], nil
}

// Values returns a copy of the row's values in column order.
func (r Row) Values() []any {
	vs := make([]any, len(r.frame.names))
	for i := range r.frame.names {
		vs[i] = r.frame.values[i][r.Index]
	}
	return vs
}

// Items yields column name and value pairs of the row in column order.
func (r Row) Items() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, name := range r.frame.names {
			if !yield(name, r.frame.values[i][r.Index]) {
				return
			}
		}
	}
}

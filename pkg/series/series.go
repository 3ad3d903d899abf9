// Package series implements a small labelled, ordered collection of values.
// Ranging over a Series visits its values by default; labels and label-value pairs have their own iterators.
package series

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrLengthMismatch  errorkit.Error = "ErrLengthMismatch"
	ErrLabelNotFound   errorkit.Error = "ErrLabelNotFound"
	ErrIndexOutOfRange errorkit.Error = "ErrIndexOutOfRange"
)

type Series[V any] struct {
	Name string

	values []V
	labels []string
	index  map[string]int
}

// New creates a Series.
// When labels is nil, the positions "0".."n-1" are used as labels.
// When a label repeats, Get resolves to its first occurrence.
func New[V any](values []V, labels []string) (*Series[V], error) {
	if labels == nil {
		labels = make([]string, len(values))
		for i := range values {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(values) != len(labels) {
		return nil, ErrLengthMismatch.F("%d values but %d labels", len(values), len(labels))
	}
	s := &Series[V]{
		values: slices.Clone(values),
		labels: slices.Clone(labels),
		index:  make(map[string]int, len(labels)),
	}
	for i, label := range s.labels {
		if _, ok := s.index[label]; !ok {
			s.index[label] = i
		}
	}
	return s, nil
}

func (s *Series[V]) Len() int {
	return len(s.values)
}

// At returns the value at the given position.
func (s *Series[V]) At(i int) (V, error) {
	if i < 0 || len(s.values) <= i {
		var zero V
		return zero, ErrIndexOutOfRange.F("position %d, length %d", i, len(s.values))
	}
	return s.values[i], nil
}

// Get returns the value under the given label.
func (s *Series[V]) Get(label string) (V, error) {
	i, ok := s.index[label]
	if !ok {
		var zero V
		return zero, ErrLabelNotFound.F("%q", label)
	}
	return s.values[i], nil
}

func (s *Series[V]) Values() iter.Seq[V] {
	return slices.Values(s.values)
}

func (s *Series[V]) Labels() iter.Seq[string] {
	return slices.Values(s.labels)
}

// Items yields label-value pairs in order.
func (s *Series[V]) Items() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i, label := range s.labels {
			if !yield(label, s.values[i]) {
				return
			}
		}
	}
}

// Fprint writes the series as aligned "label  value" rows.
func (s *Series[V]) Fprint(w io.Writer) error {
	var table [][]string
	for label, v := range s.Items() {
		table = append(table, []string{label, fmt.Sprint(v)})
	}
	if err := cli.FPrintTable(w, table, cli.TablePadding(4)); err != nil {
		return err
	}
	if s.Name != "" {
		_, err := fmt.Fprintf(w, "Name: %s, Length: %d\n", s.Name, s.Len())
		return err
	}
	return nil
}

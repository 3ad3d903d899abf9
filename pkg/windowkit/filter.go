package windowkit

import (
	"go.llib.dev/frameless/pkg/iterkit"
)

var _ iterkit.PullIter[int] = (*Filtered[int])(nil)

// Filter returns a windower that yields the elements of source for which test returns true.
// Elements failing the test are consumed without producing output.
func Filter[T any](source []T, test func(T) bool) (*Filtered[T], error) {
	if test == nil {
		return nil, ErrConfiguration.F("Predicate test function is missing")
	}
	return &Filtered[T]{source: source, test: test}, nil
}

// Filtered is the predicate windower.
// It has a single owner and is not safe for concurrent use.
type Filtered[T any] struct {
	source []T
	test   func(T) bool

	cursor int
	done   bool
	value  T
}

func (f *Filtered[T]) Next() bool {
	if f.done {
		return false
	}
	for f.cursor < len(f.source) {
		v := f.source[f.cursor]
		f.cursor++
		if f.test(v) {
			f.value = v
			return true
		}
	}
	return f.exhaust()
}

func (f *Filtered[T]) Value() T {
	return f.value
}

func (f *Filtered[T]) Err() error {
	return nil
}

func (f *Filtered[T]) Close() error {
	f.exhaust()
	return nil
}

func (f *Filtered[T]) Exhausted() bool {
	return f.done
}

func (f *Filtered[T]) Cursor() int {
	return f.cursor
}

// Seq continues the filter's single forward pass as an iter.Seq.
func (f *Filtered[T]) Seq() iterkit.SingleUseSeq[T] {
	return func(yield func(T) bool) {
		for f.Next() {
			if !yield(f.Value()) {
				return
			}
		}
	}
}

func (f *Filtered[T]) exhaust() bool {
	var zero T
	f.done = true
	f.value = zero
	return false
}

package windowkit

import (
	"go.llib.dev/frameless/pkg/iterkit"
)

var _ iterkit.PullIter[[]int] = (*Windower[int])(nil)

// Windower yields sub-slice views of its source according to its Policy.
//
// A Windower has a single owner and is not safe for concurrent use.
type Windower[T any] struct {
	source []T
	policy Policy
	size   int

	cursor int
	done   bool
	value  []T
}

// Next makes the next view available through Value.
// It returns false once no further view exists, and keeps returning false after that.
func (w *Windower[T]) Next() bool {
	if w.done {
		return false
	}
	var remaining = len(w.source) - w.cursor
	switch w.policy {
	case FixedBatch:
		if remaining <= 0 {
			return w.exhaust()
		}
		end := w.cursor + min(w.size, remaining)
		w.value = w.source[w.cursor:end:end]
		w.cursor = end
	case SlidingWindow:
		if remaining < w.size {
			return w.exhaust()
		}
		end := w.cursor + w.size
		w.value = w.source[w.cursor:end:end]
		w.cursor++
	default:
		return w.exhaust()
	}
	return true
}

// Value returns the current view.
// The view's capacity is clipped to its length, so appending to it never writes into the source.
func (w *Windower[T]) Value() []T {
	return w.value
}

// Err always returns nil, since an in-memory source can't fail mid iteration.
func (w *Windower[T]) Err() error {
	return nil
}

// Close exhausts the windower.
func (w *Windower[T]) Close() error {
	w.exhaust()
	return nil
}

// Exhausted reports whether the windower reached its terminal state.
func (w *Windower[T]) Exhausted() bool {
	return w.done
}

// Cursor returns the current read position in the source.
func (w *Windower[T]) Cursor() int {
	return w.cursor
}

// Policy returns the windowing policy the windower was constructed with.
func (w *Windower[T]) Policy() Policy {
	return w.policy
}

// Size returns the configured batch or window size.
func (w *Windower[T]) Size() int {
	return w.size
}

// Seq continues the windower's single forward pass as an iter.Seq.
func (w *Windower[T]) Seq() iterkit.SingleUseSeq[[]T] {
	return func(yield func([]T) bool) {
		for w.Next() {
			if !yield(w.Value()) {
				return
			}
		}
	}
}

func (w *Windower[T]) exhaust() bool {
	w.done = true
	w.value = nil
	return false
}

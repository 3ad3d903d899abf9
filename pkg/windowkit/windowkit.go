// Package windowkit provides lazy, single-pass windowing over an in-memory slice.
//
// # Summary
//
// A windower is bound to one source slice and one policy.
// Each call to Next advances an internal cursor and makes the next view available through Value.
// The source is never modified, and a windower can't be rewound:
// to iterate again, construct a new one with the same source and policy.
//
//   - FixedBatch cuts the source into contiguous, non-overlapping batches.
//     The final batch holds the remainder when the length doesn't divide evenly.
//   - SlidingWindow yields every contiguous window of the given size, advancing by one position.
//   - Filter yields the elements that pass a predicate, in their original order.
//
// Windowers implement iterkit.PullIter, so they compose with the rest of the frameless iterator toolkit.
package windowkit

import (
	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrConfiguration is returned at construction time when a windower is configured with an unusable policy.
const ErrConfiguration errorkit.Error = "ErrConfiguration"

// Policy tells how a Windower advances its cursor and shapes its views.
type Policy int

const (
	// FixedBatch advances the cursor by the size on each step.
	FixedBatch Policy = iota + 1
	// SlidingWindow advances the cursor by one on each step and only yields full windows.
	SlidingWindow
)

func (p Policy) String() string {
	switch p {
	case FixedBatch:
		return "FixedBatch"
	case SlidingWindow:
		return "SlidingWindow"
	default:
		return "Policy(unknown)"
	}
}

// New creates a Windower for the given source, policy and size.
// The size must be at least 1.
func New[T any](source []T, policy Policy, size int) (*Windower[T], error) {
	switch policy {
	case FixedBatch, SlidingWindow:
	default:
		return nil, ErrConfiguration.F("unknown windowing policy: %d", int(policy))
	}
	if size < 1 {
		return nil, ErrConfiguration.F("%s size must be at least 1, got %d", policy, size)
	}
	return &Windower[T]{
		source: source,
		policy: policy,
		size:   size,
	}, nil
}

// Batch returns a FixedBatch Windower.
func Batch[T any](source []T, size int) (*Windower[T], error) {
	return New(source, FixedBatch, size)
}

// Sliding returns a SlidingWindow Windower.
func Sliding[T any](source []T, size int) (*Windower[T], error) {
	return New(source, SlidingWindow, size)
}

// BatchCount tells how many batches a FixedBatch windower produces for a source of the given length.
func BatchCount(length, size int) int {
	if size < 1 || length <= 0 {
		return 0
	}
	count := length / size
	if length%size != 0 {
		count++
	}
	return count
}

// WindowCount tells how many windows a SlidingWindow windower produces for a source of the given length.
func WindowCount(length, size int) int {
	if size < 1 || length < size {
		return 0
	}
	return length - size + 1
}

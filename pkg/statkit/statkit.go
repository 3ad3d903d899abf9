// Package statkit computes derived statistics over the views produced by windowkit.
package statkit

import (
	"iter"

	"github.com/dataiter/windowkit/pkg/windowkit"
	"go.llib.dev/frameless/pkg/mathkit"
)

// Sum adds up the values.
func Sum[N mathkit.Number](vs []N) N {
	var total N
	for _, v := range vs {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of the values using floating-point division.
// The mean of an empty slice is 0.
func Mean[N mathkit.Number](vs []N) float64 {
	mean, _ := MeanOK(vs)
	return mean
}

// MeanOK is like Mean, but reports whether the slice had any value to average.
func MeanOK[N mathkit.Number](vs []N) (float64, bool) {
	if len(vs) == 0 {
		return 0, false
	}
	return float64(Sum(vs)) / float64(len(vs)), true
}

// Ratio returns part / total, or 0 when total is not positive.
func Ratio(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total)
}

// Summary describes a single batch.
type Summary[N mathkit.Number] struct {
	// Index is the zero-based position of the batch.
	Index  int
	Values []N
	Sum    N
	Mean   float64
}

// BatchSummaries cuts the source into fixed size batches and summarises each of them.
// The final batch may be shorter, so the mean is always measured on the batch's own length.
func BatchSummaries[N mathkit.Number](source []N, size int) ([]Summary[N], error) {
	w, err := windowkit.Batch(source, size)
	if err != nil {
		return nil, err
	}
	defer w.Close()
	summaries := make([]Summary[N], 0, windowkit.BatchCount(len(source), size))
	for w.Next() {
		batch := w.Value()
		summaries = append(summaries, Summary[N]{
			Index:  len(summaries),
			Values: batch,
			Sum:    Sum(batch),
			Mean:   Mean(batch),
		})
	}
	return summaries, w.Err()
}

// MovingAverage yields the mean of every sliding window of the given size.
// The returned sequence is single use.
func MovingAverage[N mathkit.Number](source []N, size int) (iter.Seq[float64], error) {
	w, err := windowkit.Sliding(source, size)
	if err != nil {
		return nil, err
	}
	return func(yield func(float64) bool) {
		for window := range w.Seq() {
			if !yield(Mean(window)) {
				return
			}
		}
	}, nil
}

// Package ndarray is a dense, row-major n-dimensional float64 array
// with reductions along a single axis.
//
// Reducing along an axis removes that axis from the shape:
// summing a (2, 3, 4) array along axis 1 adds the rows of each layer together and results in a (2, 4) array.
package ndarray

import (
	"math"
	"slices"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrShapeMismatch   errorkit.Error = "ErrShapeMismatch"
	ErrAxisOutOfRange  errorkit.Error = "ErrAxisOutOfRange"
	ErrIndexOutOfRange errorkit.Error = "ErrIndexOutOfRange"
)

type Array struct {
	shape []int
	data  []float64
}

// New wraps data with the given shape.
// The product of the dimensions must equal the length of data.
// An empty shape describes a scalar holding exactly one value.
func New(data []float64, shape ...int) (*Array, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if size != len(data) {
		return nil, ErrShapeMismatch.F("shape %v holds %d elements, got %d", shape, size, len(data))
	}
	return &Array{
		shape: slices.Clone(shape),
		data:  slices.Clone(data),
	}, nil
}

// Arange returns the one dimensional array [0, 1, ..., n-1].
func Arange(n int) *Array {
	n = max(n, 0)
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	return &Array{shape: []int{n}, data: data}
}

// Reshape returns a new Array with the same data and a different shape.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	return New(a.data, shape...)
}

func (a *Array) Shape() []int {
	return slices.Clone(a.shape)
}

func (a *Array) Ndim() int {
	return len(a.shape)
}

func (a *Array) Size() int {
	return len(a.data)
}

// Data returns a copy of the elements in row-major order.
func (a *Array) Data() []float64 {
	return slices.Clone(a.data)
}

// At returns the element at the given multi-dimensional index.
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrIndexOutOfRange.F("%d indices for a %d dimensional array", len(idx), len(a.shape))
	}
	var offset int
	for axis, i := range idx {
		if i < 0 || a.shape[axis] <= i {
			return 0, ErrIndexOutOfRange.F("index %d on axis %d with size %d", i, axis, a.shape[axis])
		}
		offset = offset*a.shape[axis] + i
	}
	return a.data[offset], nil
}

// Sum adds the elements together along the given axis.
// Negative axes count from the last dimension.
func (a *Array) Sum(axis int) (*Array, error) {
	return a.reduce(axis, func(total float64, _ int) float64 { return total })
}

// Mean averages the elements along the given axis.
// Negative axes count from the last dimension.
func (a *Array) Mean(axis int) (*Array, error) {
	return a.reduce(axis, func(total float64, n int) float64 {
		if n == 0 {
			return 0
		}
		return total / float64(n)
	})
}

func (a *Array) reduce(axis int, finalize func(total float64, n int) float64) (*Array, error) {
	axis, err := a.normaliseAxis(axis)
	if err != nil {
		return nil, err
	}
	var (
		outer = product(a.shape[:axis])
		n     = a.shape[axis]
		inner = product(a.shape[axis+1:])
		out   = make([]float64, outer*inner)
	)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			var total float64
			for j := 0; j < n; j++ {
				total += a.data[(o*n+j)*inner+i]
			}
			out[o*inner+i] = finalize(total, n)
		}
	}
	return &Array{
		shape: slices.Delete(slices.Clone(a.shape), axis, axis+1),
		data:  out,
	}, nil
}

func (a *Array) normaliseAxis(axis int) (int, error) {
	var (
		ndim = len(a.shape)
		norm = axis
	)
	if norm < 0 {
		norm += ndim
	}
	if norm < 0 || ndim <= norm {
		return 0, ErrAxisOutOfRange.F("axis %d for a %d dimensional array", axis, ndim)
	}
	return norm, nil
}

// SizeOf returns the number of elements an array of the given shape holds.
func SizeOf(shape ...int) (int, error) {
	return sizeOf(shape)
}

func sizeOf(shape []int) (int, error) {
	for _, d := range shape {
		if d < 0 {
			return 0, ErrShapeMismatch.F("negative dimension in shape %v", shape)
		}
	}
	if slices.Contains(shape, 0) {
		return 0, nil
	}
	var size = 1
	for _, d := range shape {
		if math.MaxInt/d < size {
			return 0, ErrShapeMismatch.F("shape %v holds more elements than an int can count", shape)
		}
		size *= d
	}
	return size, nil
}

func product(dims []int) int {
	var p = 1
	for _, d := range dims {
		p *= d
	}
	return p
}

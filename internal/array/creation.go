package array

import (
	"math"
)

// Flat creates a 1-D array from elements.
func Flat[T any](elements []T) *Array[T] {
	data := make([]T, len(elements))
	copy(data, elements)
	return wrap(data, Shape{len(data)})
}

// Single creates a one-element array of shape [1].
func Single[T any](value T) *Array[T] {
	return wrap([]T{value}, Shape{1})
}

// Empty creates an array with no elements and shape [0].
func Empty[T any]() *Array[T] {
	return wrap([]T{}, Shape{0})
}

// Full creates an array of the given shape filled with value.
//
// Example:
//
//	a, _ := array.Full(array.Shape{2, 2}, "x")
func Full[T any](shape Shape, value T) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]T, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return wrap(data, shape.Clone()), nil
}

// FullLike creates an array with the shape of a filled with value.
func FullLike[T, U any](a *Array[U], value T) *Array[T] {
	out, _ := Full(a.shape, value)
	return out
}

// Zeros creates an array filled with the zero value of T.
func Zeros[T any](shape Shape) (*Array[T], error) {
	var zero T
	return Full(shape, zero)
}

// Ones creates an array filled with ones.
func Ones[T Numeric](shape Shape) (*Array[T], error) {
	return Full(shape, T(1))
}

// ZerosLike creates a zero-filled array with the shape of a.
func ZerosLike[T, U any](a *Array[U]) *Array[T] {
	var zero T
	return FullLike(a, zero)
}

// OnesLike creates a one-filled array with the shape of a.
func OnesLike[T Numeric, U any](a *Array[U]) *Array[T] {
	return FullLike(a, T(1))
}

// Arange creates a 1-D array with values in [start, stop) spaced by step.
//
// Example:
//
//	a, _ := array.Arange(0, 10, 3) // [0 3 6 9]
func Arange[T Numeric](start, stop, step T) (*Array[T], error) {
	if step == 0 {
		return nil, paramError("step", "must be non-zero")
	}

	span := (float64(stop) - float64(start)) / float64(step)
	n := max(int(math.Ceil(span)), 0)

	data := make([]T, n)
	for i := range data {
		data[i] = start + T(i)*step
	}
	return wrap(data, Shape{n}), nil
}

// Linspace creates num evenly spaced values over [start, stop].
// When endpoint is false, stop is excluded.
func Linspace[T Float](start, stop T, num int, endpoint bool) (*Array[T], error) {
	if num < 0 {
		return nil, mustBeAtLeast("linspace: num", num, 0)
	}

	data := make([]T, num)
	div := num
	if endpoint {
		div = num - 1
	}
	switch {
	case num == 0:
		return wrap(data, Shape{0}), nil
	case div == 0:
		data[0] = start
		return wrap(data, Shape{1}), nil
	}

	step := (stop - start) / T(div)
	for i := range data {
		data[i] = start + T(i)*step
	}
	if endpoint {
		data[num-1] = stop
	}
	return wrap(data, Shape{num}), nil
}

// Logspace creates num values spaced evenly on a log scale, from
// base**start to base**stop.
func Logspace[T Float](start, stop T, num int, endpoint bool, base T) (*Array[T], error) {
	exps, err := Linspace(start, stop, num, endpoint)
	if err != nil {
		return nil, err
	}
	for i, e := range exps.elements {
		exps.elements[i] = T(math.Pow(float64(base), float64(e)))
	}
	return exps, nil
}

// Geomspace creates num values forming a geometric progression from start
// to stop. Both bounds must be non-zero and share a sign.
func Geomspace[T Float](start, stop T, num int, endpoint bool) (*Array[T], error) {
	if start == 0 || stop == 0 {
		return nil, paramError("start/stop", "geometric sequence cannot include zero")
	}
	if (start < 0) != (stop < 0) {
		return nil, paramError("start/stop", "bounds must share a sign, got %v and %v", start, stop)
	}

	sign := T(1)
	if start < 0 {
		sign = -1
	}
	logStart := T(math.Log10(float64(start * sign)))
	logStop := T(math.Log10(float64(stop * sign)))

	out, err := Logspace(logStart, logStop, num, endpoint, 10)
	if err != nil {
		return nil, err
	}
	for i := range out.elements {
		out.elements[i] *= sign
	}
	if num > 0 {
		out.elements[0] = start
		if endpoint && num > 1 {
			out.elements[num-1] = stop
		}
	}
	return out, nil
}

// Eye creates an n x m matrix with ones on the k-th diagonal.
// k > 0 selects an upper diagonal, k < 0 a lower one.
func Eye[T Numeric](n, m, k int) (*Array[T], error) {
	if n < 0 {
		return nil, mustBeAtLeast("eye: n", n, 0)
	}
	if m < 0 {
		return nil, mustBeAtLeast("eye: m", m, 0)
	}

	data := make([]T, n*m)
	for i := 0; i < n; i++ {
		j := i + k
		if j >= 0 && j < m {
			data[i*m+j] = 1
		}
	}
	return wrap(data, Shape{n, m}), nil
}

// Identity creates an n x n identity matrix.
func Identity[T Numeric](n int) (*Array[T], error) {
	return Eye[T](n, n, 0)
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/born-ml/ndarray/internal/array"
)

// Type aliases for public API

// Integer is a constraint for the signed and unsigned integer element kinds.
type Integer = array.Integer

// Float is a constraint for the floating-point element kinds.
type Float = array.Float

// Numeric is a constraint for element types that support arithmetic.
type Numeric = array.Numeric

// Shape lists the size of every axis, outermost first.
// Example: Shape{2, 3, 4} is a 3-D array of 2×3×4 elements.
type Shape = array.Shape

// Array is an n-dimensional array of T stored in row-major order.
//
// Example:
//
//	a, _ := array.New([]int{1, 2, 3, 4, 5, 6, 7, 8}, array.Shape{2, 2, 2})
//	v, _ := a.At(1, 1, 1) // 8
type Array[T any] = array.Array[T]

// Pair holds one element from each of two broadcast arrays.
type Pair[T, U any] = array.Pair[T, U]

// Result carries an array or the first error of a chain of operations.
type Result[T any] = array.Result[T]

// ParameterError names the offending parameter of a failed call.
type ParameterError = array.ParameterError

// Sentinel errors. Match them with errors.Is.
var (
	ErrShapeMismatch          = array.ErrShapeMismatch
	ErrBroadcastShapeMismatch = array.ErrBroadcastShapeMismatch
	ErrAxisOutOfBounds        = array.ErrAxisOutOfBounds
	ErrOutOfBounds            = array.ErrOutOfBounds
	ErrParameter              = array.ErrParameter
	ErrUnsupportedDimension   = array.ErrUnsupportedDimension
	ErrMustBeUnique           = array.ErrMustBeUnique
	ErrMustBeEqual            = array.ErrMustBeEqual
	ErrMustBeAtLeast          = array.ErrMustBeAtLeast
	ErrMustBeOneOf            = array.ErrMustBeOneOf
	ErrSqueezeAxis            = array.ErrSqueezeAxis
)

// Creation functions

// New creates an array from elements laid out in row-major order.
// The shape must describe exactly len(elements) elements.
//
// Example:
//
//	a, err := array.New([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
func New[T any](elements []T, shape Shape) (*Array[T], error) {
	return array.New(elements, shape)
}

// Flat creates a 1-D array from elements.
func Flat[T any](elements []T) *Array[T] {
	return array.Flat(elements)
}

// Single creates a 1-D array holding one value.
func Single[T any](value T) *Array[T] {
	return array.Single(value)
}

// Empty creates a 1-D array with no elements.
func Empty[T any]() *Array[T] {
	return array.Empty[T]()
}

// Full creates an array of the given shape filled with value.
func Full[T any](shape Shape, value T) (*Array[T], error) {
	return array.Full(shape, value)
}

// FullLike creates an array with the shape of a, filled with value.
func FullLike[T, U any](a *Array[U], value T) *Array[T] {
	return array.FullLike(a, value)
}

// Zeros creates an array filled with the zero value of T.
//
// Example:
//
//	x, _ := array.Zeros[float32](array.Shape{2, 3})
func Zeros[T any](shape Shape) (*Array[T], error) {
	return array.Zeros[T](shape)
}

// Ones creates an array filled with ones.
func Ones[T Numeric](shape Shape) (*Array[T], error) {
	return array.Ones[T](shape)
}

// ZerosLike creates a zero-filled array of T with the shape of a.
func ZerosLike[T, U any](a *Array[U]) *Array[T] {
	return array.ZerosLike[T](a)
}

// OnesLike creates a one-filled array of T with the shape of a.
func OnesLike[T Numeric, U any](a *Array[U]) *Array[T] {
	return array.OnesLike[T](a)
}

// Arange returns evenly spaced values in [start, stop) with the given step.
//
// Example:
//
//	a, _ := array.Arange(0, 10, 3) // [0 3 6 9]
func Arange[T Numeric](start, stop, step T) (*Array[T], error) {
	return array.Arange(start, stop, step)
}

// Linspace returns num evenly spaced values from start to stop.
// stop is included when endpoint is true.
func Linspace[T Float](start, stop T, num int, endpoint bool) (*Array[T], error) {
	return array.Linspace(start, stop, num, endpoint)
}

// Logspace returns num values spaced evenly on a log scale, from
// base**start to base**stop.
func Logspace[T Float](start, stop T, num int, endpoint bool, base T) (*Array[T], error) {
	return array.Logspace(start, stop, num, endpoint, base)
}

// Geomspace returns num values forming a geometric progression from start to stop.
func Geomspace[T Float](start, stop T, num int, endpoint bool) (*Array[T], error) {
	return array.Geomspace(start, stop, num, endpoint)
}

// Eye returns an n×m array with ones on the k-th diagonal.
func Eye[T Numeric](n, m, k int) (*Array[T], error) {
	return array.Eye[T](n, m, k)
}

// Identity returns the n×n identity array.
func Identity[T Numeric](n int) (*Array[T], error) {
	return array.Identity[T](n)
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return array.Equal(a, b)
}

// Try starts a chain from an array.
//
// Example:
//
//	out, err := array.Try(a).Reshape(array.Shape{2, -1}).Transpose().Unwrap()
func Try[T any](a *Array[T]) Result[T] {
	return array.Try(a)
}

// Wrap starts a chain from the return values of a fallible call.
//
// Example:
//
//	out, err := array.Wrap[float64](array.New(data, shape)).Squeeze().Unwrap()
func Wrap[T any](a *Array[T], err error) Result[T] {
	return array.Wrap(a, err)
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"cmp"

	"github.com/born-ml/ndarray/internal/array"
)

// Broadcasting

// BroadcastShapes computes the shape two arrays broadcast to and whether
// either of them needs expanding. Incompatible shapes return
// ErrBroadcastShapeMismatch.
//
// Example:
//
//	s, _, _ := array.BroadcastShapes(array.Shape{3, 1}, array.Shape{1, 4}) // [3 4]
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return array.BroadcastShapes(a, b)
}

// BroadcastShapesN computes the common broadcast shape of any number of shapes.
func BroadcastShapesN(shapes ...Shape) (Shape, error) {
	return array.BroadcastShapesN(shapes...)
}

// IsBroadcastable reports whether src can be broadcast to exactly target.
func IsBroadcastable(src, target Shape) bool {
	return array.IsBroadcastable(src, target)
}

// Broadcast pairs the elements of a and b over their common shape.
//
// Example:
//
//	p, _ := array.Broadcast(col, row) // element (i, j) is {col[i], row[j]}
func Broadcast[T any](a, b *Array[T]) (*Array[Pair[T, T]], error) {
	return array.Broadcast(a, b)
}

// BroadcastPairs broadcasts a and b against each other and pairs their elements.
func BroadcastPairs[T, U any](a *Array[T], b *Array[U]) (*Array[Pair[T, U]], error) {
	return array.BroadcastPairs(a, b)
}

// BroadcastArrays broadcasts every array to their common shape.
func BroadcastArrays[T any](arrays ...*Array[T]) ([]*Array[T], error) {
	return array.BroadcastArrays(arrays...)
}

// NormalizeAxis maps a negative axis to its non-negative equivalent.
// It does not check bounds.
func NormalizeAxis(axis, ndim int) int {
	return array.NormalizeAxis(axis, ndim)
}

// Joining

// Concatenate flattens every array and joins them into one 1-D array.
func Concatenate[T any](arrays ...*Array[T]) (*Array[T], error) {
	return array.Concatenate(arrays...)
}

// ConcatenateAlong joins arrays along an existing axis.
func ConcatenateAlong[T any](arrays []*Array[T], axis int) (*Array[T], error) {
	return array.ConcatenateAlong(arrays, axis)
}

// Stack joins arrays of identical shape along a new axis.
func Stack[T any](arrays []*Array[T], axis int) (*Array[T], error) {
	return array.Stack(arrays, axis)
}

// VStack stacks arrays row-wise.
func VStack[T any](arrays []*Array[T]) (*Array[T], error) {
	return array.VStack(arrays)
}

// RowStack is an alias of VStack.
func RowStack[T any](arrays []*Array[T]) (*Array[T], error) {
	return array.RowStack(arrays)
}

// HStack stacks arrays column-wise.
func HStack[T any](arrays []*Array[T]) (*Array[T], error) {
	return array.HStack(arrays)
}

// DStack stacks arrays along the third axis.
func DStack[T any](arrays []*Array[T]) (*Array[T], error) {
	return array.DStack(arrays)
}

// ColumnStack stacks 1-D arrays as the columns of a 2-D array.
func ColumnStack[T any](arrays []*Array[T]) (*Array[T], error) {
	return array.ColumnStack(arrays)
}

// Set operations

// Unique returns the sorted distinct elements of the flattened array.
func Unique[T cmp.Ordered](a *Array[T]) *Array[T] {
	return array.Unique(a)
}

// UniqueAlong returns the distinct slices along axis in lexicographic order.
func UniqueAlong[T cmp.Ordered](a *Array[T], axis int) (*Array[T], error) {
	return array.UniqueAlong(a, axis)
}

// TrimZeros strips leading and trailing zero values from a 1-D array.
func TrimZeros[T comparable](a *Array[T]) (*Array[T], error) {
	return array.TrimZeros(a)
}

// Elementwise

// MapTo applies fn to every element, possibly changing the element type.
func MapTo[T, U any](a *Array[T], fn func(T) U) *Array[U] {
	return array.MapTo(a, fn)
}

// FilterMap applies fn to every element and keeps the results reported as ok.
func FilterMap[T, U any](a *Array[T], fn func(T) (U, bool)) *Array[U] {
	return array.FilterMap(a, fn)
}

// Fold reduces all elements to a single value in row-major order.
func Fold[T, A any](a *Array[T], init A, fn func(acc A, v T) A) A {
	return array.Fold(a, init, fn)
}

// FoldAlongAxis reduces every lane along axis to one value.
//
// Example:
//
//	sums, _ := array.FoldAlongAxis(a, 1, 0, func(acc, v int) int { return acc + v })
func FoldAlongAxis[T, A any](a *Array[T], axis int, init A, fn func(acc A, v T) A) (*Array[A], error) {
	return array.FoldAlongAxis(a, axis, init, fn)
}

// Zip pairs the elements of two arrays of identical shape.
func Zip[T, U any](a *Array[T], b *Array[U]) (*Array[Pair[T, U]], error) {
	return array.Zip(a, b)
}

// ZipWith combines two arrays elementwise after broadcasting them.
func ZipWith[T, U, V any](a *Array[T], b *Array[U], fn func(T, U) V) (*Array[V], error) {
	return array.ZipWith(a, b, fn)
}

// Add returns a + b with broadcasting. Panics on incompatible shapes.
func Add[T Numeric](a, b *Array[T]) *Array[T] {
	return array.Add(a, b)
}

// Sub returns a - b with broadcasting. Panics on incompatible shapes.
func Sub[T Numeric](a, b *Array[T]) *Array[T] {
	return array.Sub(a, b)
}

// Mul returns a * b with broadcasting. Panics on incompatible shapes.
func Mul[T Numeric](a, b *Array[T]) *Array[T] {
	return array.Mul(a, b)
}

// Div returns a / b with broadcasting. Panics on incompatible shapes.
func Div[T Numeric](a, b *Array[T]) *Array[T] {
	return array.Div(a, b)
}

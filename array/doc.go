// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides a generic n-dimensional array with NumPy-style
// shape manipulation.
//
// # Overview
//
// An Array[T] owns a flat row-major buffer and a Shape. Every transform
// returns a new array with its own buffer; only Set mutates an existing
// array, and never its shape. The package provides:
//   - Construction (New, Flat, Zeros, Arange, Linspace, Eye, ...)
//   - NumPy broadcasting (BroadcastShapes, Array.BroadcastTo, Broadcast)
//   - Axis permutation (Transpose, MoveAxis, RollAxis, SwapAxes)
//   - Shape mutation (Reshape, Squeeze, ExpandDims, Insert, Delete, Append, Unique)
//   - Splitting and joining (ArraySplit, Split, Concatenate, Stack, VStack, HStack)
//   - Elementwise arithmetic with broadcasting (Add, Sub, Mul, Div)
//
// # Basic Usage
//
//	a, err := array.New([]int{1, 2, 3, 4, 5, 6, 7, 8}, array.Shape{2, 4})
//	if err != nil {
//	    return err
//	}
//	t, _ := a.Transpose()          // shape [4 2]: [1 5 2 6 3 7 4 8]
//	parts, _ := t.ArraySplit(3, 0) // shapes [2 2], [1 2], [1 2]
//
// # Axes
//
// Operations that take an axis accept negative values counting from the
// end, so -1 is the last axis. Operations that act on the flattened array
// have a plain form (Insert, Delete, Roll) and an axis form (InsertAlong,
// DeleteAlong, RollAlong).
//
// # Errors
//
// Fallible operations return an error wrapping one of the sentinel values
// (ErrShapeMismatch, ErrBroadcastShapeMismatch, ErrAxisOutOfBounds, ...).
// Match them with errors.Is. Invalid arguments produce a *ParameterError
// naming the parameter, which also matches ErrParameter.
//
// Add, Sub, Mul and Div mirror arithmetic operators and panic when the
// shapes cannot be broadcast; ZipWith is the error-returning form.
//
// # Chaining
//
// Result carries an array or the first error of a pipeline, so steps can
// be chained without checking errors in between:
//
//	out, err := array.Try(a).
//	    Reshape(array.Shape{4, 2}).
//	    ExpandDims(0).
//	    Unwrap()
package array

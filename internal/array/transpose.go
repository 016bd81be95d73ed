package array

import (
	"slices"
	"sort"

	"github.com/pkg/errors"
)

// Transpose permutes the axes of the array.
//
// With no axes the axis order is reversed. Otherwise axes must be a
// permutation of 0..ndim-1 (negative values count from the end) and output
// axis i is input axis axes[i].
//
// Example:
//
//	a, _ := array.New([]int{1, 2, 3, 4, 5, 6, 7, 8}, array.Shape{2, 4})
//	t, _ := a.Transpose() // Shape [4, 2]: [1 5 2 6 3 7 4 8]
func (a *Array[T]) Transpose(axes ...int) (*Array[T], error) {
	ndim := len(a.shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		return nil, mustBeEqual("transpose: axes length", len(axes), ndim)
	}

	perm, err := checkAxes(axes, ndim)
	if err != nil {
		return nil, err
	}
	return a.permute(perm), nil
}

// permute copies the array into the axis order given by a validated
// permutation. The input is walked with an odometer counter; each input
// coordinate lands at the output position whose axis i reads input axis perm[i].
func (a *Array[T]) permute(perm []int) *Array[T] {
	ndim := len(a.shape)
	newShape := make(Shape, ndim)
	for i, ax := range perm {
		newShape[i] = a.shape[ax]
	}

	out := make([]T, len(a.elements))
	if len(out) == 0 {
		return wrap(out, newShape)
	}

	// dstStrides[ax] is the output stride of input axis ax.
	outStrides := newShape.ComputeStrides()
	dstStrides := make([]int, ndim)
	for i, ax := range perm {
		dstStrides[ax] = outStrides[i]
	}

	coord := make([]int, ndim)
	for _, v := range a.elements {
		out[flatIndex(coord, dstStrides)] = v
		nextCoord(coord, a.shape)
	}
	return wrap(out, newShape)
}

// MoveAxis moves the source axes to the destination positions; the
// remaining axes keep their relative order.
//
// Example:
//
//	a, _ := array.Zeros[int](array.Shape{3, 4, 5})
//	b, _ := a.MoveAxis([]int{0}, []int{-1}) // Shape [4, 5, 3]
func (a *Array[T]) MoveAxis(source, destination []int) (*Array[T], error) {
	ndim := len(a.shape)
	if len(source) != len(destination) {
		return nil, mustBeEqual("moveaxis: source and destination lengths", len(source), len(destination))
	}

	src, err := checkAxes(source, ndim)
	if err != nil {
		return nil, errors.Wrap(err, "moveaxis: source")
	}
	dst, err := checkAxes(destination, ndim)
	if err != nil {
		return nil, errors.Wrap(err, "moveaxis: destination")
	}

	return a.permute(moveAxisOrder(ndim, src, dst)), nil
}

// moveAxisOrder lists the axes not in src in their original order, then
// inserts each source axis at its destination in ascending destination order.
func moveAxisOrder(ndim int, src, dst []int) []int {
	order := make([]int, 0, ndim)
	for ax := 0; ax < ndim; ax++ {
		if !slices.Contains(src, ax) {
			order = append(order, ax)
		}
	}

	pairs := make([][2]int, len(src))
	for i := range src {
		pairs[i] = [2]int{dst[i], src[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })

	for _, p := range pairs {
		order = slices.Insert(order, p[0], p[1])
	}
	return order
}

// RollAxis rolls axis backwards until it lies before position start.
// The other axes keep their relative order. start may range over
// [-ndim, ndim]; RollAxis(axis, 0) moves the axis to the front.
func (a *Array[T]) RollAxis(axis, start int) (*Array[T], error) {
	ndim := len(a.shape)
	ax, err := checkAxis(axis, ndim)
	if err != nil {
		return nil, err
	}

	st := NormalizeAxis(start, ndim)
	if st < 0 || st > ndim {
		return nil, errors.Wrapf(ErrAxisOutOfBounds, "rollaxis: start %d for %d-D array", start, ndim)
	}
	if ax < st {
		st--
	}
	if ax == st {
		return a.Clone(), nil
	}

	order := make([]int, 0, ndim)
	for i := 0; i < ndim; i++ {
		if i != ax {
			order = append(order, i)
		}
	}
	order = slices.Insert(order, st, ax)
	return a.permute(order), nil
}

// SwapAxes interchanges two axes.
func (a *Array[T]) SwapAxes(axis1, axis2 int) (*Array[T], error) {
	ndim := len(a.shape)
	ax1, err := checkAxis(axis1, ndim)
	if err != nil {
		return nil, err
	}
	ax2, err := checkAxis(axis2, ndim)
	if err != nil {
		return nil, err
	}

	order := make([]int, ndim)
	for i := range order {
		order[i] = i
	}
	order[ax1], order[ax2] = order[ax2], order[ax1]
	return a.permute(order), nil
}

// ExpandDims inserts size-1 axes so that each given axis of the result has
// size 1. Axes refer to positions in the result and may be negative.
//
// Example:
//
//	a, _ := array.Zeros[int](array.Shape{2, 3})
//	b, _ := a.ExpandDims(0, -1) // Shape [1, 2, 3, 1]
func (a *Array[T]) ExpandDims(axes ...int) (*Array[T], error) {
	outNdim := len(a.shape) + len(axes)
	normalized, err := checkAxes(axes, outNdim)
	if err != nil {
		return nil, err
	}
	slices.Sort(normalized)

	newShape := a.shape.Clone()
	for _, ax := range normalized {
		newShape = slices.Insert(newShape, ax, 1)
	}
	return wrap(a.Elements(), newShape), nil
}

// Squeeze removes size-1 axes.
//
// With no axes every size-1 axis is removed. With axes, each named axis
// must have size 1. If every axis is removed the result has shape [1].
func (a *Array[T]) Squeeze(axes ...int) (*Array[T], error) {
	newShape := make(Shape, 0, len(a.shape))

	if len(axes) == 0 {
		for _, dim := range a.shape {
			if dim != 1 {
				newShape = append(newShape, dim)
			}
		}
	} else {
		normalized, err := checkAxes(axes, len(a.shape))
		if err != nil {
			return nil, err
		}
		for _, ax := range normalized {
			if a.shape[ax] != 1 {
				return nil, errors.Wrapf(ErrSqueezeAxis, "axis %d has size %d", ax, a.shape[ax])
			}
		}
		for i, dim := range a.shape {
			if !slices.Contains(normalized, i) {
				newShape = append(newShape, dim)
			}
		}
	}

	if len(newShape) == 0 {
		newShape = Shape{1}
	}
	return wrap(a.Elements(), newShape), nil
}

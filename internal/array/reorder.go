package array

import (
	"github.com/pkg/errors"
)

// Flip reverses the order of elements along the given axes.
// With no axes every axis is reversed.
func (a *Array[T]) Flip(axes ...int) (*Array[T], error) {
	if len(axes) == 0 {
		axes = make([]int, len(a.shape))
		for i := range axes {
			axes[i] = i
		}
	}
	normalized, err := checkAxes(axes, len(a.shape))
	if err != nil {
		return nil, err
	}

	out := a
	for _, ax := range normalized {
		out = out.shiftAxis(ax, func(c, n int) int { return n - 1 - c })
	}
	if out == a {
		return a.Clone(), nil
	}
	return out, nil
}

// FlipUD reverses the order of rows (axis 0). Requires at least 1-D.
func (a *Array[T]) FlipUD() (*Array[T], error) {
	if len(a.shape) < 1 {
		return nil, unsupportedDimension("flipud", len(a.shape), "at least 1-D")
	}
	return a.Flip(0)
}

// FlipLR reverses the order of columns (axis 1). Requires at least 2-D.
func (a *Array[T]) FlipLR() (*Array[T], error) {
	if len(a.shape) < 2 {
		return nil, unsupportedDimension("fliplr", len(a.shape), "at least 2-D")
	}
	return a.Flip(1)
}

// Roll shifts the flattened elements by shift positions, wrapping around,
// and restores the original shape.
func (a *Array[T]) Roll(shift int) *Array[T] {
	n := len(a.elements)
	out := make([]T, n)
	for i, v := range a.elements {
		out[mod(i+shift, n)] = v
	}
	return wrap(out, a.shape.Clone())
}

// RollAlong shifts elements along each axis by the matching shift.
// A single shift is applied to every axis; otherwise shifts and axes must
// have the same length.
func (a *Array[T]) RollAlong(shifts, axes []int) (*Array[T], error) {
	if len(shifts) == 1 && len(axes) > 1 {
		s := shifts[0]
		shifts = make([]int, len(axes))
		for i := range shifts {
			shifts[i] = s
		}
	}
	if len(shifts) != len(axes) {
		return nil, paramError("shift", "length %d does not match %d axes", len(shifts), len(axes))
	}

	out := a.Clone()
	for i, axis := range axes {
		ax, err := checkAxis(axis, len(a.shape))
		if err != nil {
			return nil, err
		}
		shift := shifts[i]
		out = out.shiftAxis(ax, func(c, n int) int { return mod(c+shift, n) })
	}
	return out, nil
}

// Rot90 rotates the array by 90 degrees k times in the plane of the two
// given axes, from the first towards the second. With no axes the plane
// is (0, 1).
func (a *Array[T]) Rot90(k int, axes ...int) (*Array[T], error) {
	if len(axes) == 0 {
		axes = []int{0, 1}
	}
	if len(axes) != 2 {
		return nil, mustBeEqual("rot90: axes length", len(axes), 2)
	}
	ndim := len(a.shape)
	if ndim < 2 {
		return nil, unsupportedDimension("rot90", ndim, "at least 2-D")
	}

	plane, err := checkAxes(axes, ndim)
	if err != nil {
		return nil, errors.Wrap(err, "rot90")
	}

	switch mod(k, 4) {
	case 0:
		return a.Clone(), nil
	case 2:
		return a.Flip(plane[0], plane[1])
	}

	order := make([]int, ndim)
	for i := range order {
		order[i] = i
	}
	order[plane[0]], order[plane[1]] = order[plane[1]], order[plane[0]]

	if mod(k, 4) == 1 {
		flipped, err := a.Flip(plane[1])
		if err != nil {
			return nil, err
		}
		return flipped.permute(order), nil
	}
	return a.permute(order).Flip(plane[1])
}

// shiftAxis returns a copy where the element at coordinate c along axis
// moves to dst(c, size) along the same axis.
func (a *Array[T]) shiftAxis(axis int, dst func(c, n int) int) *Array[T] {
	out := make([]T, len(a.elements))
	if len(out) == 0 {
		return wrap(out, a.shape.Clone())
	}

	strides := a.shape.ComputeStrides()
	n := a.shape[axis]
	coord := make([]int, len(a.shape))
	for i, v := range a.elements {
		c := coord[axis]
		offset := i + (dst(c, n)-c)*strides[axis]
		out[offset] = v
		nextCoord(coord, a.shape)
	}
	return wrap(out, a.shape.Clone())
}

// mod returns the non-negative remainder of a / n; n == 0 yields 0.
func mod(a, n int) int {
	if n == 0 {
		return 0
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

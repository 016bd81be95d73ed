package array

import (
	"slices"

	"github.com/pkg/errors"
)

// lanes returns the 1-D runs of the array along a validated axis, in the
// row-major order of the remaining axes, plus the order that moves the axis
// back from last position.
func (a *Array[T]) lanes(ax int) ([][]T, []int) {
	ndim := len(a.shape)
	moved := a
	if ax != ndim-1 {
		moved = a.permute(moveAxisOrder(ndim, []int{ax}, []int{ndim - 1}))
	}
	back := moveAxisOrder(ndim, []int{ndim - 1}, []int{ax})

	n := a.shape[ax]
	count := a.shape.removeAxis(ax).NumElements()
	out := make([][]T, count)
	for i := range out {
		out[i] = moved.elements[i*n : (i+1)*n]
	}
	return out, back
}

// ApplyAlongAxis calls fn on every 1-D lane along axis and assembles the
// results. Every call must return a 1-D array of the same length, which
// becomes the new size of axis.
func (a *Array[T]) ApplyAlongAxis(axis int, fn func(*Array[T]) (*Array[T], error)) (*Array[T], error) {
	ax, err := checkAxis(axis, len(a.shape))
	if err != nil {
		return nil, err
	}

	lanes, back := a.lanes(ax)
	out := make([]T, 0, len(a.elements))
	size := -1
	for i, lane := range lanes {
		res, err := fn(wrap(slices.Clone(lane), Shape{len(lane)}))
		if err != nil {
			return nil, errors.Wrapf(err, "apply_along_axis: lane %d", i)
		}
		if len(res.shape) != 1 {
			return nil, unsupportedDimension("apply_along_axis: result", len(res.shape), "1-D")
		}
		if size >= 0 && res.shape[0] != size {
			return nil, mustBeEqual("apply_along_axis: result length", res.shape[0], size)
		}
		size = res.shape[0]
		out = append(out, res.elements...)
	}
	if size < 0 {
		size = a.shape[ax]
	}

	ndim := len(a.shape)
	movedShape := a.shape.removeAxis(ax)
	movedShape = append(movedShape, size)
	result := wrap(out, movedShape)
	if ax == ndim-1 {
		return result, nil
	}
	return result.permute(back), nil
}

// FoldAlongAxis reduces every lane along axis to one value. The result has
// the array's shape without axis.
func FoldAlongAxis[T, A any](a *Array[T], axis int, init A, fn func(acc A, v T) A) (*Array[A], error) {
	ax, err := checkAxis(axis, len(a.shape))
	if err != nil {
		return nil, err
	}

	lanes, _ := a.lanes(ax)
	out := make([]A, len(lanes))
	for i, lane := range lanes {
		acc := init
		for _, v := range lane {
			acc = fn(acc, v)
		}
		out[i] = acc
	}
	return wrap(out, a.shape.removeAxis(ax)), nil
}

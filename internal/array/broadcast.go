package array

import (
	"github.com/pkg/errors"
)

// Pair holds two elements visited together, one from each of two arrays.
type Pair[T, U any] struct {
	First  T
	Second U
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1 (the other one wins, including 0)
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an error if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(0, 1) + (1, 4) → (0, 4), true, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, errors.Wrapf(ErrBroadcastShapeMismatch, "%v vs %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}

// BroadcastShapesN computes the common broadcast shape of all shapes.
func BroadcastShapesN(shapes ...Shape) (Shape, error) {
	result := Shape{}
	for _, s := range shapes {
		next, _, err := BroadcastShapes(result, s)
		if err != nil {
			return nil, err
		}
		result = next
	}
	return result, nil
}

// IsBroadcastable reports whether src can be broadcast to target without
// changing target: src is right-aligned against target and every source
// dimension equals the target one or is 1.
func IsBroadcastable(src, target Shape) bool {
	if len(src) > len(target) {
		return false
	}
	pad := len(target) - len(src)
	for i, dim := range src {
		if dim != 1 && dim != target[pad+i] {
			return false
		}
	}
	return true
}

// broadcastStrides returns strides of src padded to ndim axes, with a zero
// stride on every axis where src has size 1 so the index stays put.
func broadcastStrides(src Shape, ndim int) []int {
	srcStrides := src.ComputeStrides()
	strides := make([]int, ndim)
	pad := ndim - len(src)
	for i, dim := range src {
		if dim != 1 {
			strides[pad+i] = srcStrides[i]
		}
	}
	return strides
}

// BroadcastTo materializes the array in the target shape.
//
// Compatibility is checked here; the data is then expanded by visiting every
// target coordinate and reading the source element it maps to.
//
// Example:
//
//	a, _ := array.New([]int{1, 2, 3}, array.Shape{3, 1})
//	b, _ := a.BroadcastTo(array.Shape{3, 2}) // [1 1 2 2 3 3]
func (a *Array[T]) BroadcastTo(shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if !IsBroadcastable(a.shape, shape) {
		return nil, errors.Wrapf(ErrBroadcastShapeMismatch, "cannot broadcast %v to %v", a.shape, shape)
	}

	total := shape.NumElements()
	if total == len(a.elements) {
		return wrap(a.Elements(), shape.Clone()), nil
	}

	out := make([]T, total)
	if total == 0 {
		return wrap(out, shape.Clone()), nil
	}

	strides := broadcastStrides(a.shape, len(shape))
	coord := make([]int, len(shape))
	for i := range out {
		out[i] = a.elements[flatIndex(coord, strides)]
		nextCoord(coord, shape)
	}
	return wrap(out, shape.Clone()), nil
}

// Broadcast pairs the elements of a and b over their common shape.
//
// Example:
//
//	a, _ := array.New([]int{1, 2, 3}, array.Shape{3, 1})
//	b, _ := array.New([]int{4, 5, 6}, array.Shape{1, 3})
//	p, _ := array.Broadcast(a, b) // Shape [3, 3]; element (i, j) is {i+1, j+4}
func Broadcast[T any](a, b *Array[T]) (*Array[Pair[T, T]], error) {
	return BroadcastPairs(a, b)
}

// BroadcastPairs is Broadcast for arrays of different element types.
func BroadcastPairs[T, U any](a *Array[T], b *Array[U]) (*Array[Pair[T, U]], error) {
	shape, _, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}

	out := make([]Pair[T, U], shape.NumElements())
	if len(out) == 0 {
		return wrap(out, shape), nil
	}

	aStrides := broadcastStrides(a.shape, len(shape))
	bStrides := broadcastStrides(b.shape, len(shape))
	coord := make([]int, len(shape))
	for i := range out {
		out[i] = Pair[T, U]{
			First:  a.elements[flatIndex(coord, aStrides)],
			Second: b.elements[flatIndex(coord, bStrides)],
		}
		nextCoord(coord, shape)
	}
	return wrap(out, shape), nil
}

// BroadcastArrays broadcasts every array to their common shape.
func BroadcastArrays[T any](arrays ...*Array[T]) ([]*Array[T], error) {
	shapes := make([]Shape, len(arrays))
	for i, a := range arrays {
		shapes[i] = a.shape
	}
	common, err := BroadcastShapesN(shapes...)
	if err != nil {
		return nil, err
	}

	out := make([]*Array[T], len(arrays))
	for i, a := range arrays {
		if out[i], err = a.BroadcastTo(common); err != nil {
			return nil, err
		}
	}
	return out, nil
}

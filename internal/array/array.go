package array

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// Array is an n-dimensional array: a flat row-major buffer plus a shape.
//
// Invariant: len(elements) == shape.NumElements().
//
// Arrays are immutable by convention. Every transform returns a new Array
// with its own buffer; Set is the only method that writes to the receiver
// and it never changes the shape.
//
// Example:
//
//	a, _ := array.New([]int{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
//	t, _ := a.Transpose() // Shape: [3, 2]
type Array[T any] struct {
	elements []T
	shape    Shape
}

// New creates an Array from elements and shape.
// The elements are copied; the caller keeps ownership of the slice.
func New[T any](elements []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(elements) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, got %d",
			shape, shape.NumElements(), len(elements))
	}

	data := make([]T, len(elements))
	copy(data, elements)
	return &Array[T]{elements: data, shape: shape.Clone()}, nil
}

// wrap builds an Array over an owned buffer without validation.
// Engine code calls it only with buffers it has just allocated.
func wrap[T any](elements []T, shape Shape) *Array[T] {
	return &Array[T]{elements: elements, shape: shape}
}

// Elements returns a copy of the flat row-major buffer.
func (a *Array[T]) Elements() []T {
	return slices.Clone(a.elements)
}

// Shape returns a copy of the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// NDim returns the number of axes.
func (a *Array[T]) NDim() int {
	return len(a.shape)
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.elements)
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return len(a.elements) == 0
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	return wrap(slices.Clone(a.elements), a.shape.Clone())
}

// IndexAt maps a coordinate to its flat index in the buffer.
//
// Example:
//
//	a, _ := array.New([]int{1, 2, 3, 4, 5, 6, 7, 8}, array.Shape{2, 2, 2})
//	idx, _ := a.IndexAt([]int{1, 1, 1}) // 7
func (a *Array[T]) IndexAt(coords []int) (int, error) {
	return a.shape.IndexAt(coords)
}

// IndexToCoord maps a flat index to its coordinate.
func (a *Array[T]) IndexToCoord(index int) ([]int, error) {
	return a.shape.IndexToCoord(index)
}

// At returns the element at the given coordinate.
func (a *Array[T]) At(coords ...int) (T, error) {
	idx, err := a.shape.IndexAt(coords)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.elements[idx], nil
}

// Set writes value at the given coordinate in place.
func (a *Array[T]) Set(value T, coords ...int) error {
	idx, err := a.shape.IndexAt(coords)
	if err != nil {
		return err
	}
	a.elements[idx] = value
	return nil
}

// Item returns the only element of a single-element array.
func (a *Array[T]) Item() (T, error) {
	if len(a.elements) != 1 {
		var zero T
		return zero, mustBeEqual("item: element count", len(a.elements), 1)
	}
	return a.elements[0], nil
}

// String returns a short description of the array.
func (a *Array[T]) String() string {
	var zero T
	return fmt.Sprintf("Array[%T]%v", zero, a.shape)
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return a.shape.Equal(b.shape) && slices.Equal(a.elements, b.elements)
}

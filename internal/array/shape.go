package array

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// Shape represents the extents of an array, one entry per axis.
// The last axis varies fastest (row-major).
type Shape []int

// NumElements returns the number of elements an array of this shape holds.
// An empty shape describes a scalar and holds one element; any zero-sized
// axis makes the whole array empty.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// NDim returns the number of axes.
func (s Shape) NDim() int {
	return len(s)
}

// Validate checks that no dimension is negative. Zero-sized axes are allowed.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return paramError("shape", "dimension %d is negative: %d", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as [d0 d1 ...].
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// IndexAt maps a coordinate to its flat row-major index.
//
// The index is accumulated right-to-left: the stride starts at 1 and is
// multiplied by each axis extent after that axis has been consumed.
func (s Shape) IndexAt(coords []int) (int, error) {
	if len(coords) != len(s) {
		return 0, paramError("coords", "expected %d coordinates, got %d", len(s), len(coords))
	}

	index, stride := 0, 1
	for axis := len(s) - 1; axis >= 0; axis-- {
		if coords[axis] < 0 || coords[axis] >= s[axis] {
			return 0, paramError("coords", "coordinate %d out of range for axis %d (size %d)", coords[axis], axis, s[axis])
		}
		index += coords[axis] * stride
		stride *= s[axis]
	}
	return index, nil
}

// IndexToCoord maps a flat row-major index back to its coordinate.
func (s Shape) IndexToCoord(index int) ([]int, error) {
	total := s.NumElements()
	if index < 0 || index >= total {
		return nil, errors.Wrapf(ErrOutOfBounds, "index %d for %d elements", index, total)
	}

	coords := make([]int, len(s))
	for axis := len(s) - 1; axis >= 0; axis-- {
		coords[axis] = index % s[axis]
		index /= s[axis]
	}
	return coords, nil
}

// NormalizeAxis maps a negative axis to its positive counterpart.
// Bounds are left to the caller.
func NormalizeAxis(axis, ndim int) int {
	if axis < 0 {
		return axis + ndim
	}
	return axis
}

// checkAxis normalizes axis and verifies it lies in [0, ndim).
func checkAxis(axis, ndim int) (int, error) {
	normalized := NormalizeAxis(axis, ndim)
	if normalized < 0 || normalized >= ndim {
		return 0, errors.Wrapf(ErrAxisOutOfBounds, "axis %d for %d-D array", axis, ndim)
	}
	return normalized, nil
}

// checkAxes normalizes every axis and verifies bounds and uniqueness.
func checkAxes(axes []int, ndim int) ([]int, error) {
	normalized := make([]int, len(axes))
	seen := make(map[int]bool, len(axes))
	for i, axis := range axes {
		ax, err := checkAxis(axis, ndim)
		if err != nil {
			return nil, err
		}
		if seen[ax] {
			return nil, mustBeUnique("axes", axes)
		}
		seen[ax] = true
		normalized[i] = ax
	}
	return normalized, nil
}

// nextCoord advances coord to the next position of shape in row-major order.
// It returns false after the last position, leaving coord all zeros.
func nextCoord(coord []int, shape Shape) bool {
	for axis := len(shape) - 1; axis >= 0; axis-- {
		coord[axis]++
		if coord[axis] < shape[axis] {
			return true
		}
		coord[axis] = 0
	}
	return false
}

// flatIndex computes the offset of coord given precomputed strides.
func flatIndex(coord, strides []int) int {
	offset := 0
	for i, c := range coord {
		offset += c * strides[i]
	}
	return offset
}

// removeAxis returns a copy of s without the given axis.
func (s Shape) removeAxis(axis int) Shape {
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:axis]...)
	return append(out, s[axis+1:]...)
}

// withAxis returns a copy of s with axis resized to size.
func (s Shape) withAxis(axis, size int) Shape {
	out := s.Clone()
	out[axis] = size
	return out
}

package array

import (
	"cmp"
	"slices"
	"sort"

	"github.com/pkg/errors"
)

// Reshape returns a copy of the array with a new shape.
//
// One dimension may be -1; it is inferred from the element count.
func (a *Array[T]) Reshape(shape Shape) (*Array[T], error) {
	total := len(a.elements)
	inferIdx := -1
	product := 1
	for i, dim := range shape {
		switch {
		case dim == -1:
			if inferIdx >= 0 {
				return nil, paramError("shape", "can only have one -1 dimension, got %v", shape)
			}
			inferIdx = i
		case dim < 0:
			return nil, paramError("shape", "dimension %d is negative: %d", i, dim)
		default:
			product *= dim
		}
	}

	actual := shape.Clone()
	if inferIdx >= 0 {
		if product == 0 || total%product != 0 {
			return nil, errors.Wrapf(ErrShapeMismatch, "cannot infer dimension of %v from %d elements", shape, total)
		}
		actual[inferIdx] = total / product
	}

	if actual.NumElements() != total {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot reshape %d elements to %v", total, actual)
	}
	return wrap(a.Elements(), actual), nil
}

// Resize returns an array of the new shape, repeating the elements in
// row-major order until it is full. An empty array resizes to zeros.
func (a *Array[T]) Resize(shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.NumElements()
	if len(a.elements) == 0 {
		return wrap(make([]T, n), shape.Clone()), nil
	}
	return wrap(cycle(a.elements, n), shape.Clone()), nil
}

// CycleTake returns a 1-D array of n elements taken cyclically from the
// flattened array.
func (a *Array[T]) CycleTake(n int) (*Array[T], error) {
	if n < 0 {
		return nil, mustBeAtLeast("cycle_take: n", n, 0)
	}
	if n > 0 && len(a.elements) == 0 {
		return nil, paramError("n", "cannot take %d elements from an empty array", n)
	}
	return wrap(cycle(a.elements, n), Shape{n}), nil
}

func cycle[T any](src []T, n int) []T {
	out := make([]T, n)
	for i := 0; i < n; i += len(src) {
		copy(out[i:], src)
	}
	return out
}

// Ravel flattens the array to 1-D in row-major order.
func (a *Array[T]) Ravel() *Array[T] {
	return wrap(a.Elements(), Shape{len(a.elements)})
}

// insertion is one block of elements to place before offset in a flat buffer.
type insertion[T any] struct {
	offset int
	block  []T
}

// insertBlocks places every block into a copy of buf. Blocks are sorted by
// offset and applied from the highest offset down, so each offset still
// refers to the original buffer when it is used. Blocks sharing an offset
// keep their listed order.
func insertBlocks[T any](buf []T, blocks []insertion[T]) []T {
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].offset < blocks[j].offset })

	size := len(buf)
	for _, b := range blocks {
		size += len(b.block)
	}
	out := make([]T, len(buf), size)
	copy(out, buf)

	for i := len(blocks) - 1; i >= 0; i-- {
		out = slices.Insert(out, blocks[i].offset, blocks[i].block...)
	}
	return out
}

// normalizeIndices maps negative indices to n+idx and checks each falls in
// [0, limit]. limit is n for insertion points and n-1 for element indices.
func normalizeIndices(indices []int, n, limit int) ([]int, error) {
	out := make([]int, len(indices))
	for i, idx := range indices {
		if idx < 0 {
			idx += n
		}
		if idx < 0 || idx > limit {
			return nil, errors.Wrapf(ErrOutOfBounds, "index %d for size %d", indices[i], n)
		}
		out[i] = idx
	}
	return out, nil
}

// Insert flattens the array and inserts values before the given indices.
//
// A single index receives every value; otherwise values must hold one
// element (inserted at each index) or one element per index.
//
// Example:
//
//	a := array.Flat([]int{1, 2, 3})
//	b, _ := a.Insert([]int{1}, array.Single(9)) // [1 9 2 3]
func (a *Array[T]) Insert(indices []int, values *Array[T]) (*Array[T], error) {
	n := len(a.elements)
	idx, err := normalizeIndices(indices, n, n)
	if err != nil {
		return nil, err
	}

	vals := values.elements
	blocks := make([]insertion[T], len(idx))
	switch {
	case len(idx) == 1:
		blocks[0] = insertion[T]{offset: idx[0], block: vals}
	case len(vals) == 1:
		for i, off := range idx {
			blocks[i] = insertion[T]{offset: off, block: vals}
		}
	case len(vals) == len(idx):
		for i, off := range idx {
			blocks[i] = insertion[T]{offset: off, block: vals[i : i+1]}
		}
	default:
		return nil, paramError("values", "%d values cannot be inserted at %d indices", len(vals), len(idx))
	}

	out := insertBlocks(a.elements, blocks)
	return wrap(out, Shape{len(out)}), nil
}

// InsertAlong inserts slices before the given indices along axis.
//
// Each inserted slice has the array's shape without axis. When values
// broadcasts to the array's shape with axis resized to len(indices), slice k
// is values[..., k, ...] along axis. Otherwise its elements must hold a
// single value (filling every slice), one slice (repeated at each index), or
// one slice per index laid out consecutively.
//
// Example:
//
//	a, _ := array.New([]int{1, 2, 3, 4}, array.Shape{2, 2})
//	b, _ := a.InsertAlong([]int{1}, array.Flat([]int{8, 9}), 1) // [[1 8 2] [3 9 4]]
func (a *Array[T]) InsertAlong(indices []int, values *Array[T], axis int) (*Array[T], error) {
	ax, err := checkAxis(axis, len(a.shape))
	if err != nil {
		return nil, err
	}

	n := a.shape[ax]
	idx, err := normalizeIndices(indices, n, n)
	if err != nil {
		return nil, err
	}

	slicesOf, err := a.insertionSlices(values, ax, len(idx))
	if err != nil {
		return nil, err
	}

	// Every combination of the axes before ax is one row of n*inner elements.
	outer := a.shape[:ax].NumElements()
	inner := a.shape[ax+1:].NumElements()

	blocks := make([]insertion[T], 0, outer*len(idx))
	for o := 0; o < outer; o++ {
		for k, i := range idx {
			blocks = append(blocks, insertion[T]{
				offset: (o*n + i) * inner,
				block:  slicesOf[k][o*inner : (o+1)*inner],
			})
		}
	}

	return wrap(insertBlocks(a.elements, blocks), a.shape.withAxis(ax, n+len(idx))), nil
}

// insertionSlices returns the count slices to insert along ax, each laid out
// in row-major order of the remaining axes.
func (a *Array[T]) insertionSlices(values *Array[T], ax, count int) ([][]T, error) {
	rowLen := a.shape.removeAxis(ax).NumElements()
	target := a.shape.withAxis(ax, count)
	if !IsBroadcastable(values.shape, target) {
		return insertSlices(values.elements, rowLen, count)
	}

	full, err := values.BroadcastTo(target)
	if err != nil {
		return nil, err
	}
	if ax != 0 {
		full = full.permute(moveAxisOrder(len(target), []int{ax}, []int{0}))
	}
	out := make([][]T, count)
	for k := range out {
		out[k] = full.elements[k*rowLen : (k+1)*rowLen]
	}
	return out, nil
}

// insertSlices expands flat values into count slices of rowLen elements each.
func insertSlices[T any](values []T, rowLen, count int) ([][]T, error) {
	out := make([][]T, count)
	switch {
	case len(values) == 1:
		row := make([]T, rowLen)
		for i := range row {
			row[i] = values[0]
		}
		for k := range out {
			out[k] = row
		}
	case len(values) == rowLen:
		for k := range out {
			out[k] = values
		}
	case len(values) == rowLen*count:
		for k := range out {
			out[k] = values[k*rowLen : (k+1)*rowLen]
		}
	default:
		return nil, paramError("values", "%d values do not broadcast to %d slices of %d elements",
			len(values), count, rowLen)
	}
	return out, nil
}

// Delete flattens the array and removes the elements at the given indices.
// Duplicate indices are ignored; negative indices count from the end.
//
// Example:
//
//	a := array.Flat([]int{1, 2, 3})
//	b, _ := a.Delete(1) // [1 3]
func (a *Array[T]) Delete(indices ...int) (*Array[T], error) {
	n := len(a.elements)
	idx, err := normalizeIndices(indices, n, n-1)
	if err != nil {
		return nil, err
	}
	drop := sortedUnique(idx)

	out := make([]T, 0, n-len(drop))
	for i, v := range a.elements {
		if _, found := slices.BinarySearch(drop, i); !found {
			out = append(out, v)
		}
	}
	return wrap(out, Shape{len(out)}), nil
}

// DeleteAlong removes the slices at the given indices along axis.
func (a *Array[T]) DeleteAlong(indices []int, axis int) (*Array[T], error) {
	ax, err := checkAxis(axis, len(a.shape))
	if err != nil {
		return nil, err
	}

	n := a.shape[ax]
	idx, err := normalizeIndices(indices, n, n-1)
	if err != nil {
		return nil, err
	}
	drop := sortedUnique(idx)

	newShape := a.shape.withAxis(ax, n-len(drop))
	out := make([]T, 0, newShape.NumElements())
	if len(a.elements) > 0 {
		coord := make([]int, len(a.shape))
		for _, v := range a.elements {
			if _, found := slices.BinarySearch(drop, coord[ax]); !found {
				out = append(out, v)
			}
			nextCoord(coord, a.shape)
		}
	}
	return wrap(out, newShape), nil
}

func sortedUnique(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

// Append flattens both arrays and concatenates them.
func (a *Array[T]) Append(values *Array[T]) *Array[T] {
	out := make([]T, 0, len(a.elements)+len(values.elements))
	out = append(out, a.elements...)
	out = append(out, values.elements...)
	return wrap(out, Shape{len(out)})
}

// AppendAlong appends values at the end of axis. Both arrays must have the
// same number of dimensions and the same shape on every other axis.
func (a *Array[T]) AppendAlong(values *Array[T], axis int) (*Array[T], error) {
	if len(values.shape) != len(a.shape) {
		return nil, paramError("values", "has %d dimensions, want %d", len(values.shape), len(a.shape))
	}
	ax, err := checkAxis(axis, len(a.shape))
	if err != nil {
		return nil, err
	}
	for i := range a.shape {
		if i != ax && a.shape[i] != values.shape[i] {
			return nil, paramError("values", "shape %v does not match %v off axis %d", values.shape, a.shape, ax)
		}
	}

	m := values.shape[ax]
	if m == 0 {
		return a.Clone(), nil
	}

	indices := make([]int, m)
	for i := range indices {
		indices[i] = a.shape[ax]
	}
	return a.InsertAlong(indices, values, ax)
}

// Unique returns the sorted distinct elements of the flattened array.
//
// Elements are ordered by cmp.Compare, so NaNs sort before every number.
// NaN never equals itself, so every NaN is kept; the distinct set is the
// same as when NaNs compare equal to everything.
func Unique[T cmp.Ordered](a *Array[T]) *Array[T] {
	out := slices.Clone(a.elements)
	slices.SortFunc(out, cmp.Compare[T])
	out = slices.CompactFunc(out, func(x, y T) bool { return x == y })
	return wrap(out, Shape{len(out)})
}

// UniqueAlong returns the distinct slices along axis, sorted
// lexicographically by their elements.
func UniqueAlong[T cmp.Ordered](a *Array[T], axis int) (*Array[T], error) {
	ax, err := checkAxis(axis, len(a.shape))
	if err != nil {
		return nil, err
	}

	if a.shape[ax] == 0 {
		return a.Clone(), nil
	}

	ndim := len(a.shape)
	moved := a
	if ax != 0 {
		moved = a.permute(moveAxisOrder(ndim, []int{ax}, []int{0}))
	}

	rows, err := moved.SplitAxis(0)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(rows, func(x, y *Array[T]) int {
		return slices.CompareFunc(x.elements, y.elements, cmp.Compare[T])
	})
	rows = slices.CompactFunc(rows, func(x, y *Array[T]) bool {
		return slices.Equal(x.elements, y.elements)
	})

	out := make([]T, 0, len(moved.elements))
	for _, r := range rows {
		out = append(out, r.elements...)
	}
	shape := moved.shape.withAxis(0, len(rows))
	result := wrap(out, shape)

	if ax == 0 {
		return result, nil
	}
	return result.permute(moveAxisOrder(ndim, []int{0}, []int{ax})), nil
}

// TrimZeros strips leading and trailing zero values from a 1-D array.
func TrimZeros[T comparable](a *Array[T]) (*Array[T], error) {
	if len(a.shape) != 1 {
		return nil, unsupportedDimension("trim_zeros", len(a.shape), "1-D")
	}

	var zero T
	start, end := 0, len(a.elements)
	for start < end && a.elements[start] == zero {
		start++
	}
	for end > start && a.elements[end-1] == zero {
		end--
	}
	out := slices.Clone(a.elements[start:end])
	return wrap(out, Shape{len(out)}), nil
}

// AtLeast pads the shape with size-1 axes until the array has at least n
// dimensions, for n in {0, 1, 2, 3}.
//
// A 1-D array of length N becomes [1, N] for n=2 and [1, N, 1] for n=3;
// a 2-D array [M, N] becomes [M, N, 1] for n=3.
func (a *Array[T]) AtLeast(n int) (*Array[T], error) {
	if n < 0 || n > 3 {
		return nil, mustBeOneOf("atleast: n", n, 0, 1, 2, 3)
	}
	ndim := len(a.shape)
	if ndim >= n {
		return a.Clone(), nil
	}

	var shape Shape
	switch {
	case ndim == 0:
		shape = make(Shape, n)
		for i := range shape {
			shape[i] = 1
		}
	case ndim == 1 && n == 2:
		shape = Shape{1, a.shape[0]}
	case ndim == 1 && n == 3:
		shape = Shape{1, a.shape[0], 1}
	default: // ndim == 2 && n == 3
		shape = Shape{a.shape[0], a.shape[1], 1}
	}
	return wrap(a.Elements(), shape), nil
}

// Repeat flattens the array and repeats each element n times.
func (a *Array[T]) Repeat(n int) (*Array[T], error) {
	if n < 0 {
		return nil, mustBeAtLeast("repeat: n", n, 0)
	}
	out := make([]T, 0, len(a.elements)*n)
	for _, v := range a.elements {
		for range n {
			out = append(out, v)
		}
	}
	return wrap(out, Shape{len(out)}), nil
}

// RepeatAlong repeats each slice along axis n times.
func (a *Array[T]) RepeatAlong(n, axis int) (*Array[T], error) {
	if n < 0 {
		return nil, mustBeAtLeast("repeat: n", n, 0)
	}
	ax, err := checkAxis(axis, len(a.shape))
	if err != nil {
		return nil, err
	}

	outer := a.shape[:ax+1].NumElements()
	inner := a.shape[ax+1:].NumElements()
	out := make([]T, 0, len(a.elements)*n)
	for o := 0; o < outer; o++ {
		block := a.elements[o*inner : (o+1)*inner]
		for range n {
			out = append(out, block...)
		}
	}
	return wrap(out, a.shape.withAxis(ax, a.shape[ax]*n)), nil
}

// Tile repeats the whole array reps[i] times along axis i. Shapes and reps
// of different length are right-aligned and padded with 1s.
func (a *Array[T]) Tile(reps ...int) (*Array[T], error) {
	for _, r := range reps {
		if r < 0 {
			return nil, mustBeAtLeast("tile: reps", r, 0)
		}
	}

	ndim := max(len(a.shape), len(reps))
	src := padLeft(a.shape, ndim)
	rp := padLeft(Shape(reps), ndim)

	shape := make(Shape, ndim)
	for i := range shape {
		shape[i] = src[i] * rp[i]
	}

	out := make([]T, shape.NumElements())
	if len(out) == 0 {
		return wrap(out, shape), nil
	}

	strides := src.ComputeStrides()
	coord := make([]int, ndim)
	srcCoord := make([]int, ndim)
	for i := range out {
		for d := range coord {
			srcCoord[d] = coord[d] % src[d]
		}
		out[i] = a.elements[flatIndex(srcCoord, strides)]
		nextCoord(coord, shape)
	}
	return wrap(out, shape), nil
}

// padLeft prepends 1s to s until it has ndim entries.
func padLeft(s Shape, ndim int) Shape {
	out := make(Shape, ndim)
	pad := ndim - len(s)
	for i := 0; i < pad; i++ {
		out[i] = 1
	}
	copy(out[pad:], s)
	return out
}

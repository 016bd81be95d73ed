package array

// Concatenate flattens every array and joins them into one 1-D array.
func Concatenate[T any](arrays ...*Array[T]) (*Array[T], error) {
	if len(arrays) == 0 {
		return nil, paramError("arrays", "at least one array required")
	}
	out := arrays[0].Ravel()
	for _, a := range arrays[1:] {
		out = out.Append(a)
	}
	return out, nil
}

// ConcatenateAlong joins arrays along an existing axis.
//
// All arrays must have the same number of dimensions and the same shape
// except along axis. Supports negative axis indexing.
//
// Example:
//
//	a, _ := array.New([]int{1, 2, 3, 4}, array.Shape{2, 2})
//	b, _ := array.New([]int{5, 6, 7, 8}, array.Shape{2, 2})
//	c, _ := array.ConcatenateAlong([]*array.Array[int]{a, b}, 1) // [[1 2 5 6] [3 4 7 8]]
func ConcatenateAlong[T any](arrays []*Array[T], axis int) (*Array[T], error) {
	if len(arrays) == 0 {
		return nil, paramError("arrays", "at least one array required")
	}
	first := arrays[0]
	ax, err := checkAxis(axis, len(first.shape))
	if err != nil {
		return nil, err
	}
	if err := checkOffAxisShapes(arrays, ax); err != nil {
		return nil, err
	}

	out := first.Clone()
	for _, a := range arrays[1:] {
		if out, err = out.AppendAlong(a, ax); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// checkOffAxisShapes verifies every array matches the first one in rank and
// on every axis other than ax.
func checkOffAxisShapes[T any](arrays []*Array[T], ax int) error {
	want := arrays[0].shape
	for i, a := range arrays[1:] {
		if len(a.shape) != len(want) {
			return paramError("arrays", "array %d has %d dimensions, want %d", i+1, len(a.shape), len(want))
		}
		for d := range want {
			if d != ax && a.shape[d] != want[d] {
				return paramError("arrays", "array %d has shape %v, want %v off axis %d", i+1, a.shape, want, ax)
			}
		}
	}
	return nil
}

// Stack joins arrays of identical shape along a new axis.
// The result has one more dimension, of size len(arrays), at axis.
func Stack[T any](arrays []*Array[T], axis int) (*Array[T], error) {
	if len(arrays) == 0 {
		return nil, paramError("arrays", "at least one array required")
	}
	want := arrays[0].shape
	for i, a := range arrays[1:] {
		if !a.shape.Equal(want) {
			return nil, paramError("arrays", "array %d has shape %v, want %v", i+1, a.shape, want)
		}
	}

	ax, err := checkAxis(axis, len(want)+1)
	if err != nil {
		return nil, err
	}

	// Concatenating along the leading axis lays the inputs end to end;
	// the new axis is created in front and then moved into place.
	joined, err := Concatenate(arrays...)
	if err != nil {
		return nil, err
	}
	shape := append(Shape{len(arrays)}, want...)
	stacked := wrap(joined.elements, shape)
	if ax == 0 {
		return stacked, nil
	}
	return stacked.permute(moveAxisOrder(len(shape), []int{0}, []int{ax})), nil
}

// promote raises every array to at least n dimensions.
func promote[T any](arrays []*Array[T], n int) ([]*Array[T], error) {
	if len(arrays) == 0 {
		return nil, paramError("arrays", "at least one array required")
	}
	out := make([]*Array[T], len(arrays))
	for i, a := range arrays {
		p, err := a.AtLeast(n)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// VStack stacks arrays vertically (row-wise). 1-D inputs become rows.
func VStack[T any](arrays []*Array[T]) (*Array[T], error) {
	promoted, err := promote(arrays, 2)
	if err != nil {
		return nil, err
	}
	return ConcatenateAlong(promoted, 0)
}

// RowStack is an alias of VStack.
func RowStack[T any](arrays []*Array[T]) (*Array[T], error) {
	return VStack(arrays)
}

// HStack stacks arrays horizontally (column-wise). 1-D inputs are joined
// end to end; higher ranks are joined along axis 1.
func HStack[T any](arrays []*Array[T]) (*Array[T], error) {
	promoted, err := promote(arrays, 1)
	if err != nil {
		return nil, err
	}
	if len(promoted[0].shape) == 1 {
		return ConcatenateAlong(promoted, 0)
	}
	return ConcatenateAlong(promoted, 1)
}

// DStack stacks arrays along the third axis. 1-D and 2-D inputs are
// promoted to 3-D first.
func DStack[T any](arrays []*Array[T]) (*Array[T], error) {
	promoted, err := promote(arrays, 3)
	if err != nil {
		return nil, err
	}
	return ConcatenateAlong(promoted, 2)
}

// ColumnStack stacks 1-D arrays as columns into a 2-D array. 2-D inputs
// are stacked as they are. Each output row is built by interleaving the
// matching row of every input.
func ColumnStack[T any](arrays []*Array[T]) (*Array[T], error) {
	if len(arrays) == 0 {
		return nil, paramError("arrays", "at least one array required")
	}

	cols := make([]*Array[T], len(arrays))
	for i, a := range arrays {
		switch len(a.shape) {
		case 0:
			cols[i] = wrap(a.Elements(), Shape{1, 1})
		case 1:
			cols[i] = wrap(a.Elements(), Shape{a.shape[0], 1})
		case 2:
			cols[i] = a
		default:
			return nil, unsupportedDimension("column_stack", len(a.shape), "at most 2-D")
		}
	}

	rows := cols[0].shape[0]
	width := 0
	for i, c := range cols {
		if c.shape[0] != rows {
			return nil, paramError("arrays", "array %d has %d rows, want %d", i, c.shape[0], rows)
		}
		width += c.shape[1]
	}

	out := make([]T, 0, rows*width)
	for r := 0; r < rows; r++ {
		for _, c := range cols {
			w := c.shape[1]
			out = append(out, c.elements[r*w:(r+1)*w]...)
		}
	}
	return wrap(out, Shape{rows, width}), nil
}

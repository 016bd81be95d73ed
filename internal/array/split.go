package array

// ArraySplit divides the array into parts sub-arrays along axis.
//
// The axis need not divide evenly: with n = shape[axis], the first
// n % parts pieces get n/parts + 1 slices and the rest get n/parts.
//
// Example:
//
//	a := array.Flat([]int{1, 2, 3, 4, 5, 6, 7})
//	parts, _ := a.ArraySplit(3, 0) // [1 2 3] [4 5] [6 7]
func (a *Array[T]) ArraySplit(parts, axis int) ([]*Array[T], error) {
	if parts <= 0 {
		return nil, paramError("parts", "must be positive, got %d", parts)
	}
	ax, err := checkAxis(axis, len(a.shape))
	if err != nil {
		return nil, err
	}

	n := a.shape[ax]
	base, rem := n/parts, n%parts
	sizes := make([]int, parts)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return a.splitSizes(sizes, ax), nil
}

// Split divides the array into parts equal sub-arrays along axis.
// The axis length must be divisible by parts.
func (a *Array[T]) Split(parts, axis int) ([]*Array[T], error) {
	if parts <= 0 {
		return nil, paramError("parts", "must be positive, got %d", parts)
	}
	ax, err := checkAxis(axis, len(a.shape))
	if err != nil {
		return nil, err
	}
	if a.shape[ax]%parts != 0 {
		return nil, paramError("parts", "axis %d of size %d does not divide into %d equal parts", ax, a.shape[ax], parts)
	}
	return a.ArraySplit(parts, ax)
}

// SplitAxis splits the array into one piece per slice along axis.
func (a *Array[T]) SplitAxis(axis int) ([]*Array[T], error) {
	ax, err := checkAxis(axis, len(a.shape))
	if err != nil {
		return nil, err
	}
	return a.ArraySplit(a.shape[ax], ax)
}

// HSplit splits horizontally: along axis 1, or axis 0 for 1-D arrays.
func (a *Array[T]) HSplit(parts int) ([]*Array[T], error) {
	switch len(a.shape) {
	case 0:
		return nil, unsupportedDimension("hsplit", 0, "at least 1-D")
	case 1:
		return a.Split(parts, 0)
	default:
		return a.Split(parts, 1)
	}
}

// VSplit splits vertically along axis 0. Requires at least 2-D.
func (a *Array[T]) VSplit(parts int) ([]*Array[T], error) {
	if len(a.shape) < 2 {
		return nil, unsupportedDimension("vsplit", len(a.shape), "at least 2-D")
	}
	return a.Split(parts, 0)
}

// DSplit splits along the depth axis 2. Requires at least 3-D.
func (a *Array[T]) DSplit(parts int) ([]*Array[T], error) {
	if len(a.shape) < 3 {
		return nil, unsupportedDimension("dsplit", len(a.shape), "at least 3-D")
	}
	return a.Split(parts, 2)
}

// splitSizes cuts the array along a validated axis into consecutive pieces
// of the given sizes, which must sum to the axis length. The axis is rolled
// to the front so that each piece is a contiguous run of the buffer, then
// each piece is rolled back.
func (a *Array[T]) splitSizes(sizes []int, ax int) []*Array[T] {
	ndim := len(a.shape)
	moved := a
	if ax != 0 {
		moved = a.permute(moveAxisOrder(ndim, []int{ax}, []int{0}))
	}
	back := moveAxisOrder(ndim, []int{0}, []int{ax})

	rowLen := moved.shape[1:].NumElements()
	out := make([]*Array[T], len(sizes))
	offset := 0
	for i, size := range sizes {
		data := make([]T, size*rowLen)
		copy(data, moved.elements[offset*rowLen:])
		piece := wrap(data, moved.shape.withAxis(0, size))
		if ax != 0 {
			piece = piece.permute(back)
		}
		out[i] = piece
		offset += size
	}
	return out
}

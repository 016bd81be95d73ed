package array

// ForEach calls fn for every element in row-major order.
func (a *Array[T]) ForEach(fn func(T)) {
	for _, v := range a.elements {
		fn(v)
	}
}

// ForEachIndexed calls fn with the coordinate and value of every element.
// The coordinate slice is reused between calls and must not be retained.
func (a *Array[T]) ForEachIndexed(fn func(coord []int, v T)) {
	if len(a.elements) == 0 {
		return
	}
	coord := make([]int, len(a.shape))
	for _, v := range a.elements {
		fn(coord, v)
		nextCoord(coord, a.shape)
	}
}

// Map applies fn to every element and returns an array of the same shape.
func (a *Array[T]) Map(fn func(T) T) *Array[T] {
	return MapTo(a, fn)
}

// Filter returns a 1-D array of the elements for which keep returns true.
func (a *Array[T]) Filter(keep func(T) bool) *Array[T] {
	out := make([]T, 0, len(a.elements))
	for _, v := range a.elements {
		if keep(v) {
			out = append(out, v)
		}
	}
	return wrap(out, Shape{len(out)})
}

// MapTo applies fn to every element, possibly changing the element type.
//
// Example:
//
//	a := array.Flat([]int{1, 2, 3})
//	s := array.MapTo(a, strconv.Itoa) // ["1" "2" "3"]
func MapTo[T, U any](a *Array[T], fn func(T) U) *Array[U] {
	out := make([]U, len(a.elements))
	for i, v := range a.elements {
		out[i] = fn(v)
	}
	return wrap(out, a.shape.Clone())
}

// FilterMap applies fn to every element and keeps the results reported as ok.
// The result is always 1-D.
func FilterMap[T, U any](a *Array[T], fn func(T) (U, bool)) *Array[U] {
	out := make([]U, 0, len(a.elements))
	for _, v := range a.elements {
		if u, ok := fn(v); ok {
			out = append(out, u)
		}
	}
	return wrap(out, Shape{len(out)})
}

// Fold reduces all elements to a single value in row-major order.
func Fold[T, A any](a *Array[T], init A, fn func(acc A, v T) A) A {
	acc := init
	for _, v := range a.elements {
		acc = fn(acc, v)
	}
	return acc
}

// Zip pairs the elements of two arrays of identical shape.
// Use Broadcast to pair arrays of different but compatible shapes.
func Zip[T, U any](a *Array[T], b *Array[U]) (*Array[Pair[T, U]], error) {
	if !a.shape.Equal(b.shape) {
		return nil, mustBeEqual("zip: shapes", a.shape, b.shape)
	}
	out := make([]Pair[T, U], len(a.elements))
	for i := range out {
		out[i] = Pair[T, U]{First: a.elements[i], Second: b.elements[i]}
	}
	return wrap(out, a.shape.Clone()), nil
}

package array

// Result carries an array or the first error of a chain of operations.
//
// Every method is a no-op once an error has been recorded, so a pipeline
// can be written without checking errors between steps:
//
//	out, err := array.Try(a).
//	    Reshape(array.Shape{2, 4}).
//	    Transpose().
//	    InsertAlong([]int{0}, array.Single(0), 0).
//	    Unwrap()
type Result[T any] struct {
	array *Array[T]
	err   error
}

// Try starts a chain from an array.
func Try[T any](a *Array[T]) Result[T] {
	return Result[T]{array: a}
}

// Wrap starts a chain from the return values of a fallible call.
func Wrap[T any](a *Array[T], err error) Result[T] {
	return Result[T]{array: a, err: err}
}

// Unwrap returns the array and the first error of the chain.
func (r Result[T]) Unwrap() (*Array[T], error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.array, nil
}

// Must returns the array, panicking if the chain failed.
func (r Result[T]) Must() *Array[T] {
	if r.err != nil {
		panic(r.err)
	}
	return r.array
}

// Err returns the first error of the chain, if any.
func (r Result[T]) Err() error {
	return r.err
}

// Then applies fn unless the chain has already failed. It covers
// operations that are package functions rather than methods, such as
// Unique or TrimZeros.
func (r Result[T]) Then(fn func(*Array[T]) (*Array[T], error)) Result[T] {
	if r.err != nil {
		return r
	}
	return Wrap(fn(r.array))
}

func (r Result[T]) thenOK(fn func(*Array[T]) *Array[T]) Result[T] {
	if r.err != nil {
		return r
	}
	return Try(fn(r.array))
}

// BroadcastTo see Array.BroadcastTo.
func (r Result[T]) BroadcastTo(shape Shape) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.BroadcastTo(shape) })
}

// Transpose see Array.Transpose.
func (r Result[T]) Transpose(axes ...int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.Transpose(axes...) })
}

// MoveAxis see Array.MoveAxis.
func (r Result[T]) MoveAxis(source, destination []int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.MoveAxis(source, destination) })
}

// RollAxis see Array.RollAxis.
func (r Result[T]) RollAxis(axis, start int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.RollAxis(axis, start) })
}

// SwapAxes see Array.SwapAxes.
func (r Result[T]) SwapAxes(axis1, axis2 int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.SwapAxes(axis1, axis2) })
}

// ExpandDims see Array.ExpandDims.
func (r Result[T]) ExpandDims(axes ...int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.ExpandDims(axes...) })
}

// Squeeze see Array.Squeeze.
func (r Result[T]) Squeeze(axes ...int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.Squeeze(axes...) })
}

// Flip see Array.Flip.
func (r Result[T]) Flip(axes ...int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.Flip(axes...) })
}

// FlipUD see Array.FlipUD.
func (r Result[T]) FlipUD() Result[T] {
	return r.Then((*Array[T]).FlipUD)
}

// FlipLR see Array.FlipLR.
func (r Result[T]) FlipLR() Result[T] {
	return r.Then((*Array[T]).FlipLR)
}

// Roll see Array.Roll.
func (r Result[T]) Roll(shift int) Result[T] {
	return r.thenOK(func(a *Array[T]) *Array[T] { return a.Roll(shift) })
}

// RollAlong see Array.RollAlong.
func (r Result[T]) RollAlong(shifts, axes []int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.RollAlong(shifts, axes) })
}

// Rot90 see Array.Rot90.
func (r Result[T]) Rot90(k int, axes ...int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.Rot90(k, axes...) })
}

// Reshape see Array.Reshape.
func (r Result[T]) Reshape(shape Shape) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.Reshape(shape) })
}

// Resize see Array.Resize.
func (r Result[T]) Resize(shape Shape) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.Resize(shape) })
}

// Ravel see Array.Ravel.
func (r Result[T]) Ravel() Result[T] {
	return r.thenOK((*Array[T]).Ravel)
}

// Insert see Array.Insert.
func (r Result[T]) Insert(indices []int, values *Array[T]) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.Insert(indices, values) })
}

// InsertAlong see Array.InsertAlong.
func (r Result[T]) InsertAlong(indices []int, values *Array[T], axis int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.InsertAlong(indices, values, axis) })
}

// Delete see Array.Delete.
func (r Result[T]) Delete(indices ...int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.Delete(indices...) })
}

// DeleteAlong see Array.DeleteAlong.
func (r Result[T]) DeleteAlong(indices []int, axis int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.DeleteAlong(indices, axis) })
}

// Append see Array.Append.
func (r Result[T]) Append(values *Array[T]) Result[T] {
	return r.thenOK(func(a *Array[T]) *Array[T] { return a.Append(values) })
}

// AppendAlong see Array.AppendAlong.
func (r Result[T]) AppendAlong(values *Array[T], axis int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.AppendAlong(values, axis) })
}

// AtLeast see Array.AtLeast.
func (r Result[T]) AtLeast(n int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.AtLeast(n) })
}

// Repeat see Array.Repeat.
func (r Result[T]) Repeat(n int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.Repeat(n) })
}

// RepeatAlong see Array.RepeatAlong.
func (r Result[T]) RepeatAlong(n, axis int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.RepeatAlong(n, axis) })
}

// Tile see Array.Tile.
func (r Result[T]) Tile(reps ...int) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.Tile(reps...) })
}

// Map see Array.Map.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	return r.thenOK(func(a *Array[T]) *Array[T] { return a.Map(fn) })
}

// ApplyAlongAxis see Array.ApplyAlongAxis.
func (r Result[T]) ApplyAlongAxis(axis int, fn func(*Array[T]) (*Array[T], error)) Result[T] {
	return r.Then(func(a *Array[T]) (*Array[T], error) { return a.ApplyAlongAxis(axis, fn) })
}

// ArraySplit ends the chain by splitting; see Array.ArraySplit.
func (r Result[T]) ArraySplit(parts, axis int) ([]*Array[T], error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.array.ArraySplit(parts, axis)
}

// Split ends the chain by splitting; see Array.Split.
func (r Result[T]) Split(parts, axis int) ([]*Array[T], error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.array.Split(parts, axis)
}

// SplitAxis ends the chain by splitting; see Array.SplitAxis.
func (r Result[T]) SplitAxis(axis int) ([]*Array[T], error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.array.SplitAxis(axis)
}

// HSplit ends the chain by splitting; see Array.HSplit.
func (r Result[T]) HSplit(parts int) ([]*Array[T], error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.array.HSplit(parts)
}

// VSplit ends the chain by splitting; see Array.VSplit.
func (r Result[T]) VSplit(parts int) ([]*Array[T], error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.array.VSplit(parts)
}

// DSplit ends the chain by splitting; see Array.DSplit.
func (r Result[T]) DSplit(parts int) ([]*Array[T], error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.array.DSplit(parts)
}

package array

import (
	"fmt"
)

// ZipWith combines two arrays elementwise after broadcasting them to their
// common shape. It reports ErrBroadcastShapeMismatch instead of panicking.
func ZipWith[T, U, V any](a *Array[T], b *Array[U], fn func(T, U) V) (*Array[V], error) {
	pairs, err := BroadcastPairs(a, b)
	if err != nil {
		return nil, err
	}
	return MapTo(pairs, func(p Pair[T, U]) V { return fn(p.First, p.Second) }), nil
}

// Add returns a + b elementwise with broadcasting.
// Like the arithmetic operators it stands in for, it panics on incompatible shapes.
func Add[T Numeric](a, b *Array[T]) *Array[T] {
	return mustZip("add", a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise with broadcasting. Panics on incompatible shapes.
func Sub[T Numeric](a, b *Array[T]) *Array[T] {
	return mustZip("sub", a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b elementwise with broadcasting. Panics on incompatible shapes.
func Mul[T Numeric](a, b *Array[T]) *Array[T] {
	return mustZip("mul", a, b, func(x, y T) T { return x * y })
}

// Div returns a / b elementwise with broadcasting. Panics on incompatible
// shapes, and on integer division by zero.
func Div[T Numeric](a, b *Array[T]) *Array[T] {
	return mustZip("div", a, b, func(x, y T) T { return x / y })
}

func mustZip[T any](op string, a, b *Array[T], fn func(T, T) T) *Array[T] {
	out, err := ZipWith(a, b, fn)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	return out
}

// Package array provides the n-dimensional array engine for the ndarray module.
package array

// Integer is a constraint for the signed and unsigned integer element kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is a constraint for the floating-point element kinds.
type Float interface {
	~float32 | ~float64
}

// Numeric is a constraint for element types that support arithmetic.
// It is used by constructors that need a one value (Ones, Eye, Arange)
// and by the elementwise operators.
type Numeric interface {
	Integer | Float
}

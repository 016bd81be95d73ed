package array

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for every failure kind the engine reports.
// Operations wrap them with context; callers match with errors.Is.
var (
	// ErrShapeMismatch is returned when a shape does not describe the number
	// of elements supplied (or held) by an array.
	ErrShapeMismatch = errors.New("array: shape must match values length")

	// ErrBroadcastShapeMismatch is returned when two shapes cannot be broadcast together.
	ErrBroadcastShapeMismatch = errors.New("array: shapes cannot be broadcast together")

	// ErrAxisOutOfBounds is returned when an axis is outside [-ndim, ndim).
	ErrAxisOutOfBounds = errors.New("array: axis out of bounds")

	// ErrOutOfBounds is returned when an element index or coordinate is out of range.
	ErrOutOfBounds = errors.New("array: index out of bounds")

	// ErrParameter is the target of every *ParameterError.
	ErrParameter = errors.New("array: invalid parameter")

	// ErrUnsupportedDimension is returned by rank-restricted operations.
	ErrUnsupportedDimension = errors.New("array: unsupported dimension")

	// ErrMustBeUnique is returned when a list must not contain duplicates.
	ErrMustBeUnique = errors.New("array: values must be unique")

	// ErrMustBeEqual is returned when two values are required to be equal.
	ErrMustBeEqual = errors.New("array: values must be equal")

	// ErrMustBeAtLeast is returned when a value is below its lower bound.
	ErrMustBeAtLeast = errors.New("array: value is below the minimum")

	// ErrMustBeOneOf is returned when a value is not among the accepted ones.
	ErrMustBeOneOf = errors.New("array: value is not one of the accepted values")

	// ErrSqueezeAxis is returned when squeezing an axis whose size is not 1.
	ErrSqueezeAxis = errors.New("array: cannot squeeze axis with size other than 1")
)

// ParameterError names the offending parameter of a failed call.
type ParameterError struct {
	Param   string // Name of the parameter (e.g. "parts", "axis").
	Message string // What is wrong with it.
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("array: parameter %q: %s", e.Param, e.Message)
}

// Unwrap makes errors.Is(err, ErrParameter) hold.
func (e *ParameterError) Unwrap() error {
	return ErrParameter
}

func paramError(param, format string, args ...any) error {
	return errors.WithStack(&ParameterError{Param: param, Message: fmt.Sprintf(format, args...)})
}

func unsupportedDimension(op string, ndim int, want string) error {
	return errors.Wrapf(ErrUnsupportedDimension, "%s: got %d-D array, want %s", op, ndim, want)
}

func mustBeEqual(what string, got, want any) error {
	return errors.Wrapf(ErrMustBeEqual, "%s: %v != %v", what, got, want)
}

func mustBeAtLeast(what string, got, minimum int) error {
	return errors.Wrapf(ErrMustBeAtLeast, "%s: %d < %d", what, got, minimum)
}

func mustBeOneOf(what string, got any, accepted ...any) error {
	return errors.Wrapf(ErrMustBeOneOf, "%s: %v not in %v", what, got, accepted)
}

func mustBeUnique(what string, values []int) error {
	return errors.Wrapf(ErrMustBeUnique, "%s: %v", what, values)
}

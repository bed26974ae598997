package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when a point or query does not have
	// exactly as many coordinates as the tree has dimensions.
	ErrDimensionMismatch = errors.New("kdtree: dimension mismatch")

	// ErrLengthMismatch is returned when the points and payloads given to New
	// differ in length.
	ErrLengthMismatch = errors.New("kdtree: points and payloads length mismatch")

	// ErrInvalidArgument is returned for out-of-range query arguments such as
	// k < 1 or a negative radius.
	ErrInvalidArgument = errors.New("kdtree: invalid argument")

	// ErrInvalidConfig is returned by New when the Config cannot be used.
	ErrInvalidConfig = errors.New("kdtree: invalid config")
)

// DimensionError describes which point had the wrong number of coordinates.
// Index is the position in the input slice, or -1 for a query point.
//
// It matches ErrDimensionMismatch under errors.Is.
type DimensionError struct {
	Index    int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: query has %d coordinates, want %d", ErrDimensionMismatch, e.Actual, e.Expected)
	}
	return fmt.Sprintf("%v: point %d has %d coordinates, want %d", ErrDimensionMismatch, e.Index, e.Actual, e.Expected)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// checkQuery validates a query point against the tree dimensionality.
func checkQuery[T Number](query []T, dims int) error {
	if len(query) != dims {
		return &DimensionError{Index: -1, Expected: dims, Actual: len(query)}
	}
	return nil
}

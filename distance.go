package kdtree

import (
	"fmt"
	"math"
)

// DistanceMetric measures the distance between two points of equal
// dimensionality. Search pruning relies on the metric being coordinate
// separable: moving a point closer to the query along a single axis never
// increases the distance.
//
// Radius maps a radius given in coordinate units into the metric's own
// distance space, so radial searches can compare it with Distance directly
// (for example r² for squared Euclidean).
type DistanceMetric[T Number] interface {
	Distance(a, b []T) float64
	Radius(r float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
// Radius is the identity.
type DistanceFunc[T Number] func(a, b []T) float64

func (f DistanceFunc[T]) Distance(a, b []T) float64 { return f(a, b) }
func (f DistanceFunc[T]) Radius(r float64) float64  { return r }

// diff returns a[i]-b[i] as a float64. Converting first keeps unsigned
// coordinates from wrapping.
func diff[T Number](a, b T) float64 {
	return float64(a) - float64(b)
}

// SquaredEuclideanMetric computes the squared Euclidean (L2²) distance.
// It ranks neighbors identically to EuclideanMetric without the sqrt.
type SquaredEuclideanMetric[T Number] struct{}

func (SquaredEuclideanMetric[T]) Distance(a, b []T) float64 {
	return sumOfSquares(a, b)
}

func (SquaredEuclideanMetric[T]) Radius(r float64) float64 { return r * r }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric[T Number] struct{}

func (EuclideanMetric[T]) Distance(a, b []T) float64 {
	return math.Sqrt(sumOfSquares(a, b))
}

func (EuclideanMetric[T]) Radius(r float64) float64 { return r }

func sumOfSquares[T Number](a, b []T) float64 {
	var sum float64
	for i := range a {
		d := diff(a[i], b[i])
		sum += d * d
	}
	return sum
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric[T Number] struct{}

func (ManhattanMetric[T]) Distance(a, b []T) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(diff(a[i], b[i]))
	}
	return sum
}

func (ManhattanMetric[T]) Radius(r float64) float64 { return r }

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric[T Number] struct{}

func (ChebyshevMetric[T]) Distance(a, b []T) float64 {
	var maxVal float64
	for i := range a {
		if v := math.Abs(diff(a[i], b[i])); v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

func (ChebyshevMetric[T]) Radius(r float64) float64 { return r }

// metricValidator is implemented by metrics whose parameters can be
// checked when a tree is built.
type metricValidator interface {
	validate() error
}

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1: New rejects smaller values, and Distance panics on them.
// Distance returns sum(|a[i]-b[i]|^P) without the final root, so Radius
// raises r to the P-th power.
type MinkowskiMetric[T Number] struct {
	P float64
}

func (m MinkowskiMetric[T]) Distance(a, b []T) float64 {
	if !(m.P >= 1) {
		panic("MinkowskiMetric: P must be >= 1")
	}
	var sum float64
	for i := range a {
		sum += math.Pow(math.Abs(diff(a[i], b[i])), m.P)
	}
	return sum
}

func (m MinkowskiMetric[T]) Radius(r float64) float64 { return math.Pow(r, m.P) }

func (m MinkowskiMetric[T]) validate() error {
	if !(m.P >= 1) {
		return fmt.Errorf("%w: MinkowskiMetric P must be >= 1, got %v", ErrInvalidConfig, m.P)
	}
	return nil
}

package kdtree

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Tree is a static KD-tree over points of type []T carrying payloads of type V.
//
// The tree is stored as a complete binary tree in array form:
//   - node i has children at 2*i+1 and 2*i+2
//   - slots of the complete shape with no real point hold a sentinel whose
//     coordinates all equal the upper bound
//   - the split axis of a node at depth d is d mod Dimensions()
//
// A Tree is immutable once built. Any number of goroutines may query it
// concurrently.
type Tree[T Number, V any] struct {
	dims     int
	n        int // number of real points
	height   int
	metric   DistanceMetric[T]
	points   [][]T // tree order; len == size
	payloads []V   // tree order; len == size
	occupied *bitset.BitSet
	sentinel []T
	lower    []T
	upper    []T
}

// New builds a tree from points and their payloads. payloads[i] belongs to
// points[i]. The tree keeps its own copy of every coordinate.
//
// An empty point set is valid and yields a tree that answers every query
// with an empty result.
func New[T Number, V any](points [][]T, payloads []V, cfg Config[T]) (*Tree[T, V], error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if len(points) != len(payloads) {
		return nil, fmt.Errorf("%w: %d points, %d payloads", ErrLengthMismatch, len(points), len(payloads))
	}
	for i, p := range points {
		if len(p) != cfg.Dimensions {
			return nil, &DimensionError{Index: i, Expected: cfg.Dimensions, Actual: len(p)}
		}
	}

	n := len(points)
	size, height := completeTreeSize(n)
	t := &Tree[T, V]{
		dims:     cfg.Dimensions,
		n:        n,
		height:   height,
		metric:   cfg.Metric,
		points:   make([][]T, size),
		payloads: make([]V, size),
		occupied: bitset.New(uint(size)),
		sentinel: slices.Clone(cfg.UpperBound),
		lower:    slices.Clone(cfg.LowerBound),
		upper:    slices.Clone(cfg.UpperBound),
	}
	for i := range t.points {
		t.points[i] = t.sentinel
	}

	// Copy coordinates and build identity index array.
	dataCopy := make([][]T, n)
	order := make([]int, n)
	for i, p := range points {
		dataCopy[i] = slices.Clone(p)
		order[i] = i
	}

	if n > 0 {
		b := builder[T, V]{tree: t, data: dataCopy, payloads: payloads, order: order}
		b.buildNode(0, 0, 0, n)
	}

	cfg.Logger.Debug("kdtree: built",
		slog.Int("points", n),
		slog.Int("dimensions", t.dims),
		slog.Int("slots", size),
		slog.Int("height", height),
	)
	return t, nil
}

type builder[T Number, V any] struct {
	tree     *Tree[T, V]
	data     [][]T
	payloads []V
	order    []int // permutation of input indices, partitioned in place
}

// buildNode places the median of order[start:end] along the axis for depth
// at slot nodeID, then recurses into the halves on either side of it.
func (b *builder[T, V]) buildNode(nodeID, depth, start, end int) {
	if start >= end {
		return // slot keeps its sentinel
	}

	axis := depth % b.tree.dims
	mid := start + (end-start)/2
	selectNth(b.data, b.order, start, end, mid, axis)

	src := b.order[mid]
	b.tree.points[nodeID] = b.data[src]
	b.tree.payloads[nodeID] = b.payloads[src]
	b.tree.occupied.Set(uint(nodeID))

	b.buildNode(LeftChildIndex(nodeID), depth+1, start, mid)
	b.buildNode(RightChildIndex(nodeID), depth+1, mid+1, end)
}

// isNode reports whether slot i exists and holds a real point.
func (t *Tree[T, V]) isNode(i int) bool {
	return i < len(t.points) && t.occupied.Test(uint(i))
}

// Len returns the number of real points in the tree.
func (t *Tree[T, V]) Len() int { return t.n }

// Dimensions returns the number of coordinates per point.
func (t *Tree[T, V]) Dimensions() int { return t.dims }

// Size returns the number of array slots, sentinels included.
func (t *Tree[T, V]) Size() int { return len(t.points) }

// Height returns the number of levels in the complete tree shape.
func (t *Tree[T, V]) Height() int { return t.height }

// Metric returns the distance metric the tree was built with.
func (t *Tree[T, V]) Metric() DistanceMetric[T] { return t.metric }

// Bounds returns copies of the lower and upper coordinate bounds.
func (t *Tree[T, V]) Bounds() (lower, upper []T) {
	return slices.Clone(t.lower), slices.Clone(t.upper)
}

// Points returns the internal point array in tree order, sentinels included.
// The returned slices must not be modified.
func (t *Tree[T, V]) Points() [][]T { return t.points }

// Payloads returns the internal payload array in tree order. Sentinel slots
// hold the zero V. The returned slice must not be modified.
func (t *Tree[T, V]) Payloads() []V { return t.payloads }

// IsSentinel reports whether slot i is padding rather than a real point.
// Indices outside [0, Size()) are reported as sentinels.
func (t *Tree[T, V]) IsSentinel(i int) bool {
	return i < 0 || !t.isNode(i)
}

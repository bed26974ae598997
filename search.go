package kdtree

import (
	"fmt"
	"math"
	"slices"
)

// SkipFunc excludes a point from query results when it returns true. The
// point's subtree is still searched. The point slice must not be modified.
type SkipFunc[T Number, V any] func(point []T, payload V) bool

// Neighbor is a single query result. Point aliases the tree's storage and
// must not be modified. Distance is in the metric's distance space.
type Neighbor[T Number, V any] struct {
	Point    []T
	Payload  V
	Distance float64
}

// NearestNeighbors returns the k points closest to query, nearest first.
// Fewer than k are returned when the tree holds fewer points.
func (t *Tree[T, V]) NearestNeighbors(query []T, k int) ([]Neighbor[T, V], error) {
	return t.NearestNeighborsFunc(query, k, nil)
}

// NearestNeighborsFunc is like NearestNeighbors but leaves out every point
// for which skip returns true. A nil skip excludes nothing.
func (t *Tree[T, V]) NearestNeighborsFunc(query []T, k int, skip SkipFunc[T, V]) ([]Neighbor[T, V], error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be >= 1, got %d", ErrInvalidArgument, k)
	}
	if err := checkQuery(query, t.dims); err != nil {
		return nil, err
	}

	s := t.newSearch(query, skip)
	s.best = NewBoundedPriorityList[int, float64](max(1, min(k, t.n)), true)
	s.knn(0, 0)

	out := make([]Neighbor[T, V], s.best.Len())
	for i := range out {
		out[i] = t.neighbor(s.best.At(i), s.best.PriorityAt(i))
	}
	return out, nil
}

// RadialSearch returns every point within radius of query, in tree
// traversal order. radius is in coordinate units and passed through the
// metric's Radius before comparison. Sort the result by Distance if order
// matters.
func (t *Tree[T, V]) RadialSearch(query []T, radius float64) ([]Neighbor[T, V], error) {
	return t.RadialSearchFunc(query, radius, nil)
}

// RadialSearchFunc is like RadialSearch but leaves out every point for which
// skip returns true. A nil skip excludes nothing.
func (t *Tree[T, V]) RadialSearchFunc(query []T, radius float64, skip SkipFunc[T, V]) ([]Neighbor[T, V], error) {
	if radius < 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("%w: radius must be >= 0, got %v", ErrInvalidArgument, radius)
	}
	if err := checkQuery(query, t.dims); err != nil {
		return nil, err
	}

	s := t.newSearch(query, skip)
	s.threshold = t.metric.Radius(radius)
	s.radial(0, 0)
	return s.found, nil
}

func (t *Tree[T, V]) neighbor(i int, dist float64) Neighbor[T, V] {
	return Neighbor[T, V]{Point: t.points[i], Payload: t.payloads[i], Distance: dist}
}

// search is the per-query working state. Nothing in it is shared between
// queries.
type search[T Number, V any] struct {
	tree    *Tree[T, V]
	query   []T
	scratch []T // copy of query, one axis at a time overwritten by a split value
	skip    SkipFunc[T, V]

	best *BoundedPriorityList[int, float64] // k-NN

	threshold float64 // radial
	found     []Neighbor[T, V]
}

func (t *Tree[T, V]) newSearch(query []T, skip SkipFunc[T, V]) *search[T, V] {
	return &search[T, V]{
		tree:    t,
		query:   query,
		scratch: slices.Clone(query),
		skip:    skip,
	}
}

// axisDistance returns the metric distance from the query to the splitting
// hyperplane axis = split. It lower-bounds the distance to every point on
// the far side of the plane.
func (s *search[T, V]) axisDistance(axis int, split T) float64 {
	s.scratch[axis] = split
	d := s.tree.metric.Distance(s.query, s.scratch)
	s.scratch[axis] = s.query[axis]
	return d
}

// children returns node i's children ordered by which side of its split
// the query falls on. Ties go left.
func (s *search[T, V]) children(i, axis int) (near, far int) {
	if s.query[axis] <= s.tree.points[i][axis] {
		return LeftChildIndex(i), RightChildIndex(i)
	}
	return RightChildIndex(i), LeftChildIndex(i)
}

func (s *search[T, V]) admitted(i int) bool {
	return s.skip == nil || !s.skip(s.tree.points[i], s.tree.payloads[i])
}

// knn performs a single-tree KNN traversal into s.best.
func (s *search[T, V]) knn(nodeID, depth int) {
	t := s.tree
	if !t.isNode(nodeID) {
		return
	}
	pt := t.points[nodeID]
	if s.admitted(nodeID) {
		s.best.Add(nodeID, t.metric.Distance(s.query, pt))
	}

	axis := depth % t.dims
	near, far := s.children(nodeID, axis)
	s.knn(near, depth+1)

	// Prune far child if its lower bound is no better than the current k-th
	// distance. A NaN on either side never prunes.
	if !s.best.IsFull() {
		s.knn(far, depth+1)
		return
	}
	worst, _ := s.best.Worst()
	if !(s.axisDistance(axis, pt[axis]) >= worst) {
		s.knn(far, depth+1)
	}
}

// radial collects every admitted point within s.threshold into s.found.
func (s *search[T, V]) radial(nodeID, depth int) {
	t := s.tree
	if !t.isNode(nodeID) {
		return
	}
	pt := t.points[nodeID]
	if s.admitted(nodeID) {
		if d := t.metric.Distance(s.query, pt); d <= s.threshold {
			s.found = append(s.found, t.neighbor(nodeID, d))
		}
	}

	axis := depth % t.dims
	near, far := s.children(nodeID, axis)
	s.radial(near, depth+1)
	if !(s.axisDistance(axis, pt[axis]) > s.threshold) {
		s.radial(far, depth+1)
	}
}

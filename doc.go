// Package kdtree implements a static, array-backed KD-tree for exact
// k-nearest-neighbor and radius queries over points with arbitrary payloads.
//
// The tree is laid out as an implicit complete binary tree: node i has its
// children at 2*i+1 and 2*i+2 and no pointers are stored. Construction
// places the median along axis depth mod k at each node using linear-time
// selection; slots of the complete shape that have no point hold a sentinel.
//
// Basic usage:
//
//	cfg := kdtree.DefaultConfig[float64](2) // squared Euclidean
//	tree, err := kdtree.New(points, payloads, cfg)
//	nearest, err := tree.NearestNeighbors(query, 5)
//	// nearest[0] is the closest point, nearest[0].Payload its payload
//	within, err := tree.RadialSearch(query, 10)
//	// within is in traversal order; sort by Distance if needed
//
// # Metrics
//
// Any DistanceMetric works as long as it is coordinate separable, meaning
// the distance to a point across a splitting plane is never less than the
// distance to the plane along its axis. All built-in metrics qualify;
// cosine distance does not. Radius converts a radius in coordinate units
// into the metric's space, so RadialSearch(q, 3) with SquaredEuclideanMetric
// compares distances against 9.
//
// # Concurrency
//
// A Tree is never modified after New returns. Queries allocate their own
// working state, so any number of goroutines may query one tree at once.
package kdtree

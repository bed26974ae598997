package testutil

import (
	"cmp"
	"math/rand"
	"slices"
	"sync"

	"golang.org/x/exp/constraints"
)

// Number mirrors the coordinate constraint of the kdtree package.
type Number interface {
	constraints.Integer | constraints.Float
}

// Match is a single linear-scan result: the index of the point in the
// scanned slice and its distance to the query.
type Match struct {
	Index    int
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformPoints generates num points of the given dimensionality with
// coordinates in [minVal, maxVal). Uses a single backing array.
func (r *RNG) UniformPoints(num, dimensions int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)
	span := maxVal - minVal
	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = minVal + r.rand.Float64()*span
		}
		points[i] = p
	}
	return points
}

// IntPoints generates num integer points with coordinates in [0, n).
// Small n produces many duplicate coordinates.
func (r *RNG) IntPoints(num, dimensions, n int) [][]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]int, num)
	for i := range points {
		p := make([]int, dimensions)
		for j := range p {
			p[j] = r.rand.Intn(n)
		}
		points[i] = p
	}
	return points
}

// LinearKNN returns the k points closest to query by brute force, nearest
// first. Points for which skip returns true are ignored; skip may be nil.
// Ties are broken by index.
func LinearKNN[T Number](points [][]T, query []T, k int, dist func(a, b []T) float64, skip func(i int) bool) []Match {
	matches := scan(points, query, dist, skip, func(float64) bool { return true })
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// LinearRadial returns every point whose distance to query is <= threshold,
// in input order. threshold is in dist's own space.
func LinearRadial[T Number](points [][]T, query []T, threshold float64, dist func(a, b []T) float64, skip func(i int) bool) []Match {
	return scan(points, query, dist, skip, func(d float64) bool { return d <= threshold })
}

func scan[T Number](points [][]T, query []T, dist func(a, b []T) float64, skip func(i int) bool, keep func(float64) bool) []Match {
	matches := make([]Match, 0, len(points))
	for i, p := range points {
		if skip != nil && skip(i) {
			continue
		}
		if d := dist(query, p); keep(d) {
			matches = append(matches, Match{Index: i, Distance: d})
		}
	}
	return matches
}

// Distances returns the Distance field of each match.
func Distances(matches []Match) []float64 {
	out := make([]float64, len(matches))
	for i, m := range matches {
		out[i] = m.Distance
	}
	return out
}

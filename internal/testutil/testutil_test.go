package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.UniformPoints(8, 3, -5, 5)

	require.Len(t, p, 8)
	for _, pt := range p {
		require.Len(t, pt, 3)
		for _, v := range pt {
			assert.GreaterOrEqual(t, v, -5.0)
			assert.Less(t, v, 5.0)
		}
	}
}

func TestUniformPoints_Deterministic(t *testing.T) {
	a := NewRNG(7).UniformPoints(16, 2, 0, 1)
	b := NewRNG(7).UniformPoints(16, 2, 0, 1)
	assert.Equal(t, a, b)
}

func TestIntPoints(t *testing.T) {
	p := NewRNG(1).IntPoints(50, 2, 3)
	require.Len(t, p, 50)
	for _, pt := range p {
		for _, v := range pt {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 3)
		}
	}
}

func TestLinearKNN(t *testing.T) {
	points := [][]float64{{0, 0}, {3, 0}, {1, 0}, {1, 0}}

	got := LinearKNN(points, []float64{0, 0}, 3, sqDist, nil)

	assert.Equal(t, []Match{{0, 0}, {2, 1}, {3, 1}}, got)
}

func TestLinearKNN_Skip(t *testing.T) {
	points := [][]float64{{0, 0}, {3, 0}, {1, 0}}

	got := LinearKNN(points, []float64{0, 0}, 5, sqDist, func(i int) bool { return i == 0 })

	assert.Equal(t, []Match{{2, 1}, {1, 9}}, got)
}

func TestLinearRadial(t *testing.T) {
	points := [][]float64{{0, 0}, {3, 0}, {1, 0}, {0, 2}}

	got := LinearRadial(points, []float64{0, 0}, 4, sqDist, nil)

	assert.Equal(t, []Match{{0, 0}, {2, 1}, {3, 4}}, got)
	assert.Equal(t, []float64{0, 1, 4}, Distances(got))
}

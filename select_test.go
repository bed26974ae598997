package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TrevorS/kdtree/internal/testutil"
)

func TestSelectNth_PartitionsAroundRank(t *testing.T) {
	rng := testutil.NewRNG(17)
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(60)
		points := rng.IntPoints(n, 2, 1+rng.Intn(10))
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		nth := rng.Intn(n)
		axis := trial % 2

		selectNth(points, order, 0, n, nth, axis)

		pivot := points[order[nth]][axis]
		for i := 0; i < nth; i++ {
			assert.LessOrEqual(t, points[order[i]][axis], pivot)
		}
		for i := nth + 1; i < n; i++ {
			assert.GreaterOrEqual(t, points[order[i]][axis], pivot)
		}

		// order stays a permutation.
		seen := make(map[int]bool, n)
		for _, v := range order {
			seen[v] = true
		}
		assert.Len(t, seen, n)
	}
}

func TestSelectNth_SubRange(t *testing.T) {
	points := [][]float64{{9}, {5}, {1}, {7}, {3}, {8}}
	order := []int{0, 1, 2, 3, 4, 5}

	selectNth(points, order, 1, 5, 2, 0)

	assert.Equal(t, 0, order[0], "outside range untouched")
	assert.Equal(t, 5, order[5], "outside range untouched")
	assert.Equal(t, 3.0, points[order[2]][0])
}

func TestMedianOfThree(t *testing.T) {
	for _, tc := range [][4]int{
		{1, 2, 3, 2}, {3, 2, 1, 2}, {2, 3, 1, 2}, {2, 1, 3, 2}, {1, 3, 2, 2}, {3, 1, 2, 2}, {4, 4, 1, 4},
	} {
		assert.Equal(t, tc[3], medianOfThree(tc[0], tc[1], tc[2]), "%v", tc)
	}
}

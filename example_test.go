package kdtree_test

import (
	"fmt"

	"github.com/TrevorS/kdtree"
)

func Example() {
	points := [][]float64{{7, 2}, {5, 4}, {2, 3}, {4, 7}, {9, 6}, {8, 1}}
	names := []string{"Eric", "Is", "A", "Really", "Stubborn", "Ferret"}

	tree, err := kdtree.New(points, names, kdtree.DefaultConfig[float64](2))
	if err != nil {
		panic(err)
	}

	nearest, _ := tree.NearestNeighbors([]float64{6, 3}, 2)
	for _, n := range nearest {
		fmt.Println(n.Payload, n.Point, n.Distance)
	}
	// Output:
	// Eric [7 2] 2
	// Is [5 4] 2
}

func ExampleTree_RadialSearch() {
	points := [][]int{{0, 0}, {1, 1}, {5, 5}, {2, 0}}
	tree, _ := kdtree.New(points, []int{0, 1, 2, 3}, kdtree.DefaultConfig[int](2))

	// Squared Euclidean: radius 2 compares against 4.
	within, _ := tree.RadialSearch([]int{0, 0}, 2)
	fmt.Println(len(within))
	// Output: 3
}

func ExampleNewBoundedPriorityList() {
	bp := kdtree.NewBoundedPriorityList[int, float64](3, true)
	bp.Add(34, 98744.90383)
	bp.Add(23, 67.39030)
	bp.Add(2, 2)
	bp.Add(89, 3)
	fmt.Println(bp.Elements())
	// Output: [2 89 23]
}

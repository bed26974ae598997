// Command kdquery loads a point set into a KD-tree and runs nearest-neighbor
// and radius queries against it.
//
// Examples:
//
//	kdquery --data points.yaml knn --k 3 6,3
//	kdquery --random 10000 --seed 1 radius --r 25 500,500
//	kdquery --random 10000 verify --queries 200 --k 5
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kdquery:", err)
		os.Exit(1)
	}
}

// Package testutil provides testing utilities for kdtree.
//
// This package is intended for use in tests, benchmarks and the kdquery
// verify command. It provides seeded random point generation and
// brute-force linear scans that serve as a correctness oracle.
//
// # Random Points
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(10000, 2, 0, 1000)
//
// # Exact Search (Ground Truth)
//
//	want := testutil.LinearKNN(points, query, k, dist, nil)
//	all := testutil.LinearRadial(points, query, threshold, dist, nil)
package testutil

package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/TrevorS/kdtree/internal/testutil"
)

type verifyOptions struct {
	queries int
	k       int
	radius  float64
	seed    int64
}

// newVerifyCmd checks tree answers against a brute-force linear scan.
func newVerifyCmd(opts *rootOptions) *cobra.Command {
	vo := &verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare tree queries with a linear scan on random query points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, opts, vo)
		},
	}
	f := cmd.Flags()
	f.IntVar(&vo.queries, "queries", 100, "number of random query points")
	f.IntVar(&vo.k, "k", 1, "neighbors per k-NN query")
	f.Float64Var(&vo.radius, "r", 50, "radius for radial queries, in coordinate units")
	f.Int64Var(&vo.seed, "query-seed", 2, "seed for query points")
	return cmd
}

func runVerify(cmd *cobra.Command, opts *rootOptions, vo *verifyOptions) error {
	ds, tree, err := opts.build(cmd)
	if err != nil {
		return err
	}
	log := opts.logger(cmd.ErrOrStderr())
	points, _ := ds.columns()
	metric := tree.Metric()
	queries := testutil.NewRNG(vo.seed).UniformPoints(vo.queries, ds.Dimensions, 0, opts.span)

	// Payloads are indices for random datasets but arbitrary strings for
	// files, so results are compared by distance list (k-NN) and by sorted
	// distance list (radial).
	var knnFailures, radialFailures int
	for qi, q := range queries {
		got, err := tree.NearestNeighbors(q, vo.k)
		if err != nil {
			return err
		}
		want := testutil.LinearKNN(points, q, vo.k, metric.Distance, nil)
		gotDist := make([]float64, len(got))
		for i, n := range got {
			gotDist[i] = n.Distance
		}
		if !slices.Equal(gotDist, testutil.Distances(want)) {
			knnFailures++
			log.Warn("kdquery: k-NN mismatch", slog.Int("query", qi), slog.Any("point", q))
		}

		radial, err := tree.RadialSearch(q, vo.radius)
		if err != nil {
			return err
		}
		wantRadial := testutil.LinearRadial(points, q, metric.Radius(vo.radius), metric.Distance, nil)
		radialDist := make([]float64, len(radial))
		for i, n := range radial {
			radialDist[i] = n.Distance
		}
		wantRadialDist := testutil.Distances(wantRadial)
		slices.Sort(radialDist)
		slices.Sort(wantRadialDist)
		if !slices.Equal(radialDist, wantRadialDist) {
			radialFailures++
			log.Warn("kdquery: radial mismatch", slog.Int("query", qi), slog.Any("point", q))
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "points=%d queries=%d knn_mismatches=%d radial_mismatches=%d\n",
		tree.Len(), len(queries), knnFailures, radialFailures)
	if knnFailures+radialFailures > 0 {
		return fmt.Errorf("%d k-NN and %d radial queries disagree with linear scan", knnFailures, radialFailures)
	}
	return nil
}

package main

import (
	"cmp"
	"slices"

	"github.com/spf13/cobra"

	"github.com/TrevorS/kdtree"
)

func newKNNCmd(opts *rootOptions) *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "knn <x,y,...>",
		Short: "Print the k nearest neighbors of a point, nearest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			_, tree, err := opts.build(cmd)
			if err != nil {
				return err
			}
			ns, err := tree.NearestNeighbors(query, k)
			if err != nil {
				return err
			}
			return opts.printNeighbors(cmd.OutOrStdout(), ns)
		},
	}
	cmd.Flags().IntVar(&k, "k", 1, "number of neighbors")
	return cmd
}

func newRadiusCmd(opts *rootOptions) *cobra.Command {
	var (
		radius float64
		sorted bool
	)
	cmd := &cobra.Command{
		Use:   "radius <x,y,...>",
		Short: "Print every point within a radius of a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			_, tree, err := opts.build(cmd)
			if err != nil {
				return err
			}
			ns, err := tree.RadialSearch(query, radius)
			if err != nil {
				return err
			}
			if sorted {
				slices.SortStableFunc(ns, func(a, b kdtree.Neighbor[float64, string]) int {
					return cmp.Compare(a.Distance, b.Distance)
				})
			}
			return opts.printNeighbors(cmd.OutOrStdout(), ns)
		},
	}
	cmd.Flags().Float64Var(&radius, "r", 1, "radius in coordinate units")
	cmd.Flags().BoolVar(&sorted, "sort", false, "sort results by distance")
	return cmd
}

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/TrevorS/kdtree"
)

type rootOptions struct {
	dataPath string
	random   int
	seed     int64
	span     float64
	dims     int
	metric   string
	json     bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "kdquery",
		Short:         "Query a KD-tree built from a point set",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.dataPath, "data", "", "YAML dataset file")
	f.IntVar(&opts.random, "random", 0, "generate this many random points instead of reading --data")
	f.Int64Var(&opts.seed, "seed", 1, "seed for --random")
	f.Float64Var(&opts.span, "range", 1000, "coordinate range [0, range) for --random")
	f.IntVar(&opts.dims, "dims", 2, "dimensions for --random")
	f.StringVar(&opts.metric, "metric", "sqeuclidean", "distance metric: sqeuclidean, euclidean, manhattan, chebyshev")
	f.BoolVar(&opts.json, "json", false, "print results as JSON")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newKNNCmd(opts), newRadiusCmd(opts), newVerifyCmd(opts))
	return cmd
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *rootOptions) dataset() (*dataset, error) {
	switch {
	case o.dataPath != "" && o.random > 0:
		return nil, errors.New("--data and --random are mutually exclusive")
	case o.dataPath != "":
		return loadDataset(o.dataPath)
	case o.random > 0:
		return randomDataset(o.random, o.dims, o.seed, o.span), nil
	default:
		return nil, errors.New("one of --data or --random is required")
	}
}

// build loads the configured dataset and returns it with its tree.
func (o *rootOptions) build(cmd *cobra.Command) (*dataset, *kdtree.Tree[float64, string], error) {
	ds, err := o.dataset()
	if err != nil {
		return nil, nil, err
	}
	metric, err := metricByName(o.metric)
	if err != nil {
		return nil, nil, err
	}
	log := o.logger(cmd.ErrOrStderr())

	cfg := kdtree.DefaultConfig[float64](ds.Dimensions)
	cfg.Metric = metric
	cfg.Logger = log
	points, payloads := ds.columns()
	tree, err := kdtree.New(points, payloads, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("kdquery: dataset loaded", slog.Int("points", tree.Len()), slog.String("metric", o.metric))
	return ds, tree, nil
}

type resultJSON struct {
	Point    []float64 `json:"point"`
	Payload  string    `json:"payload"`
	Distance float64   `json:"distance"`
}

func (o *rootOptions) printNeighbors(w io.Writer, ns []kdtree.Neighbor[float64, string]) error {
	if o.json {
		out := make([]resultJSON, len(ns))
		for i, n := range ns {
			out[i] = resultJSON{Point: n.Point, Payload: n.Payload, Distance: n.Distance}
		}
		b, err := gojson.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	for _, n := range ns {
		if _, err := fmt.Fprintf(w, "%s\t%v\t%g\n", n.Payload, n.Point, n.Distance); err != nil {
			return err
		}
	}
	return nil
}

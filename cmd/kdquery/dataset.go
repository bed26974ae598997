package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TrevorS/kdtree"
	"github.com/TrevorS/kdtree/internal/testutil"
)

// dataset is the on-disk point set format:
//
//	dimensions: 2
//	points:
//	  - coords: [7, 2]
//	    payload: Eric
type dataset struct {
	Dimensions int            `yaml:"dimensions"`
	Points     []datasetPoint `yaml:"points"`
}

type datasetPoint struct {
	Coords  []float64 `yaml:"coords"`
	Payload string    `yaml:"payload"`
}

func loadDataset(path string) (*dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if ds.Dimensions == 0 && len(ds.Points) > 0 {
		ds.Dimensions = len(ds.Points[0].Coords)
	}
	return &ds, nil
}

// randomDataset generates n uniform points in [0, span) whose payloads are
// their indices.
func randomDataset(n, dims int, seed int64, span float64) *dataset {
	coords := testutil.NewRNG(seed).UniformPoints(n, dims, 0, span)
	ds := &dataset{Dimensions: dims, Points: make([]datasetPoint, n)}
	for i, c := range coords {
		ds.Points[i] = datasetPoint{Coords: c, Payload: strconv.Itoa(i)}
	}
	return ds
}

func (ds *dataset) columns() ([][]float64, []string) {
	points := make([][]float64, len(ds.Points))
	payloads := make([]string, len(ds.Points))
	for i, p := range ds.Points {
		points[i] = p.Coords
		payloads[i] = p.Payload
	}
	return points, payloads
}

func metricByName(name string) (kdtree.DistanceMetric[float64], error) {
	switch name {
	case "sqeuclidean":
		return kdtree.SquaredEuclideanMetric[float64]{}, nil
	case "euclidean":
		return kdtree.EuclideanMetric[float64]{}, nil
	case "manhattan":
		return kdtree.ManhattanMetric[float64]{}, nil
	case "chebyshev":
		return kdtree.ChebyshevMetric[float64]{}, nil
	default:
		return nil, fmt.Errorf("unknown metric %q (want sqeuclidean, euclidean, manhattan or chebyshev)", name)
	}
}

// parsePoint parses a comma-separated coordinate list such as "1.5,2".
func parsePoint(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	p := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q in %q", f, s)
		}
		p[i] = v
	}
	return p, nil
}

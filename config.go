package kdtree

import (
	"fmt"
	"log/slog"
)

// Config controls tree construction.
// Start with [DefaultConfig] and override the fields you need.
type Config[T Number] struct {
	// Dimensions is the number of coordinates of every point. Must be >= 1.
	Dimensions int

	// Metric is the distance function used by every query on the tree.
	// Built-in: SquaredEuclideanMetric, EuclideanMetric, ManhattanMetric,
	// ChebyshevMetric, MinkowskiMetric. Use DistanceFunc to wrap a custom
	// coordinate-separable function. Default: SquaredEuclideanMetric.
	Metric DistanceMetric[T]

	// LowerBound and UpperBound describe the coordinate domain. Sentinel
	// slots are filled with UpperBound. Each must have Dimensions entries and
	// LowerBound[i] <= UpperBound[i]. Default: the minimum and maximum
	// representable values of T.
	LowerBound []T
	UpperBound []T

	// Logger receives construction diagnostics at debug level.
	// Default: a logger that discards everything.
	Logger *slog.Logger
}

// DefaultConfig returns a Config for dims-dimensional points using squared
// Euclidean distance and type-default bounds.
func DefaultConfig[T Number](dims int) Config[T] {
	return Config[T]{
		Dimensions: dims,
		Metric:     SquaredEuclideanMetric[T]{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults[T Number](cfg *Config[T]) {
	if cfg.Metric == nil {
		cfg.Metric = SquaredEuclideanMetric[T]{}
	}
	if cfg.Dimensions > 0 {
		if cfg.LowerBound == nil {
			cfg.LowerBound = filled(cfg.Dimensions, minValue[T]())
		}
		if cfg.UpperBound == nil {
			cfg.UpperBound = filled(cfg.Dimensions, maxValue[T]())
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig[T Number](cfg *Config[T]) error {
	if cfg.Dimensions < 1 {
		return fmt.Errorf("%w: Dimensions must be >= 1, got %d", ErrInvalidConfig, cfg.Dimensions)
	}
	if len(cfg.LowerBound) != cfg.Dimensions {
		return fmt.Errorf("%w: LowerBound has %d coordinates, want %d", ErrInvalidConfig, len(cfg.LowerBound), cfg.Dimensions)
	}
	if len(cfg.UpperBound) != cfg.Dimensions {
		return fmt.Errorf("%w: UpperBound has %d coordinates, want %d", ErrInvalidConfig, len(cfg.UpperBound), cfg.Dimensions)
	}
	for i := range cfg.LowerBound {
		if cfg.LowerBound[i] > cfg.UpperBound[i] {
			return fmt.Errorf("%w: LowerBound[%d] = %v exceeds UpperBound[%d] = %v",
				ErrInvalidConfig, i, cfg.LowerBound[i], i, cfg.UpperBound[i])
		}
	}
	if v, ok := cfg.Metric.(metricValidator); ok {
		if err := v.validate(); err != nil {
			return err
		}
	}
	return nil
}

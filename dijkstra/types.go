// SPDX-License-Identifier: MIT
//
// Package dijkstra defines configuration options and errors for
// single-pair shortest-path search on weighted campus graphs.
package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/go-logr/logr"
)

// Sentinel errors returned (or panicked) by the Dijkstra implementation.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices farther than this from the source are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Ctx              context.Context
	Logger           logr.Logger
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a context checked once per heap pop.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxDistance sets a maximum distance threshold in meters.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with:
//   - Ctx:              context.Background()
//   - Logger:           logr.Discard()
//   - MaxDistance:      +Inf (explore all reachable)
//   - InfEdgeThreshold: +Inf (no edges impassable)
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Logger:           logr.Discard(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

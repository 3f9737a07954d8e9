// SPDX-License-Identifier: MIT
// Package: campusroute/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Later options override earlier ones.

package builder

import (
	"math"

	"github.com/go-logr/logr"
)

// BuilderOption customizes graph construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithPadding sets the half-width, in degrees, of the square whose four
// corners are probed when linking a location to the street network.
// Panics unless deg is positive and finite.
func WithPadding(deg float64) BuilderOption {
	if !(deg > 0) || math.IsInf(deg, 1) {
		panic("builder: WithPadding requires a positive finite value")
	}
	return func(c *builderConfig) {
		c.padding = deg
	}
}

// WithGrowth sets the factor applied to a probe offset each time its nearest
// candidate is the location itself. Panics unless factor > 1.
func WithGrowth(factor float64) BuilderOption {
	if !(factor > 1) || math.IsInf(factor, 1) {
		panic("builder: WithGrowth requires a finite factor > 1")
	}
	return func(c *builderConfig) {
		c.growth = factor
	}
}

// WithMaxRetries bounds how often a probe offset grows before the builder
// falls back to the nearest candidate that is not the location itself.
// Panics if n < 0.
func WithMaxRetries(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithMaxRetries(n < 0)")
	}
	return func(c *builderConfig) {
		c.maxRetries = n
	}
}

// WithCandidates sets how many nearest entries the spatial index returns per
// probe before they are ranked by great-circle distance. Panics if k < 1.
func WithCandidates(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithCandidates(k < 1)")
	}
	return func(c *builderConfig) {
		c.candidates = k
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logr.Logger) BuilderOption {
	return func(c *builderConfig) {
		c.log = l
	}
}

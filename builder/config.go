// SPDX-License-Identifier: MIT
// Package: campusroute/builder
//
// config.go — internal configuration and defaults.
//
// Defaults:
//   • padding     = 0.0001°  (about 11 m of latitude)
//   • growth      = 1.4
//   • maxRetries  = 16
//   • candidates  = 8
//   • log         = logr.Discard()

package builder

import (
	"github.com/go-logr/logr"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	padding    float64
	growth     float64
	maxRetries int
	candidates int
	log        logr.Logger

	// report collects what constructors did; never nil inside BuildGraph.
	report *Report
}

const (
	defaultPadding    = 0.0001
	defaultGrowth     = 1.4
	defaultMaxRetries = 16
	defaultCandidates = 8
)

// newBuilderConfig applies opts over the defaults, in order.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		padding:    defaultPadding,
		growth:     defaultGrowth,
		maxRetries: defaultMaxRetries,
		candidates: defaultCandidates,
		log:        logr.Discard(),
		report:     &Report{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

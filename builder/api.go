// SPDX-License-Identifier: MIT
// Package: campusroute/builder
//
// api.go — public entry points for the builder package.
//
// Contract:
//   • One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg,
//     runs cons in order, validates, freezes.
//   • Build is the standard pipeline: Streets, Locations, LinkLocations,
//     CheckReachability.
//   • Same inputs and options produce identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusroute/core"
	"github.com/katalvlaran/campusroute/locations"
	"github.com/katalvlaran/campusroute/streetnet"
)

// Constructor applies one deterministic mutation to g. Constructors return
// sentinel errors and never panic.
type Constructor func(g *core.Graph, cfg *builderConfig) error

// Link is one location-to-vertex connection made by LinkLocations.
type Link struct {
	Location string  `json:"location"`
	Vertex   string  `json:"vertex"`
	Meters   float64 `json:"meters"`
}

// Report describes a finished build.
type Report struct {
	StreetNodes    int             `json:"street_nodes"`
	StreetSegments int             `json:"street_segments"`
	Locations      int             `json:"locations"`
	Links          []Link          `json:"links"`
	Unreachable    []string        `json:"unreachable,omitempty"`
	Graph          core.GraphStats `json:"graph"`
}

// BuildGraph creates a graph, applies cons in order, validates the result
// and freezes it. Any failure is wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, *Report, error) {
	cfg := newBuilderConfig(bopts...)
	g := core.NewGraph()

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, nil, fmt.Errorf("BuildGraph: %w", err)
	}
	g.Freeze()
	cfg.report.Graph = g.Stats()
	cfg.log.Info("builder: graph ready",
		"vertices", cfg.report.Graph.Vertices, "edges", cfg.report.Graph.Edges,
		"locations", cfg.report.Locations, "links", len(cfg.report.Links))

	return g, cfg.report, nil
}

// Build assembles the walking graph from a street network and a location
// table.
func Build(net *streetnet.Network, tbl *locations.Table, opts ...BuilderOption) (*core.Graph, *Report, error) {
	return BuildGraph(opts,
		Streets(net),
		Locations(tbl),
		LinkLocations(tbl),
		CheckReachability(tbl),
	)
}

// SPDX-License-Identifier: MIT
// Package: campusroute/builder
//
// impl_locations.go — adds named campus locations and wires each one to the
// street network.
//
// Linking:
//   • Four probes sit at the corners of a square of half-width padding
//     around the location.
//   • Each probe takes the nearest indexed vertex. The index holds street
//     nodes and locations alike, so a probe can land on the location itself;
//     its offset then grows by the growth factor and the probe is retried.
//   • The location is connected both ways to each chosen vertex with the
//     great-circle distance between the two as weight.

package builder

import (
	"github.com/katalvlaran/campusroute/core"
	"github.com/katalvlaran/campusroute/dfs"
	"github.com/katalvlaran/campusroute/locations"
)

// Method names for error context.
const (
	MethodLocations         = "Locations"
	MethodLinkLocations     = "LinkLocations"
	MethodCheckReachability = "CheckReachability"
)

// corners are the probe directions as (lon, lat) unit offsets.
var corners = [4][2]float64{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Locations adds one named vertex per table entry, in table order.
// A name equal to an existing vertex id fails with ErrIDCollision.
func Locations(tbl *locations.Table) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if tbl == nil {
			return builderErrorf(MethodLocations, ErrNilInput, "location table")
		}
		for _, l := range tbl.All() {
			if g.HasVertex(l.Name) {
				return builderErrorf(MethodLocations, ErrIDCollision, "%q", l.Name)
			}
			if err := g.AddVertex(l.Name); err != nil {
				return builderErrorf(MethodLocations, err, "%q", l.Name)
			}
			if err := g.SetName(l.Name, l.Name); err != nil {
				return builderErrorf(MethodLocations, err, "%q", l.Name)
			}
			if err := g.SetCoords(l.Name, l.Coords()); err != nil {
				return builderErrorf(MethodLocations, err, "%q", l.Name)
			}
		}
		cfg.report.Locations = tbl.Len()

		return nil
	}
}

// LinkLocations connects every table location to its nearest vertices.
// It must run after Streets and Locations.
func LinkLocations(tbl *locations.Table) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if tbl == nil {
			return builderErrorf(MethodLinkLocations, ErrNilInput, "location table")
		}
		ix := newSpatialIndex(g, cfg.candidates)
		cfg.log.V(1).Info("builder: spatial index ready", "entries", ix.Size())

		for _, l := range tbl.All() {
			at := l.Coords()
			for _, dir := range corners {
				c, err := pick(ix, l.Name, at, dir, cfg)
				if err != nil {
					return builderErrorf(MethodLinkLocations, err, "%q", l.Name)
				}
				if g.HasEdge(l.Name, c.id) {
					continue
				}
				w := Haversine(at, c.at)
				if err = g.Connect(l.Name, c.id, w); err != nil {
					return builderErrorf(MethodLinkLocations, err, "%q→%s", l.Name, c.id)
				}
				cfg.report.Links = append(cfg.report.Links, Link{Location: l.Name, Vertex: c.id, Meters: w})
			}
		}
		cfg.log.V(1).Info("builder: locations linked", "links", len(cfg.report.Links))

		return nil
	}
}

// pick runs one corner probe for the location self at at.
func pick(ix *spatialIndex, self string, at core.Coords, dir [2]float64, cfg *builderConfig) (candidate, error) {
	scale := 1.0
	var last []candidate
	for try := 0; try <= cfg.maxRetries; try++ {
		probe := core.Coords{
			Lat: at.Lat + dir[1]*cfg.padding*scale,
			Lon: at.Lon + dir[0]*cfg.padding*scale,
		}
		last = ix.nearest(probe)
		if len(last) == 0 {
			return candidate{}, ErrNoCandidate
		}
		if last[0].id != self {
			return last[0], nil
		}
		scale *= cfg.growth
	}

	for _, c := range last {
		if c.id != self {
			cfg.log.V(1).Info("builder: probe fell back to second-nearest", "location", self, "vertex", c.id)
			return c, nil
		}
	}

	return candidate{}, ErrNoCandidate
}

// CheckReachability records in the report every location that cannot be
// reached from the first location of the table. It never fails the build;
// unreachable pairs are answered with "no path found" at query time.
func CheckReachability(tbl *locations.Table) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if tbl == nil || tbl.Len() == 0 {
			return nil
		}
		names := tbl.Names()
		reach, err := dfs.Reachable(g, names[0], dfs.WithLogger(cfg.log))
		if err != nil {
			return builderErrorf(MethodCheckReachability, err, "from %q", names[0])
		}
		seen := make(map[string]bool, len(reach))
		for _, id := range reach {
			seen[id] = true
		}
		for _, n := range names {
			if !seen[n] {
				cfg.report.Unreachable = append(cfg.report.Unreachable, n)
			}
		}
		if len(cfg.report.Unreachable) > 0 {
			cfg.log.Info("builder: locations unreachable from the rest of campus",
				"from", names[0], "unreachable", cfg.report.Unreachable)
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: campusroute/builder
//
// impl_streets.go — copies a street network into the graph.
//
// Contract:
//   • Node ids become decimal strings; coordinates are copied.
//   • Parallel segments between the same pair keep the shortest length.
//   • Undirected networks get both directions of every segment.
//   • A named segment labels its target node; later segments win.

package builder

import (
	"math"
	"strconv"

	"github.com/katalvlaran/campusroute/core"
	"github.com/katalvlaran/campusroute/streetnet"
)

// MethodStreets names the Streets constructor in errors.
const MethodStreets = "Streets"

// Streets adds every node and segment of net.
// Complexity: O(V log V + E).
func Streets(net *streetnet.Network) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if net == nil {
			return builderErrorf(MethodStreets, ErrNilInput, "street network")
		}

		ids := net.NodeIDs()
		for _, id := range ids {
			n := net.Nodes[id]
			vid := nodeID(id)
			if err := g.AddVertex(vid); err != nil {
				return builderErrorf(MethodStreets, err, "node %s", vid)
			}
			if err := g.SetCoords(vid, core.Coords{Lat: n.Lat, Lon: n.Lon}); err != nil {
				return builderErrorf(MethodStreets, err, "node %s", vid)
			}
		}

		var segments int
		for _, from := range ids {
			for _, e := range net.Edges[from] {
				if _, ok := net.Nodes[e.To]; !ok {
					return builderErrorf(MethodStreets, ErrDanglingEdge, "%d→%d", e.From, e.To)
				}
				if e.Length < 0 || math.IsNaN(e.Length) || math.IsInf(e.Length, 0) {
					return builderErrorf(MethodStreets, ErrBadLength, "%d→%d length %v", e.From, e.To, e.Length)
				}
				a, b := nodeID(from), nodeID(e.To)
				if err := addShortest(g, a, b, e.Length); err != nil {
					return builderErrorf(MethodStreets, err, "%s→%s", a, b)
				}
				if !net.Directed {
					if err := addShortest(g, b, a, e.Length); err != nil {
						return builderErrorf(MethodStreets, err, "%s→%s", b, a)
					}
				}
				if e.Name != "" {
					if err := g.SetName(b, e.Name); err != nil {
						return builderErrorf(MethodStreets, err, "name %s", b)
					}
				}
				segments++
			}
		}
		// Edges from nodes unknown to net.Nodes are never visited above.
		for from, es := range net.Edges {
			if _, ok := net.Nodes[from]; !ok && len(es) > 0 {
				return builderErrorf(MethodStreets, ErrDanglingEdge, "source %d", from)
			}
		}

		cfg.report.StreetNodes = len(ids)
		cfg.report.StreetSegments = segments
		cfg.log.V(1).Info("builder: streets added", "nodes", len(ids), "segments", segments)

		return nil
	}
}

func nodeID(id int64) string { return strconv.FormatInt(id, 10) }

// addShortest stores from→to unless an equal or shorter entry exists.
func addShortest(g *core.Graph, from, to string, w float64) error {
	if cur, ok := g.Weight(from, to); ok && cur <= w {
		return nil
	}

	return g.AddEdge(from, to, w)
}

// SPDX-License-Identifier: MIT
// Package: campusroute/builder
//
// index.go — R-tree over vertex coordinates for nearest-node lookups.
//
// The tree works in plain (lon, lat) degrees, which distorts distances away
// from the equator. It is only used to shortlist candidates; the final choice
// is made by great-circle distance.

package builder

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/campusroute/core"
)

const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50

	// pointTol turns a point into a degenerate rectangle the tree accepts.
	pointTol = 1e-9
)

// spot is one indexed vertex.
type spot struct {
	id   string
	at   core.Coords
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (s *spot) Bounds() rtreego.Rect { return s.rect }

// candidate is a spot ranked against a probe point.
type candidate struct {
	id   string
	at   core.Coords
	dist float64
}

type spatialIndex struct {
	tree *rtreego.Rtree
	k    int
}

// newSpatialIndex bulk-loads every vertex of g that has coordinates.
func newSpatialIndex(g *core.Graph, k int) *spatialIndex {
	var objs []rtreego.Spatial
	for _, id := range g.Vertices() {
		v, ok := g.Vertex(id)
		if !ok || !v.HasCoords {
			continue
		}
		objs = append(objs, &spot{
			id:   id,
			at:   v.Coords,
			rect: rtreego.Point{v.Coords.Lon, v.Coords.Lat}.ToRect(pointTol),
		})
	}

	return &spatialIndex{
		tree: rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren, objs...),
		k:    k,
	}
}

// Size returns the number of indexed vertices.
func (ix *spatialIndex) Size() int { return ix.tree.Size() }

// nearest returns up to k vertices close to p, ordered by great-circle
// distance and then by id.
func (ix *spatialIndex) nearest(p core.Coords) []candidate {
	found := ix.tree.NearestNeighbors(ix.k, rtreego.Point{p.Lon, p.Lat})
	out := make([]candidate, 0, len(found))
	for _, obj := range found {
		s, ok := obj.(*spot)
		if !ok || s == nil {
			continue
		}
		out = append(out, candidate{id: s.id, at: s.at, dist: Haversine(p, s.at)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].dist != out[j].dist {
			return out[i].dist < out[j].dist
		}
		return out[i].id < out[j].id
	})

	return out
}

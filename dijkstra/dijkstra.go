// SPDX-License-Identifier: MIT
//
// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// campus graphs.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/campusroute/core"
)

// Dijkstra returns the minimum-weight path from source to dest.
//
// Result.Cost is the path length in meters and Result.Weighted is true.
// Missing endpoints yield core.NotFound() and an error wrapping
// core.ErrInvalidEndpoint; an unreachable dest yields core.NotFound() and a
// nil error. Edge weights must be non-negative; the graph builder validates
// this, Dijkstra does not.
//
// Complexity:
//
//   - Time:  O((V + E) log V), less when dest is settled early.
//   - Space: O(V + E) under lazy decrease-key.
func Dijkstra(g *core.Graph, source, dest string, opts ...Option) (core.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := core.CheckEndpoints(g, source, dest); err != nil {
		cfg.Logger.V(1).Info("dijkstra: invalid endpoint", "source", source, "dest", dest)
		return core.NotFound(), err
	}

	r := &runner{
		g:       g,
		options: cfg,
		dest:    dest,
		dist:    map[string]float64{source: 0},
		prev:    make(map[string]string),
	}
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
	cfg.Logger.V(1).Info("dijkstra: search started", "source", source, "dest", dest)

	settled, err := r.process()
	if err != nil {
		return core.NotFound(), err
	}
	if !settled {
		cfg.Logger.V(1).Info("dijkstra: no path", "source", source, "dest", dest, "explored", len(r.dist))
		return core.NotFound(), nil
	}

	path := r.path(source)
	cfg.Logger.V(1).Info("dijkstra: path found", "hops", len(path)-1, "cost", r.dist[dest])

	return core.Result{Found: true, Path: path, Cost: r.dist[dest], Weighted: true}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
// A vertex absent from dist is at +Inf; absent from prev has no predecessor.
type runner struct {
	g       *core.Graph
	options Options
	dest    string
	dist    map[string]float64
	prev    map[string]string
	pq      nodePQ
}

// process pops vertices in order of distance until dest is popped (true) or
// the heap drains (false).
func (r *runner) process() (bool, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// stale entry
		if d > r.distance(u) {
			continue
		}
		if u == r.dest {
			return true, nil
		}
		if err := r.relax(u, d); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax tries to improve every out-neighbor of u, respecting
// InfEdgeThreshold and MaxDistance.
func (r *runner) relax(u string, du float64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		alt := du + nb.Weight
		if alt > r.options.MaxDistance {
			continue
		}
		if alt < r.distance(nb.ID) {
			r.dist[nb.ID] = alt
			r.prev[nb.ID] = u
			heap.Push(&r.pq, &nodeItem{id: nb.ID, dist: alt})
		}
	}

	return nil
}

func (r *runner) distance(id string) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// path walks prev back from dest to source and reverses the result.
func (r *runner) path(source string) []string {
	var rev []string
	for at := r.dest; ; at = r.prev[at] {
		rev = append(rev, at)
		if at == source {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

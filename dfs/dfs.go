// SPDX-License-Identifier: MIT
//
// Package dfs implements depth-first path search on core.Graph.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/campusroute/core"
)

// walker encapsulates state during a single depth-first search.
type walker struct {
	graph   *core.Graph
	opts    Options
	end     string
	visited map[string]bool
	stack   []string // current recursion path
}

// DFS returns the first path from start to end found by a depth-first search
// that explores neighbors in ascending ID order.
//
// The path is acyclic but not necessarily shortest. Result.Cost is the sum of
// the traversed edge weights and Result.Weighted is true. A vertex entered
// once is never entered again, so the search runs in O(V+E).
//
// Missing endpoints yield core.NotFound() and an error wrapping
// core.ErrInvalidEndpoint. An exhausted search yields core.NotFound() with a
// nil error.
func DFS(g *core.Graph, start, end string, opts ...Option) (core.Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if err := core.CheckEndpoints(g, start, end); err != nil {
		o.Logger.V(1).Info("dfs: invalid endpoint", "start", start, "end", end)
		return core.NotFound(), err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		end:     end,
		visited: make(map[string]bool),
	}
	o.Logger.V(1).Info("dfs: search started", "start", start, "end", end)

	found, err := w.search(start, 0)
	if err != nil {
		return core.NotFound(), err
	}
	if !found {
		o.Logger.V(1).Info("dfs: no path", "start", start, "end", end, "visited", len(w.visited))
		return core.NotFound(), nil
	}

	path := make([]string, len(w.stack))
	copy(path, w.stack)
	cost, _ := g.PathCost(path)
	o.Logger.V(1).Info("dfs: path found", "hops", len(path)-1, "cost", cost)

	return core.Result{Found: true, Path: path, Cost: cost, Weighted: true}, nil
}

// search enters id at the given depth. On success the walker's stack holds
// the full path.
func (w *walker) search(id string, depth int) (bool, error) {
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	w.stack = append(w.stack, id)
	if id == w.end {
		return true, nil
	}
	w.visited[id] = true

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.Neighbors(id)
		if err != nil {
			return false, fmt.Errorf("%w: Neighbors(%q): %v", ErrNeighbors, id, err)
		}
		for _, nb := range nbs {
			if w.visited[nb.ID] {
				continue
			}
			found, err := w.search(nb.ID, depth+1)
			if err != nil || found {
				return found, err
			}
		}
	}

	w.stack = w.stack[:len(w.stack)-1]

	return false, nil
}

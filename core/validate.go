// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Graph invariant checks run by the builder before Freeze.
//
// The pathfinding packages never call Validate: a malformed graph is the
// caller's responsibility and Dijkstra's answer on it is undefined.

package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Validate checks the invariants every query relies on:
//
//   - every adjacency key is itself a vertex (no dangling edges);
//   - every weight is finite and non-negative;
//   - every vertex has coordinates (presentation draws every node of a path).
//
// All violations are reported, each wrapped with ErrMalformedGraph, joined
// with errors.Join in deterministic (sorted vertex) order.
// Complexity: O(V log V + E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var errs []error
	for _, id := range ids {
		if !g.vertices[id].HasCoords {
			errs = append(errs, fmt.Errorf("%w: vertex %q has no coords", ErrMalformedGraph, id))
		}
		nbrs, ok := g.adj[id]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: vertex %q has no adjacency", ErrMalformedGraph, id))
			continue
		}
		tos := make([]string, 0, len(nbrs))
		for to := range nbrs {
			tos = append(tos, to)
		}
		sort.Strings(tos)
		for _, to := range tos {
			w := nbrs[to]
			if _, ok := g.vertices[to]; !ok {
				errs = append(errs, fmt.Errorf("%w: dangling edge %s→%s", ErrMalformedGraph, id, to))
			}
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				errs = append(errs, fmt.Errorf("%w: edge %s→%s has weight %v", ErrMalformedGraph, id, to, w))
			}
		}
	}

	return errors.Join(errs...)
}

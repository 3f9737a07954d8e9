// SPDX-License-Identifier: MIT
//
// Package bfs finds the fewest-hop path between two vertices of a core.Graph.
//
// What
//
//   - Classic frontier expansion over a FIFO queue of candidate *paths*, seeded
//     with the single-element path [start].
//   - The goal test happens on dequeue: the first path whose last vertex is the
//     destination is returned. All paths of k edges are enqueued before any path
//     of k+1 edges, so that path has the minimum edge count.
//   - Edge weights are ignored. The returned core.Result is unweighted:
//     Distance() reports false and ApproxCost() falls back to the hop count.
//
// Determinism
//
//	core.Graph.Neighbors returns neighbors sorted by ID and BFS enqueues them
//	in that order, so among several fewest-hop paths the lexicographically
//	earliest expansion wins, every time.
//
// Complexity (V = |Vertices|, E = |Edges|, L = path length)
//
//   - Time:   O(V + E) expansions, each copying a path of length ≤ L.
//   - Memory: O(E·L) in the worst case for queued paths.
//
// Usage
//
//	res, err := bfs.BFS(g, "Pollak Library", "Gordon Hall")
//	switch {
//	case errors.Is(err, core.ErrInvalidEndpoint):
//	    // "invalid location"
//	case !res.Found:
//	    // "no path found"
//	default:
//	    fmt.Println(res.Path, res.Hops())
//	}
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per dequeue.
//   - WithLogger(l):           logr sink for V(1) diagnostics.
//   - WithMaxDepth(d):         do not extend paths beyond d edges (d>0); 0 = no limit.
//   - WithFilterNeighbor(fn):  skip curr→neighbor when fn returns false.
//   - WithOnVisit(fn):         hook on every dequeued path end; an error aborts.
//
// Errors
//
//   - core.ErrInvalidEndpoint  start or destination missing (or nil graph).
//   - ErrOptionViolation       invalid option (e.g. negative MaxDepth).
//   - context errors and wrapped OnVisit errors.
package bfs

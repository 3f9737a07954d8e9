// SPDX-License-Identifier: MIT
//
// Package dfs implements depth-first path search and reachability on a
// core.Graph.
//
// What:
//
//   - DFS(g, start, end, opts...) returns the first path found by a recursive
//     depth-first walk, together with the literal sum of its edge weights.
//     The path is simple (no vertex repeats) but not necessarily the
//     shortest; use package dijkstra for minimum distance.
//   - Reachable(g, start, opts...) lists every vertex reachable from start.
//     The graph builder uses it to report campus locations that cannot be
//     reached from the rest of the network.
//
// Determinism:
//
//   - Neighbors are explored in ascending ID order, so repeated calls on the
//     same graph return the same path.
//
// Complexity:
//
//   - Time:   O(V + E); a vertex is entered at most once per search.
//   - Memory: O(V) for the visited set and recursion stack.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked once per entered vertex.
//   - WithLogger(l)        logr diagnostics at V(1).
//   - WithOnVisit(fn)      pre-order hook; error aborts the search.
//   - WithMaxDepth(limit)  stop descending below limit edges (negative = no limit).
//
// Errors:
//
//   - core.ErrInvalidEndpoint  start or end is not in the graph.
//   - context.Canceled         search canceled via context.
//   - hook errors              propagated from OnVisit.
package dfs

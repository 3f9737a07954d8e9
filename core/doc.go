// SPDX-License-Identifier: MIT
//
// Package core provides the in-memory walking graph shared by every
// pathfinding package in campusroute.
//
// The Graph G = (V,E) models a campus street network:
//
//   - Vertices are street intersections (decimal IDs assigned by the upstream
//     network data) or named campus locations ("Pollak Library"). Both kinds of
//     ID live in one namespace and must be distinct.
//   - Each vertex carries an optional display Name and geographic Coords
//     (latitude, longitude) used by presentation code only.
//   - Adjacency is stored as nested maps: adj[from][to] = weight (meters).
//     Edges are directed as stored; Connect inserts both directions, which is
//     how every street segment and location link is added in practice.
//
// Lifecycle:
//
//	g := core.NewGraph()          // mutable while building
//	g.Connect("A", "B", 12.5)     // auto-creates A and B
//	if err := g.Validate(); err != nil { ... }
//	g.Freeze()                    // initialization barrier: read-only from here
//
// After Freeze every mutator returns ErrFrozen. Reads take a read lock, so any
// number of goroutines may query a frozen graph concurrently.
//
// Determinism:
//
//   - Vertices() is sorted lexicographically.
//   - Neighbors(id) is sorted by neighbor ID, so BFS and DFS explore in a fixed
//     order and return reproducible paths.
//
// Results:
//
// Result is the single tagged outcome shared by BFS, DFS and Dijkstra:
// Found, Path, Cost and Weighted. BFS results are unweighted, so Distance()
// reports false instead of a misleading zero; callers that need a number use
// ApproxCost(), which falls back to the hop count.
//
// Errors:
//
//	ErrEmptyVertexID    - zero-length vertex ID.
//	ErrVertexNotFound   - missing vertex.
//	ErrBadWeight        - negative, NaN or infinite weight passed to AddEdge.
//	ErrFrozen           - mutation attempted after Freeze.
//	ErrInvalidEndpoint  - start or end of a query is not in the graph.
//	ErrMalformedGraph   - Validate found a broken invariant.
package core

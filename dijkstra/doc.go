// SPDX-License-Identifier: MIT
//
// Package dijkstra finds the minimum-distance walking route between two
// vertices of a core.Graph.
//
// What:
//
//	Dijkstra(g, source, dest, opts...) settles vertices in order of distance
//	from source using a binary heap, and stops as soon as dest is settled.
//	The path is rebuilt from predecessor links.
//
// Algorithm:
//
//  1. dist[source] = 0, every other vertex is implicitly +Inf.
//  2. Pop the closest (distance, id) pair. Skip it if a shorter distance for
//     the same vertex was recorded after it was pushed (lazy decrease-key).
//  3. Stop when the popped vertex is dest.
//  4. For each neighbor v of u: if dist[u]+w(u,v) < dist[v], record the new
//     distance and predecessor and push (dist[v], v).
//
// Determinism:
//
//	Heap entries with equal distance are ordered by vertex ID, so ties between
//	equally short routes are always broken the same way.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap may hold one entry per relaxation.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked once per pop.
//   - WithLogger(l)             logr diagnostics at V(1).
//   - WithMaxDistance(m)        do not explore beyond m meters (m ≥ 0, else panic).
//   - WithInfEdgeThreshold(t)   edges with weight ≥ t are impassable (t > 0, else panic).
//
// Errors:
//
//   - core.ErrInvalidEndpoint   source or dest not in the graph.
//   - context.Canceled          search canceled via context.
//
// Negative weights are not detected; graphs built by package builder never
// contain them.
package dijkstra

// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a graph.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, unfrozen instance.

package core

// Clone returns a deep, mutable copy of g: vertices, names, coords and
// adjacency. The clone is never frozen, even if g is.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.vertices)))
	for id, v := range g.vertices {
		cp := *v
		clone.vertices[id] = &cp
		nbrs := make(map[string]float64, len(g.adj[id]))
		for to, w := range g.adj[id] {
			nbrs[to] = w
		}
		clone.adj[id] = nbrs
	}
	clone.edges = g.edges

	return clone
}

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary getters for diagnostics and health endpoints.

package core

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	Vertices int  `json:"vertices"`
	Edges    int  `json:"edges"`
	Named    int  `json:"named"`
	Isolated int  `json:"isolated"`
	Frozen   bool `json:"frozen"`
}

// Stats returns a snapshot of vertex/edge counts, the number of named
// vertices and of vertices with no outgoing edges.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		Vertices: len(g.vertices),
		Edges:    g.edges,
		Frozen:   g.frozen,
	}
	for id, v := range g.vertices {
		if v.Name != "" {
			s.Named++
		}
		if len(g.adj[id]) == 0 {
			s.Isolated++
		}
	}

	return s
}

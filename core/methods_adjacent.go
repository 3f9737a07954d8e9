// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Read-only queries (HasVertex, Vertex, Vertices, Neighbors, Weight, counts).
// Determinism:
//   - Vertices() is sorted lex asc.
//   - Neighbors() is sorted by neighbor ID asc.
// Concurrency:
//   - Every query holds the read lock for its duration and returns copies.

package core

import "sort"

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the node record for id.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}

	return *v, true
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// Neighbors returns the outgoing adjacency of id sorted by neighbor ID.
//
// Returns ErrEmptyVertexID or ErrVertexNotFound. A vertex without outgoing
// edges yields an empty, non-nil slice.
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	nbrs, ok := g.adj[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]Neighbor, 0, len(nbrs))
	for to, w := range nbrs {
		out = append(out, Neighbor{ID: to, Weight: w})
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Weight returns the weight of the directed entry from→to.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[from][to]

	return w, ok
}

// HasEdge reports whether the directed entry from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// VertexCount returns |V|. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of directed adjacency entries. An undirected
// link added with Connect counts twice. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// PathCost sums the weights along path. It returns false if any consecutive
// pair is not an edge. A single-vertex path costs 0.
// Complexity: O(len(path)).
func (g *Graph) PathCost(path []string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var total float64
	for i := 1; i < len(path); i++ {
		w, ok := g.adj[path[i-1]][path[i]]
		if !ok {
			return 0, false
		}
		total += w
	}

	return total, true
}

// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Mutators (AddVertex, SetName, SetCoords, AddEdge, Connect, Freeze).
// Concurrency:
//   - Every mutator takes the write lock and fails with ErrFrozen once the
//     graph is frozen.

package core

import (
	"fmt"
	"math"
)

// AddVertex inserts a vertex with the given ID and an empty adjacency.
// Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID or ErrFrozen.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	g.ensureVertex(id)

	return nil
}

// SetName sets the display label of an existing vertex.
// Returns ErrEmptyVertexID, ErrVertexNotFound or ErrFrozen.
func (g *Graph) SetName(id, name string) error {
	return g.update(id, func(v *Vertex) { v.Name = name })
}

// SetCoords sets the geographic position of an existing vertex.
// Returns ErrEmptyVertexID, ErrVertexNotFound or ErrFrozen.
func (g *Graph) SetCoords(id string, c Coords) error {
	return g.update(id, func(v *Vertex) {
		v.Coords = c
		v.HasCoords = true
	})
}

// AddEdge stores the directed entry adj[from][to] = weight, creating missing
// endpoints. Re-adding an existing pair overwrites its weight.
//
// Returns ErrEmptyVertexID, ErrBadWeight (negative, NaN, ±Inf) or ErrFrozen.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := checkWeight(weight); err != nil {
		return fmt.Errorf("%w: %s→%s", err, from, to)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	g.setEdge(from, to, weight)

	return nil
}

// Connect stores both directions between a and b with the same weight.
// This is how location nodes are linked to their nearest street nodes.
// Returns the same errors as AddEdge.
func (g *Graph) Connect(a, b string, weight float64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if err := checkWeight(weight); err != nil {
		return fmt.Errorf("%w: %s↔%s", err, a, b)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	g.setEdge(a, b, weight)
	g.setEdge(b, a, weight)

	return nil
}

// Freeze marks the graph read-only. It is idempotent.
// Freeze must happen-before any concurrent query.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// update applies fn to the live vertex record under the write lock.
func (g *Graph) update(id string, fn func(v *Vertex)) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	fn(v)

	return nil
}

// ensureVertex creates id with an empty adjacency if absent. Caller holds the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.adj[id] = make(map[string]float64)
}

// setEdge writes adj[from][to]. Caller holds the write lock.
func (g *Graph) setEdge(from, to string, weight float64) {
	g.ensureVertex(from)
	g.ensureVertex(to)
	if _, exists := g.adj[from][to]; !exists {
		g.edges++
	}
	g.adj[from][to] = weight
}

// checkWeight rejects weights that would break Dijkstra.
func checkWeight(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w (got %v)", ErrBadWeight, w)
	}

	return nil
}

// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Vertex and Coords types, and
// provides thread-safe primitives for building, freezing and querying the
// walking graph.
//
// A single sync.RWMutex guards vertices and adjacency together: the graph is
// built once by one goroutine and then only read, so split locks would buy
// nothing.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a finite non-negative number")

	// ErrFrozen indicates a mutation after Freeze.
	ErrFrozen = errors.New("core: graph is frozen")

	// ErrInvalidEndpoint indicates a query whose start or end is not a vertex of the graph.
	ErrInvalidEndpoint = errors.New("core: invalid endpoint")

	// ErrMalformedGraph indicates Validate found a broken graph invariant.
	ErrMalformedGraph = errors.New("core: malformed graph")
)

// Coords is a geographic position in decimal degrees (WGS84).
type Coords struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Vertex is a snapshot of one node record.
//
// Vertices returned by the Graph are copies; mutating them has no effect on
// the graph.
type Vertex struct {
	// ID is the unique identifier of the node (street node id or location name).
	ID string

	// Name is an optional display label: the location name for location nodes,
	// the street name for named street nodes.
	Name string

	// Coords is the node position; meaningful only when HasCoords is true.
	Coords Coords

	// HasCoords reports whether Coords was ever set.
	HasCoords bool
}

// Neighbor is one outgoing adjacency entry: the neighbor ID and the edge weight.
type Neighbor struct {
	ID     string
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex and adjacency maps.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// Graph is the walking graph: node records plus directed weighted adjacency.
type Graph struct {
	mu sync.RWMutex // guards everything below

	frozen  bool
	capHint int

	vertices map[string]*Vertex            // vertex ID → record
	adj      map[string]map[string]float64 // adj[from][to] = weight
	edges    int                           // number of directed adjacency entries
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1) (O(capacity) with WithCapacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]*Vertex, g.capHint)
	g.adj = make(map[string]map[string]float64, g.capHint)

	return g
}

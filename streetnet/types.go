// SPDX-License-Identifier: MIT
package streetnet

import (
	"errors"
	"sort"
)

// Sentinel errors.
var (
	// ErrDecode indicates the input could not be parsed.
	ErrDecode = errors.New("streetnet: decode failed")

	// ErrBadID indicates a node or link id that is not an integer.
	ErrBadID = errors.New("streetnet: unsupported id")

	// ErrEmpty indicates a network without nodes.
	ErrEmpty = errors.New("streetnet: network has no nodes")

	// ErrUnknownFormat indicates a file extension other than .json or .gob.
	ErrUnknownFormat = errors.New("streetnet: unknown file format")
)

// Node is a street intersection or dead end.
type Node struct {
	ID          int64
	Lat         float64
	Lon         float64
	StreetCount int
}

// Edge is one directed street segment.
type Edge struct {
	From   int64
	To     int64
	Length float64 // meters
	Name   string
}

// Network is a pre-built street network. Edges are keyed by source node id.
// When Directed is false every edge is walkable in both directions.
type Network struct {
	Directed bool
	Nodes    map[int64]Node
	Edges    map[int64][]Edge
}

// Stats summarizes a Network.
type Stats struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
	Named int `json:"named_edges"`
}

// NewNetwork returns an empty directed network.
func NewNetwork() *Network {
	return &Network{
		Directed: true,
		Nodes:    make(map[int64]Node),
		Edges:    make(map[int64][]Edge),
	}
}

// NodeIDs returns node ids in ascending order.
func (n *Network) NodeIDs() []int64 {
	ids := make([]int64, 0, len(n.Nodes))
	for id := range n.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Stats counts nodes, edges and edges carrying a street name.
func (n *Network) Stats() Stats {
	s := Stats{Nodes: len(n.Nodes)}
	for _, es := range n.Edges {
		s.Edges += len(es)
		for _, e := range es {
			if e.Name != "" {
				s.Named++
			}
		}
	}

	return s
}

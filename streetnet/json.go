// SPDX-License-Identifier: MIT
package streetnet

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// nodeLink is the node-link layout written by graph exporters. Documents
// either carry it at the top level or wrapped under "graph".
type nodeLink struct {
	Directed *bool      `json:"directed"`
	Nodes    []jsonNode `json:"nodes"`
	Links    []jsonEdge `json:"links"`
}

type jsonNode struct {
	ID          interface{} `json:"id"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Lat         float64     `json:"lat"`
	Lon         float64     `json:"lon"`
	StreetCount int         `json:"street_count"`
}

type jsonEdge struct {
	Source    interface{} `json:"source"`
	Target    interface{} `json:"target"`
	Length    float64     `json:"length"`
	DistanceM float64     `json:"distance_m"`
	Name      interface{} `json:"name"` // string or array of strings
}

// DecodeJSON parses a node-link street network.
//
// Node coordinates come from lat/lon when present, otherwise from y/x. Edge
// length comes from "length", falling back to "distance_m". Array-valued
// names are joined with ", ".
func DecodeJSON(r io.Reader) (*Network, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc struct {
		nodeLink
		Graph *nodeLink `json:"graph"`
	}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	nl := doc.nodeLink
	if doc.Graph != nil && len(doc.Graph.Nodes) > 0 {
		nl = *doc.Graph
	}
	if len(nl.Nodes) == 0 {
		return nil, ErrEmpty
	}

	n := NewNetwork()
	if nl.Directed != nil {
		n.Directed = *nl.Directed
	}
	for _, jn := range nl.Nodes {
		id, err := convertID(jn.ID)
		if err != nil {
			return nil, fmt.Errorf("node %v: %w", jn.ID, err)
		}
		lat, lon := jn.Lat, jn.Lon
		if lat == 0 && lon == 0 {
			lat, lon = jn.Y, jn.X
		}
		n.Nodes[id] = Node{ID: id, Lat: lat, Lon: lon, StreetCount: jn.StreetCount}
	}

	for i, je := range nl.Links {
		from, err := convertID(je.Source)
		if err != nil {
			return nil, fmt.Errorf("link %d source: %w", i, err)
		}
		to, err := convertID(je.Target)
		if err != nil {
			return nil, fmt.Errorf("link %d target: %w", i, err)
		}
		length := je.Length
		if length == 0 {
			length = je.DistanceM
		}
		n.Edges[from] = append(n.Edges[from], Edge{
			From:   from,
			To:     to,
			Length: length,
			Name:   convertName(je.Name),
		})
	}

	return n, nil
}

func convertID(id interface{}) (int64, error) {
	switch v := id.(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrBadID, v)
		}
		return i, nil
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadID, v)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrBadID, id)
	}
}

func convertName(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, e := range v {
			parts = append(parts, fmt.Sprint(e))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

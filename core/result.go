// SPDX-License-Identifier: MIT
//
// File: result.go
// Role: The tagged outcome shared by every pathfinding algorithm.

package core

import (
	"fmt"
	"strings"
)

// Result is the outcome of a single path query.
//
// Found == false is the not-found sentinel: Path is nil and Cost is 0. It is
// returned both for unreachable destinations and for invalid endpoints (the
// latter together with an ErrInvalidEndpoint error).
//
// Weighted reports whether Cost is a real distance. BFS ignores weights and
// returns Weighted == false; use Distance or ApproxCost instead of reading
// Cost directly.
type Result struct {
	Found    bool
	Path     []string
	Cost     float64
	Weighted bool
}

// NotFound returns the not-found sentinel.
func NotFound() Result { return Result{} }

// Distance returns the weighted path cost in meters, or false when the result
// carries no distance (not found, or produced by an unweighted search).
func (r Result) Distance() (float64, bool) {
	if !r.Found || !r.Weighted {
		return 0, false
	}

	return r.Cost, true
}

// Hops returns the number of edges on the path, or -1 when not found.
func (r Result) Hops() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}

// ApproxCost returns the weighted cost when available and the hop count
// otherwise. It returns -1 when not found.
func (r Result) ApproxCost() float64 {
	if d, ok := r.Distance(); ok {
		return d
	}

	return float64(r.Hops())
}

// String renders the result as "A → B → C (cost 12.50)" for logs and the CLI.
func (r Result) String() string {
	if !r.Found {
		return "no path"
	}
	path := strings.Join(r.Path, " → ")
	if d, ok := r.Distance(); ok {
		return fmt.Sprintf("%s (cost %.2f)", path, d)
	}

	return fmt.Sprintf("%s (%d hops)", path, r.Hops())
}

// CheckEndpoints returns an error wrapping ErrInvalidEndpoint when g is nil
// or either endpoint is not a vertex of g.
func CheckEndpoints(g *Graph, start, end string) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidEndpoint)
	}
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return fmt.Errorf("%w: start %q or end %q not in graph", ErrInvalidEndpoint, start, end)
	}

	return nil
}

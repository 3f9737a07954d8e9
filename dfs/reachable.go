// SPDX-License-Identifier: MIT
package dfs

import (
	"sort"

	"github.com/katalvlaran/campusroute/core"
)

// Reachable returns every vertex reachable from start, start included, in
// ascending ID order. OnVisit and MaxDepth apply as in DFS.
//
// Errors: core.ErrInvalidEndpoint if start is missing; context and hook
// errors as-is.
func Reachable(g *core.Graph, start string, opts ...Option) ([]string, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := core.CheckEndpoints(g, start, start); err != nil {
		return nil, err
	}

	// An empty end never matches a vertex ID, so the walk covers the whole
	// component.
	w := &walker{graph: g, opts: o, visited: make(map[string]bool)}
	if _, err := w.search(start, 0); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(w.visited))
	for id := range w.visited {
		out = append(out, id)
	}
	sort.Strings(out)
	o.Logger.V(1).Info("dfs: reachable set", "start", start, "size", len(out))

	return out, nil
}

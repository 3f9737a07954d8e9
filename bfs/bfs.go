// SPDX-License-Identifier: MIT
//
// Package bfs provides breadth-first path search over a core.Graph,
// returning the path with the fewest edges between two vertices.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/campusroute/core"
)

// walker encapsulates mutable BFS state for a single query.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	dest    string
	queue   [][]string
	visited map[string]bool
}

// BFS returns the fewest-edge path from start to destination.
//
// On success the Result is Found with Weighted == false. When the queue
// empties without reaching destination the not-found Result is returned with
// a nil error. Missing endpoints yield the not-found Result and an error
// wrapping core.ErrInvalidEndpoint. ErrOptionViolation, ErrNeighbors, context
// errors and hook errors are returned as-is.
func BFS(g *core.Graph, start, destination string, opts ...Option) (core.Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return core.NotFound(), o.err
	}

	if err := core.CheckEndpoints(g, start, destination); err != nil {
		o.Logger.V(1).Info("bfs: invalid endpoint", "start", start, "destination", destination)
		return core.NotFound(), err
	}

	o.Logger.V(1).Info("bfs: search started", "start", start, "destination", destination)
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		dest:    destination,
		queue:   [][]string{{start}},
		visited: make(map[string]bool),
	}

	path, err := w.loop()
	if err != nil {
		return core.NotFound(), err
	}
	if path == nil {
		o.Logger.V(1).Info("bfs: no path", "start", start, "destination", destination, "visited", len(w.visited))
		return core.NotFound(), nil
	}
	o.Logger.V(1).Info("bfs: path found", "hops", len(path)-1, "visited", len(w.visited))

	return core.Result{Found: true, Path: path}, nil
}

// loop processes the queue until the destination is dequeued, the queue
// empties (nil path), or an error occurs.
func (w *walker) loop() ([]string, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		path := w.dequeue()
		current := path[len(path)-1]
		if err := w.opts.OnVisit(current, len(path)-1); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", current, err)
		}
		if current == w.dest {
			return path, nil
		}
		if w.visited[current] {
			continue
		}
		w.visited[current] = true
		if err := w.extend(path); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// dequeue pops the head path. The backing array is released for large queues.
func (w *walker) dequeue() []string {
	path := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]

	return path
}

// extend enqueues path+neighbor for every unvisited, unfiltered neighbor of
// the path's last vertex, honoring MaxDepth.
func (w *walker) extend(path []string) error {
	if w.opts.MaxDepth > 0 && len(path)-1 >= w.opts.MaxDepth {
		return nil
	}
	current := path[len(path)-1]
	nbrs, err := w.graph.Neighbors(current)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, current, err)
	}
	for _, nb := range nbrs {
		if w.visited[nb.ID] || !w.opts.FilterNeighbor(current, nb.ID) {
			continue
		}
		next := make([]string, len(path), len(path)+1)
		copy(next, path)
		w.queue = append(w.queue, append(next, nb.ID))
	}

	return nil
}

// SPDX-License-Identifier: MIT
package route

import (
	"context"
	"time"

	"github.com/katalvlaran/campusroute/bfs"
	"github.com/katalvlaran/campusroute/core"
	"github.com/katalvlaran/campusroute/dfs"
	"github.com/katalvlaran/campusroute/dijkstra"
)

// Find runs algo from start to end on g and times it.
//
// Invalid endpoints return a not-found Route and an error wrapping
// core.ErrInvalidEndpoint, before any engine runs. An unreachable end
// returns a not-found Route and a nil error.
func Find(ctx context.Context, g *core.Graph, algo Algorithm, start, end string, opts ...Option) (Route, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	r, err := find(ctx, g, algo, start, end, o)
	if o.Observer != nil {
		o.Observer(r, err)
	}

	return r, err
}

func find(ctx context.Context, g *core.Graph, algo Algorithm, start, end string, o Options) (Route, error) {
	r := Route{Algorithm: algo, From: start, To: end, Result: core.NotFound(), speed: o.WalkingSpeed}
	if _, err := ParseAlgorithm(string(algo)); err != nil {
		return r, err
	}
	if err := core.CheckEndpoints(g, start, end); err != nil {
		return r, err
	}

	log := o.Logger.WithValues("algorithm", string(algo))
	began := time.Now()
	var (
		res core.Result
		err error
	)
	switch algo {
	case BFS:
		res, err = bfs.BFS(g, start, end, bfs.WithContext(ctx), bfs.WithLogger(log))
	case DFS:
		res, err = dfs.DFS(g, start, end, dfs.WithContext(ctx), dfs.WithLogger(log))
	case Dijkstra:
		res, err = dijkstra.Dijkstra(g, start, end, dijkstra.WithContext(ctx), dijkstra.WithLogger(log))
	}
	r.Elapsed = time.Since(began)
	if err != nil {
		return r, err
	}
	r.Result = res

	return r, nil
}

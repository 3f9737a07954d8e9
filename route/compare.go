// SPDX-License-Identifier: MIT
package route

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/campusroute/core"
)

// Compare runs every algorithm concurrently on the same frozen graph and
// returns the routes in Algorithms() order. The first error cancels the
// remaining searches.
func Compare(ctx context.Context, g *core.Graph, start, end string, opts ...Option) ([]Route, error) {
	if err := core.CheckEndpoints(g, start, end); err != nil {
		return nil, err
	}

	algos := Algorithms()
	out := make([]Route, len(algos))
	eg, ectx := errgroup.WithContext(ctx)
	for i, a := range algos {
		i, a := i, a
		eg.Go(func() error {
			r, err := Find(ectx, g, a, start, end, opts...)
			out[i] = r
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

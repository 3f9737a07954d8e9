// SPDX-License-Identifier: MIT
// Package core_test verifies that a frozen graph serves concurrent readers.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/campusroute/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReadsOnFrozenGraph hammers a frozen graph from many readers
// and checks every reader sees the same adjacency. Run with -race.
func TestConcurrentReadsOnFrozenGraph(t *testing.T) {
	const n = 100
	g := core.NewGraph(core.WithCapacity(n))
	for i := 1; i < n; i++ {
		require.NoError(t, g.Connect(fmt.Sprintf("V%03d", i-1), fmt.Sprintf("V%03d", i), float64(i)))
	}
	g.Freeze()

	const readers = 50
	var wg sync.WaitGroup
	errCh := make(chan error, readers)
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				nbrs, err := g.Neighbors(fmt.Sprintf("V%03d", i))
				if err != nil {
					errCh <- err
					return
				}
				want := 2
				if i == 0 || i == n-1 {
					want = 1
				}
				if len(nbrs) != want {
					errCh <- fmt.Errorf("V%03d: got %d neighbors, want %d", i, len(nbrs), want)
					return
				}
			}
			_ = g.Stats()
			_ = g.Clone()
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}
}

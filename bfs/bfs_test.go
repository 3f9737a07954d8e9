// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/campusroute/bfs"
	"github.com/katalvlaran/campusroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDiamond returns the four-vertex example graph:
//
//	A—B (1), A—C (4), B—C (2), B—D (5), C—D (1)
func buildDiamond(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.Connect("A", "B", 1))
	require.NoError(t, g.Connect("A", "C", 4))
	require.NoError(t, g.Connect("B", "C", 2))
	require.NoError(t, g.Connect("B", "D", 5))
	require.NoError(t, g.Connect("C", "D", 1))
	g.Freeze()

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected with
// the not-found result.
func TestBFS_Errors(t *testing.T) {
	g := buildDiamond(t)

	res, err := bfs.BFS(g, "Z", "A")
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)

	_, err = bfs.BFS(g, "A", "Z")
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint)

	_, err = bfs.BFS(nil, "A", "B")
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint)

	_, err = bfs.BFS(g, "A", "D", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SameStartAndDestination(t *testing.T) {
	g := buildDiamond(t)
	res, err := bfs.BFS(g, "C", "C")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"C"}, res.Path)
	assert.Equal(t, 0, res.Hops())
}

func TestBFS_FewestHops(t *testing.T) {
	g := buildDiamond(t)
	res, err := bfs.BFS(g, "A", "D")
	require.NoError(t, err)
	require.True(t, res.Found)
	// B sorts before C, so the B branch reaches D first.
	assert.Equal(t, []string{"A", "B", "D"}, res.Path)
	assert.Equal(t, 2, res.Hops())

	_, ok := res.Distance()
	assert.False(t, ok, "BFS must not report a weighted distance")
	assert.False(t, res.Weighted)
	assert.Equal(t, 2.0, res.ApproxCost())
}

func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect("X", "Y", 1))
	require.NoError(t, g.Connect("P", "Q", 1))

	res, err := bfs.BFS(g, "X", "Q")
	require.NoError(t, err, "unreachable is not an error")
	assert.Equal(t, core.NotFound(), res)
}

func TestBFS_DirectedEdgesAreOneWay(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	res, err := bfs.BFS(g, "A", "B")
	require.NoError(t, err)
	assert.True(t, res.Found)

	res, err = bfs.BFS(g, "B", "A")
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect("A", "B", 1))
	require.NoError(t, g.Connect("B", "C", 1))

	res, err := bfs.BFS(g, "A", "C", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Found, "C is two edges away")

	res, err = bfs.BFS(g, "A", "C", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := buildDiamond(t)
	noB := func(_, nbr string) bool { return nbr != "B" }

	res, err := bfs.BFS(g, "A", "D", bfs.WithFilterNeighbor(noB))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, res.Path)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	g := buildDiamond(t)
	stop := errors.New("stop")
	var seen []string
	hook := func(id string, _ int) error {
		seen = append(seen, id)
		if id == "C" {
			return stop
		}
		return nil
	}

	res, err := bfs.BFS(g, "A", "D", bfs.WithOnVisit(hook))
	assert.ErrorIs(t, err, stop)
	assert.False(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, seen)
}

func TestBFS_ContextCanceled(t *testing.T) {
	g := buildDiamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "A", "D", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_PathHasNoRepeats(t *testing.T) {
	// 3×3 grid, corner to corner
	g := core.NewGraph()
	id := func(r, c int) string { return string(rune('a'+r)) + string(rune('0'+c)) }
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c+1 < 3 {
				require.NoError(t, g.Connect(id(r, c), id(r, c+1), 1))
			}
			if r+1 < 3 {
				require.NoError(t, g.Connect(id(r, c), id(r+1, c), 1))
			}
		}
	}

	res, err := bfs.BFS(g, "a0", "c2")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 4, res.Hops())

	seen := make(map[string]bool)
	for _, v := range res.Path {
		assert.False(t, seen[v], "vertex %s repeated", v)
		seen[v] = true
	}
}

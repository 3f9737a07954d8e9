// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusroute/core"
	"github.com/katalvlaran/campusroute/dfs"
)

// buildDiamond returns A—B (1), A—C (4), B—C (2), B—D (5), C—D (1).
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

// buildChain creates an undirected chain N0—N1—…—N(n-1) with unit weights.
func buildChain(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.Connect("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1), 1))
	}

	return g
}

func TestDFS_InvalidEndpoint(t *testing.T) {
	g := buildDiamond(t)

	res, err := dfs.DFS(g, "Z", "A")
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint)
	assert.Equal(t, core.NotFound(), res)

	_, err = dfs.DFS(nil, "A", "B")
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint)
}

func TestDFS_SameStartAndEnd(t *testing.T) {
	g := buildDiamond(t)
	res, err := dfs.DFS(g, "B", "B")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"B"}, res.Path)
	d, ok := res.Distance()
	assert.True(t, ok)
	assert.Zero(t, d)
}

func TestDFS_FirstMatchPath(t *testing.T) {
	g := buildDiamond(t)
	res, err := dfs.DFS(g, "A", "D")
	require.NoError(t, err)
	require.True(t, res.Found)

	// A explores B first, B explores C before D, C reaches D.
	want := []string{"A", "B", "C", "D"}
	if diff := cmp.Diff(want, res.Path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, res.Weighted)
	assert.Equal(t, 4.0, res.Cost)
}

func TestDFS_CostIsLiteralSum(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect("A", "B", 0.1))
	require.NoError(t, g.Connect("B", "C", 0.2))
	require.NoError(t, g.Connect("C", "D", 0.3))
	require.NoError(t, g.Connect("A", "D", 100))

	res, err := dfs.DFS(g, "A", "D")
	require.NoError(t, err)
	require.True(t, res.Found)

	want, ok := g.PathCost(res.Path)
	require.True(t, ok, "every consecutive pair must be an edge")
	assert.Equal(t, want, res.Cost)

	seen := make(map[string]bool)
	for _, v := range res.Path {
		assert.False(t, seen[v], "vertex %s repeated", v)
		seen[v] = true
	}
}

func TestDFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect("X", "Y", 1))
	require.NoError(t, g.AddVertex("Q"))

	res, err := dfs.DFS(g, "X", "Q")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 3)

	res, err := dfs.DFS(g, "N0", "N2", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Found)

	res, err = dfs.DFS(g, "N0", "N2", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2"}, res.Path)
}

func TestDFS_OnVisitOrderAndAbort(t *testing.T) {
	g := buildDiamond(t)
	var order []string
	_, err := dfs.DFS(g, "A", "D", dfs.WithOnVisit(func(id string) error {
		order = append(order, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)

	boom := errors.New("boom")
	res, err := dfs.DFS(g, "A", "D", dfs.WithOnVisit(func(id string) error {
		if id == "C" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.False(t, res.Found)
}

func TestDFS_ContextCanceled(t *testing.T) {
	g := buildDiamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "A", "D", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_LongChain(t *testing.T) {
	g := buildChain(t, 10000)
	res, err := dfs.DFS(g, "N0", "N9999")
	require.NoError(t, err)
	assert.Equal(t, 9999, res.Hops())
	assert.Equal(t, 9999.0, res.Cost)
}

func TestReachable(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect("A", "B", 1))
	require.NoError(t, g.Connect("B", "C", 1))
	require.NoError(t, g.Connect("X", "Y", 1))
	require.NoError(t, g.AddEdge("C", "D", 1)) // one-way

	got, err := dfs.Reachable(g, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, got)

	got, err = dfs.Reachable(g, "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, got)

	_, err = dfs.Reachable(g, "nope")
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint)
}

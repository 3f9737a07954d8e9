// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/katalvlaran/campusroute/core"
	"github.com/stretchr/testify/assert"
)

func TestResult_NotFound(t *testing.T) {
	r := core.NotFound()
	assert.False(t, r.Found)
	assert.Nil(t, r.Path)
	_, ok := r.Distance()
	assert.False(t, ok)
	assert.Equal(t, -1, r.Hops())
	assert.Equal(t, -1.0, r.ApproxCost())
	assert.Equal(t, "no path", r.String())
}

func TestResult_UnweightedHasNoDistance(t *testing.T) {
	r := core.Result{Found: true, Path: []string{"A", "B", "D"}}
	_, ok := r.Distance()
	assert.False(t, ok, "BFS results carry no distance, not a zero distance")
	assert.Equal(t, 2, r.Hops())
	assert.Equal(t, 2.0, r.ApproxCost())
	assert.Equal(t, "A → B → D (2 hops)", r.String())
}

func TestResult_Weighted(t *testing.T) {
	r := core.Result{Found: true, Path: []string{"A", "B", "C", "D"}, Cost: 4, Weighted: true}
	d, ok := r.Distance()
	assert.True(t, ok)
	assert.Equal(t, 4.0, d)
	assert.Equal(t, 4.0, r.ApproxCost())
	assert.Equal(t, "A → B → C → D (cost 4.00)", r.String())

	zero := core.Result{Found: true, Path: []string{"A"}, Weighted: true}
	d, ok = zero.Distance()
	assert.True(t, ok, "a genuine zero-cost path is distinguishable from not found")
	assert.Zero(t, d)
}

func TestCheckEndpoints(t *testing.T) {
	g := buildDiamond(t)
	assert.NoError(t, core.CheckEndpoints(g, VertexA, VertexD))
	assert.ErrorIs(t, core.CheckEndpoints(g, "Z", VertexA), core.ErrInvalidEndpoint)
	assert.ErrorIs(t, core.CheckEndpoints(g, VertexA, "Z"), core.ErrInvalidEndpoint)
	assert.ErrorIs(t, core.CheckEndpoints(nil, VertexA, VertexB), core.ErrInvalidEndpoint)
}

// SPDX-License-Identifier: MIT
package streetnet_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusroute/streetnet"
)

const fixture = "testdata/campus_grid.json"

func TestLoad_JSONFixture(t *testing.T) {
	n, err := streetnet.Load(fixture)
	require.NoError(t, err)

	assert.True(t, n.Directed)
	assert.Equal(t, streetnet.Stats{Nodes: 9, Edges: 24, Named: 24}, n.Stats())

	first := n.NodeIDs()[0]
	assert.Equal(t, int64(101), first)
	assert.Equal(t, streetnet.Node{ID: 101, Lat: 33.8785, Lon: -117.888, StreetCount: 2}, n.Nodes[101])

	require.NotEmpty(t, n.Edges[101])
	e := n.Edges[101][0]
	assert.Equal(t, int64(101), e.From)
	assert.Equal(t, "Nutwood Avenue", e.Name)
	assert.InDelta(t, 231.4, e.Length, 1e-9)
}

func TestDecodeJSON_BareNodeLink(t *testing.T) {
	doc := `{
		"directed": false,
		"graph": {"crs": "epsg:4326"},
		"nodes": [
			{"id": "1", "lat": 33.1, "lon": -117.1},
			{"id": 2, "y": 33.2, "x": -117.2}
		],
		"links": [
			{"source": 1, "target": "2", "distance_m": 12.5, "name": ["Titan Walk", "Service Road"]}
		]
	}`
	n, err := streetnet.DecodeJSON(strings.NewReader(doc))
	require.NoError(t, err)

	assert.False(t, n.Directed)
	assert.Equal(t, 33.1, n.Nodes[1].Lat)
	assert.Equal(t, -117.2, n.Nodes[2].Lon)
	want := []streetnet.Edge{{From: 1, To: 2, Length: 12.5, Name: "Titan Walk, Service Road"}}
	if diff := cmp.Diff(want, n.Edges[1]); diff != "" {
		t.Fatalf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	_, err := streetnet.DecodeJSON(strings.NewReader(`{"nodes": [`))
	assert.ErrorIs(t, err, streetnet.ErrDecode)

	_, err = streetnet.DecodeJSON(strings.NewReader(`{"nodes": []}`))
	assert.ErrorIs(t, err, streetnet.ErrEmpty)

	_, err = streetnet.DecodeJSON(strings.NewReader(`{"nodes": [{"id": "stop_1"}]}`))
	assert.ErrorIs(t, err, streetnet.ErrBadID)

	_, err = streetnet.DecodeJSON(strings.NewReader(`{"nodes": [{"id": 1}], "links": [{"source": true, "target": 1}]}`))
	assert.ErrorIs(t, err, streetnet.ErrBadID)
}

func TestGobRoundTripPreservesNetwork(t *testing.T) {
	n, err := streetnet.Load(fixture)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, streetnet.EncodeGob(&buf, n))
	back, err := streetnet.DecodeGob(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(n, back); diff != "" {
		t.Fatalf("gob changed the network (-json +gob):\n%s", diff)
	}
}

func TestConvert(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cache", "campus.gob")

	stats, err := streetnet.Convert(fixture, out)
	require.NoError(t, err)
	assert.Equal(t, 9, stats.Nodes)

	n, err := streetnet.Load(out)
	require.NoError(t, err)
	assert.Equal(t, stats, n.Stats())
}

func TestLoad_Errors(t *testing.T) {
	_, err := streetnet.Load("campus.osm")
	assert.ErrorIs(t, err, streetnet.ErrUnknownFormat)

	_, err = streetnet.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

// SPDX-License-Identifier: MIT
package locations_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusroute/core"
	"github.com/katalvlaran/campusroute/locations"
)

func TestDefault(t *testing.T) {
	tbl := locations.Default()
	require.Equal(t, 33, tbl.Len())

	names := tbl.Names()
	assert.Equal(t, "Humanities Building", names[0])
	assert.Equal(t, "State College Parking Structure", names[len(names)-1])

	c, ok := tbl.Get("McCarthy Hall")
	require.True(t, ok)
	assert.Equal(t, core.Coords{Lat: 33.879528, Lon: -117.885849}, c)

	_, ok = tbl.Get("Bookstore/Titan Shops")
	assert.True(t, ok, "names with slashes survive YAML")
}

func TestTable_Add(t *testing.T) {
	tbl := locations.New()
	require.NoError(t, tbl.Add("Gym", core.Coords{Lat: 33.88, Lon: -117.88}))

	assert.ErrorIs(t, tbl.Add("Gym", core.Coords{Lat: 1, Lon: 1}), locations.ErrDuplicate)
	assert.ErrorIs(t, tbl.Add("  ", core.Coords{}), locations.ErrEmptyName)
	assert.ErrorIs(t, tbl.Add("North Pole+", core.Coords{Lat: 91}), locations.ErrBadCoords)
	assert.ErrorIs(t, tbl.Add("Dateline+", core.Coords{Lon: -181}), locations.ErrBadCoords)
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_OrderIsInsertionOrder(t *testing.T) {
	tbl := locations.New()
	for _, n := range []string{"Zeta Hall", "Alpha Hall", "Mid Hall"} {
		require.NoError(t, tbl.Add(n, core.Coords{Lat: 1, Lon: 2}))
	}
	assert.Equal(t, []string{"Zeta Hall", "Alpha Hall", "Mid Hall"}, tbl.Names())
	assert.Equal(t, "Alpha Hall", tbl.All()[1].Name)
}

func TestTable_Resolve(t *testing.T) {
	tbl := locations.Default()

	got, ok := tbl.Resolve("Pollak Library")
	assert.True(t, ok)
	assert.Equal(t, "Pollak Library", got)

	got, ok = tbl.Resolve("  pollak library ")
	assert.True(t, ok)
	assert.Equal(t, "Pollak Library", got)

	_, ok = tbl.Resolve("Pollak")
	assert.False(t, ok, "prefixes are not resolved")
}

func TestDecode(t *testing.T) {
	doc := `
locations:
  - name: Library
    lat: 33.1
    lon: -117.1
  - name: Gym
    lat: 33.2
    lon: -117.2
`
	tbl, err := locations.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	want := []locations.Location{
		{Name: "Library", Lat: 33.1, Lon: -117.1},
		{Name: "Gym", Lat: 33.2, Lon: -117.2},
	}
	if diff := cmp.Diff(want, tbl.All()); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}

	_, err = locations.Decode(strings.NewReader("locations:\n  - name: A\n    latitude: 1\n"))
	assert.ErrorIs(t, err, locations.ErrDecode, "unknown keys are rejected")

	_, err = locations.Decode(strings.NewReader("locations:\n  - {name: A, lat: 1, lon: 1}\n  - {name: A, lat: 2, lon: 2}\n"))
	assert.ErrorIs(t, err, locations.ErrDuplicate)
}

func TestEncodeLoad(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, locations.Encode(&buf, locations.Default()))

	path := filepath.Join(t.TempDir(), "campus.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	tbl, err := locations.Load(path)
	require.NoError(t, err)
	assert.Equal(t, locations.Default().All(), tbl.All())

	_, err = locations.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// SPDX-License-Identifier: MIT
//
// Package locations holds the table of named campus places that users pick
// as route endpoints.
package locations

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/campusroute/core"
)

// Sentinel errors.
var (
	ErrEmptyName = errors.New("locations: empty location name")
	ErrDuplicate = errors.New("locations: duplicate location name")
	ErrBadCoords = errors.New("locations: coordinates out of range")
	ErrDecode    = errors.New("locations: decode failed")
)

// Location is one named place.
type Location struct {
	Name string  `json:"name" yaml:"name"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lon  float64 `json:"lon" yaml:"lon"`
}

// Coords returns the location position.
func (l Location) Coords() core.Coords {
	return core.Coords{Lat: l.Lat, Lon: l.Lon}
}

// Table maps names to coordinates and remembers insertion order, which is
// the order names are listed to users.
type Table struct {
	m *orderedmap.OrderedMap[string, core.Coords]
}

// New returns an empty table.
func New() *Table {
	return &Table{m: orderedmap.New[string, core.Coords]()}
}

// Add appends a location. Names are case-sensitive and must be unique.
func (t *Table) Add(name string, c core.Coords) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if !validCoords(c) {
		return fmt.Errorf("%w: %q at (%v, %v)", ErrBadCoords, name, c.Lat, c.Lon)
	}
	if _, dup := t.m.Get(name); dup {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	t.m.Set(name, c)

	return nil
}

// Get returns the coordinates of name.
func (t *Table) Get(name string) (core.Coords, bool) {
	return t.m.Get(name)
}

// Resolve maps user input to a table name: an exact match first, then a
// unique case-insensitive match.
func (t *Table) Resolve(input string) (string, bool) {
	if _, ok := t.m.Get(input); ok {
		return input, true
	}
	want := strings.TrimSpace(input)
	hits := lo.Filter(t.Names(), func(n string, _ int) bool {
		return strings.EqualFold(n, want)
	})
	if len(hits) != 1 {
		return "", false
	}

	return hits[0], true
}

// Len returns the number of locations.
func (t *Table) Len() int { return t.m.Len() }

// Names returns location names in table order.
func (t *Table) Names() []string {
	names := make([]string, 0, t.m.Len())
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}

	return names
}

// All returns every location in table order.
func (t *Table) All() []Location {
	out := make([]Location, 0, t.m.Len())
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, Location{Name: p.Key, Lat: p.Value.Lat, Lon: p.Value.Lon})
	}

	return out
}

func validCoords(c core.Coords) bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

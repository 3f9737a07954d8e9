// SPDX-License-Identifier: MIT
package locations

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed csuf.yaml
var csufYAML []byte

type document struct {
	Locations []Location `yaml:"locations"`
}

// Decode reads a YAML location table:
//
//	locations:
//	  - name: Pollak Library
//	    lat: 33.881666
//	    lon: -117.885414
//
// List order becomes table order.
func Decode(r io.Reader) (*Table, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	t := New()
	for _, l := range doc.Locations {
		if err := t.Add(l.Name, l.Coords()); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Load reads a YAML location table from path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("locations: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Default returns the built-in California State University, Fullerton
// table of 33 buildings, parking structures and fields.
func Default() *Table {
	t, err := Decode(bytes.NewReader(csufYAML))
	if err != nil {
		panic(fmt.Sprintf("locations: embedded table: %v", err))
	}

	return t
}

// Encode writes t as YAML in table order.
func Encode(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Locations: t.All()}); err != nil {
		return fmt.Errorf("locations: encode: %w", err)
	}

	return enc.Close()
}

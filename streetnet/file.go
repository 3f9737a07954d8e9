// SPDX-License-Identifier: MIT
package streetnet

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DecodeGob reads a network written by EncodeGob.
func DecodeGob(r io.Reader) (*Network, error) {
	var n Network
	if err := gob.NewDecoder(r).Decode(&n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(n.Nodes) == 0 {
		return nil, ErrEmpty
	}
	if n.Edges == nil {
		n.Edges = make(map[int64][]Edge)
	}

	return &n, nil
}

// EncodeGob writes n in gob form.
func EncodeGob(w io.Writer, n *Network) error {
	if err := gob.NewEncoder(w).Encode(n); err != nil {
		return fmt.Errorf("streetnet: encode gob: %w", err)
	}

	return nil
}

// Load reads a network from path, choosing the decoder by extension:
// ".json" for node-link JSON, ".gob" for the binary cache.
func Load(path string) (*Network, error) {
	var decode func(io.Reader) (*Network, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = DecodeJSON
	case ".gob":
		decode = DecodeGob
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("streetnet: open %s: %w", path, err)
	}
	defer f.Close()

	n, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// SaveGob writes n to path, creating parent directories.
func SaveGob(path string, n *Network) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("streetnet: create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("streetnet: create %s: %w", path, err)
	}
	if err = EncodeGob(f, n); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Convert loads the JSON network at in and writes its gob cache to out.
func Convert(in, out string) (Stats, error) {
	n, err := Load(in)
	if err != nil {
		return Stats{}, err
	}
	if err = SaveGob(out, n); err != nil {
		return Stats{}, err
	}

	return n.Stats(), nil
}

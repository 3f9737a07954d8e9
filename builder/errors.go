// SPDX-License-Identifier: MIT
// Package: campusroute/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the failing step.
//   • Constructors never panic; option constructors panic on nonsense values.

package builder

import (
	"errors"
	"fmt"
)

// ErrNilInput indicates a nil street network or location table.
var ErrNilInput = errors.New("builder: nil input")

// ErrIDCollision indicates a location name equal to an existing vertex id
// (normally a street node id).
var ErrIDCollision = errors.New("builder: location name collides with an existing vertex")

// ErrDanglingEdge indicates a street segment whose endpoint is not a node of
// the network.
var ErrDanglingEdge = errors.New("builder: street segment references unknown node")

// ErrBadLength indicates a street segment with a negative or non-finite length.
var ErrBadLength = errors.New("builder: street segment length must be finite and non-negative")

// ErrNoCandidate indicates a location could not be linked because the
// spatial index holds nothing but the location itself.
var ErrNoCandidate = errors.New("builder: no street node to link location to")

// ErrConstructFailed indicates a nil Constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name and a formatted
// detail, keeping err visible to errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// SPDX-License-Identifier: MIT
package route

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/campusroute/core"
)

// Algorithm names a path engine.
type Algorithm string

// Supported algorithms.
const (
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Dijkstra Algorithm = "dijkstra"
)

// DefaultWalkingSpeed is the average walking speed in meters per second.
const DefaultWalkingSpeed = 1.42

// Sentinel errors.
var (
	// ErrUnknownAlgorithm indicates an algorithm name outside bfs, dfs, dijkstra.
	ErrUnknownAlgorithm = errors.New("route: unknown algorithm")

	// ErrBadWalkingSpeed indicates a non-positive walking speed.
	ErrBadWalkingSpeed = errors.New("route: walking speed must be positive")
)

// Algorithms returns every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(name))); a {
	case BFS, DFS, Dijkstra:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Route is one answered query: the engine Result plus presentation data.
type Route struct {
	Algorithm Algorithm
	From      string
	To        string
	Result    core.Result
	Elapsed   time.Duration

	speed float64
}

// WalkingTime estimates how long the route takes on foot. It returns false
// when the route has no distance (not found, or found by BFS).
func (r Route) WalkingTime() (time.Duration, bool) {
	d, ok := r.Result.Distance()
	if !ok {
		return 0, false
	}
	speed := r.speed
	if speed <= 0 {
		speed = DefaultWalkingSpeed
	}

	return time.Duration(d / speed * float64(time.Second)), true
}

// Option configures Find and Compare.
type Option func(*Options)

// Options holds facade settings.
type Options struct {
	Logger       logr.Logger
	WalkingSpeed float64

	// Observer, if set, is called once per finished query, errors included.
	// Compare calls it from several goroutines.
	Observer func(Route, error)
}

// DefaultOptions returns a discarding logger, DefaultWalkingSpeed and no observer.
func DefaultOptions() Options {
	return Options{
		Logger:       logr.Discard(),
		WalkingSpeed: DefaultWalkingSpeed,
	}
}

// WithLogger sets the logger handed down to the engines.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithWalkingSpeed sets the speed used by Route.WalkingTime, in m/s.
// Non-positive values panic with ErrBadWalkingSpeed.
func WithWalkingSpeed(mps float64) Option {
	return func(o *Options) {
		if !(mps > 0) {
			panic(ErrBadWalkingSpeed.Error())
		}
		o.WalkingSpeed = mps
	}
}

// WithObserver registers fn to be told about every query.
func WithObserver(fn func(Route, error)) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

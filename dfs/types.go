// SPDX-License-Identifier: MIT
//
// Package dfs defines options and errors for depth-first path search and
// reachability over a core.Graph.
package dfs

import (
	"context"
	"errors"

	"github.com/go-logr/logr"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("dfs: neighbor iteration error")

// Option configures optional behavior of DFS and Reachable.
type Option func(*Options)

// Options holds configurable parameters for depth-first search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Logger receives V(1) diagnostics.
	Logger logr.Logger

	// OnVisit, if non-nil, is invoked when a vertex is entered (pre-order).
	// Returning an error aborts the search with that error.
	OnVisit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 enters only the start vertex. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with a background context, a discarding
// logger, no hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   logr.Discard(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext sets the context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits recursion depth. Any negative limit means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

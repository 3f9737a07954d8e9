// SPDX-License-Identifier: MIT
//
// Package builder turns a pre-built street network and a table of named
// campus locations into the frozen core.Graph queried by the path engines.
//
// Pipeline (Build):
//
//   - Streets:           street nodes and segments; segment names label nodes.
//   - Locations:         one vertex per named location, in table order.
//   - LinkLocations:     each location is connected both ways to the nearest
//     vertex found by four corner probes around it, using an R-tree to
//     shortlist candidates and great-circle distance to choose among them.
//   - CheckReachability: locations unreachable from the first location are
//     listed in the Report.
//
// The graph is then validated (core.ErrMalformedGraph) and frozen. Street
// node ids and location names share one namespace; a collision fails the
// build with ErrIDCollision.
//
// Options:
//
//   - WithPadding(deg)     probe square half-width, default 0.0001°.
//   - WithGrowth(f)        probe offset growth on self-hits, default 1.4.
//   - WithMaxRetries(n)    growth steps before falling back, default 16.
//   - WithCandidates(k)    R-tree shortlist size, default 8.
//   - WithLogger(l)        logr diagnostics.
//
// Option constructors panic on meaningless values; constructors return
// sentinel errors.
package builder

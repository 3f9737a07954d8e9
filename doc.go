// SPDX-License-Identifier: MIT

// Package campusroute finds walking routes between named campus locations.
//
// A pre-built street network (streetnet) and a table of named locations
// (locations) are assembled by builder into one frozen, weighted graph
// (core). Three interchangeable engines answer queries over it:
//
//	bfs/      fewest hops, weights ignored
//	dfs/      first path found, cost accumulated along it
//	dijkstra/ minimum total distance in meters
//
// route/ selects an engine by name, times the query and estimates walking
// time; internal/server and cmd/campusroute present the result.
//
//	        Pollak Library
//	              │ 14 m
//	  101 ───231 m─── 102 ───231 m─── 103
//	   │               │               │
//	  278 m           278 m           278 m
//	   │               │               │
//	  104 ─────────── 105 ─────────── 106
//
// Every engine returns core.Result. An endpoint that is not in the graph is
// an error wrapping core.ErrInvalidEndpoint; an unreachable destination is
// a not-found Result with a nil error.
package campusroute

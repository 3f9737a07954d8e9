// SPDX-License-Identifier: MIT
//
// Package route is the query facade used by the CLI and the HTTP API.
//
// It selects an engine by name (bfs, dfs, dijkstra), checks endpoints up
// front, times each call, and converts meters into an estimated walking time.
// Compare runs all three engines concurrently against one frozen graph.
//
//	algo, _ := route.ParseAlgorithm("dijkstra")
//	r, err := route.Find(ctx, g, algo, "Pollak Library", "Titan Gym")
//	if errors.Is(err, core.ErrInvalidEndpoint) {
//		// "invalid location"
//	}
//	if !r.Result.Found {
//		// "no path found"
//	}
//	eta, _ := r.WalkingTime()
package route

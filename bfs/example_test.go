// SPDX-License-Identifier: MIT
package bfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusroute/bfs"
	"github.com/katalvlaran/campusroute/core"
)

// ExampleBFS finds the fewest-hop route between two buildings. Two routes
// exist: Library–Quad–Gym (2 hops, 900 m) and Library–Path1–Path2–Gym
// (3 hops, 300 m). BFS ignores distance and picks the 2-hop route.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.Connect("Library", "Quad", 400)
	_ = g.Connect("Quad", "Gym", 500)
	_ = g.Connect("Library", "Path1", 100)
	_ = g.Connect("Path1", "Path2", 100)
	_ = g.Connect("Path2", "Gym", 100)
	g.Freeze()

	res, err := bfs.BFS(g, "Library", "Gym")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Hops())

	_, hasDistance := res.Distance()
	fmt.Println("has distance:", hasDistance)

	// Output:
	// [Library Quad Gym] 2
	// has distance: false
}

// ExampleBFS_invalidEndpoint shows that a missing vertex is reported, not fatal.
func ExampleBFS_invalidEndpoint() {
	g := core.NewGraph()
	_ = g.Connect("A", "B", 1)

	res, err := bfs.BFS(g, "Z", "A")
	fmt.Println(res.Found, errors.Is(err, core.ErrInvalidEndpoint))

	// Output:
	// false true
}

// SPDX-License-Identifier: MIT
package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusroute/core"
)

// ExampleGraph builds a tiny walking graph, freezes it and queries it.
func ExampleGraph() {
	g := core.NewGraph()
	// street segment, both directions
	_ = g.Connect("101", "102", 40.5)
	// location wired to its nearest street node
	_ = g.Connect("Gordon Hall", "101", 12.25)
	_ = g.SetName("Gordon Hall", "Gordon Hall")

	g.Freeze()
	fmt.Println("vertices:", g.Vertices())

	nbrs, _ := g.Neighbors("101")
	for _, n := range nbrs {
		fmt.Printf("101 → %s (%.2f m)\n", n.ID, n.Weight)
	}

	err := g.AddVertex("103")
	fmt.Println("frozen:", errors.Is(err, core.ErrFrozen))

	// Output:
	// vertices: [101 102 Gordon Hall]
	// 101 → 102 (40.50 m)
	// 101 → Gordon Hall (12.25 m)
	// frozen: true
}

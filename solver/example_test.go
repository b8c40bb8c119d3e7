// SPDX-License-Identifier: MIT

package solver_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/solver"
)

// ExampleSolver_Trail shows a shortest path across a triangle whose direct
// side is more expensive than the detour.
func ExampleSolver_Trail() {
	g := core.NewGraph()
	for _, k := range []string{"A", "B", "C"} {
		_, _ = g.CreateNode(k, core.Point{})
	}
	_, _ = g.CreateEdge(core.Segment{Cost: 1}, "A", "B")
	_, _ = g.CreateEdge(core.Segment{Cost: 1}, "B", "C")
	_, _ = g.CreateEdge(core.Segment{Cost: 5}, "A", "C")

	s, _ := solver.New(g)
	tr, err := s.Trail("A", "C")
	if err != nil {
		panic(err)
	}
	fmt.Printf("cost=%.0f via %v\n", tr.Cost(), tr.Nodes())
	// Output:
	// cost=2 via [A B C]
}

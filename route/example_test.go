// SPDX-License-Identifier: MIT

package route_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/route"
)

// ExampleInspector_Circuit inspects a 3×3 street grid: the four border
// midpoints are odd, two unit detours fix them.
func ExampleInspector_Circuit() {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSpacing(1)}, builder.Grid(3, 3))
	if err != nil {
		panic(err)
	}
	in, err := route.NewInspector(g)
	if err != nil {
		panic(err)
	}
	var odd []string
	for _, n := range in.UnbalancedNodes() {
		odd = append(odd, n.Key)
	}
	plan, err := in.Normalize()
	if err != nil {
		panic(err)
	}
	tour, err := in.Circuit("AA")
	if err != nil {
		panic(err)
	}
	fmt.Println("unbalanced:", odd)
	fmt.Printf("correction: %d pairs, cost %g\n", len(plan.Pairs), plan.TotalCost)
	fmt.Printf("circuit: %d steps, cost %g\n", len(tour.Steps), tour.Cost)
	// Output:
	// unbalanced: [AB AC AF AH]
	// correction: 2 pairs, cost 4
	// circuit: 16 steps, cost 16
}

// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/solver"
)

const (
	A = "A"
	B = "B"
	C = "C"
	D = "D"
	E = "E"
)

const eps = 1e-9

// edgeSpec is a compact fixture row: a–b with cost w.
type edgeSpec struct {
	a, b string
	w    float64
}

// buildGraph creates nodes (positions are irrelevant to the solver) and edges in order.
func buildGraph(t *testing.T, keys []string, edges []edgeSpec) (*core.Graph, []*core.Edge) {
	t.Helper()
	g := core.NewGraph()
	for i, k := range keys {
		_, err := g.CreateNode(k, core.Point{X: float64(i)})
		require.NoError(t, err)
	}
	out := make([]*core.Edge, 0, len(edges))
	for _, es := range edges {
		e, err := g.CreateEdge(core.Segment{Cost: es.w}, es.a, es.b)
		require.NoError(t, err)
		out = append(out, e)
	}

	return g, out
}

func mustSolver(t *testing.T, g *core.Graph) *solver.Solver {
	t.Helper()
	s, err := solver.New(g)
	require.NoError(t, err)

	return s
}

// squarePlusChord is the 4-cycle A-B-C-D-A (unit) with an extra A-C edge of cost 1.
func squarePlusChord(t *testing.T) (*core.Graph, []*core.Edge) {
	t.Helper()

	return buildGraph(t, []string{A, B, C, D}, []edgeSpec{
		{A, B, 1}, {B, C, 1}, {C, D, 1}, {D, A, 1}, {A, C, 1},
	})
}

// mesh is a small irregular connected graph with a parallel edge.
func mesh(t *testing.T) *core.Graph {
	t.Helper()
	g, _ := buildGraph(t, []string{A, B, C, D, E}, []edgeSpec{
		{A, B, 4}, {A, C, 1}, {C, B, 2}, {B, D, 5}, {C, D, 8},
		{D, E, 3}, {C, E, 10}, {B, D, 1.5}, {A, E, 20},
	})

	return g
}

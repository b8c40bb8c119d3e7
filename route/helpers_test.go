// SPDX-License-Identifier: MIT

package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/route"
)

const eps = 1e-9

type edgeSpec struct {
	a, b string
	w    float64
}

func buildGraph(t *testing.T, keys []string, edges []edgeSpec) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, k := range keys {
		_, err := g.CreateNode(k, core.Point{X: float64(i)})
		require.NoError(t, err)
	}
	for _, es := range edges {
		_, err := g.CreateEdge(core.Segment{Cost: es.w}, es.a, es.b)
		require.NoError(t, err)
	}

	return g
}

func mustInspector(t *testing.T, g *core.Graph, opts ...route.Option) *route.Inspector {
	t.Helper()
	in, err := route.NewInspector(g, opts...)
	require.NoError(t, err)

	return in
}

// requireValidCircuit checks that c is a closed walk from start that uses
// every graph edge exactly once plus once more per duplicate step.
func requireValidCircuit(t *testing.T, g *core.Graph, c *route.Circuit, start string) {
	t.Helper()
	require.NotEmpty(t, c.Steps)
	assert.Equal(t, start, c.Steps[0].From, "starts at start")
	assert.Equal(t, start, c.Steps[len(c.Steps)-1].To, "ends at start")

	uses := make(map[string]int)
	dups := make(map[string]int)
	total := 0.0
	for i, s := range c.Steps {
		require.True(t, s.Edge.Connects(s.From, s.To), "step %d does not match its edge", i)
		if i > 0 {
			require.Equal(t, c.Steps[i-1].To, s.From, "step %d is not contiguous", i)
		}
		uses[s.Edge.ID]++
		if s.Duplicate {
			dups[s.Edge.ID]++
		}
		total += s.Edge.Cost()
	}
	for _, e := range g.Edges() {
		assert.Equal(t, 1+dups[e.ID], uses[e.ID], "edge %s", e.ID)
	}
	assert.Len(t, uses, g.EdgeCount(), "no foreign edges")
	assert.InDelta(t, total, c.Cost, eps)
}

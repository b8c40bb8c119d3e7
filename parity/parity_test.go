// SPDX-License-Identifier: MIT

package parity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/parity"
)

func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, k := range []string{"A", "B", "C", "D"} {
		_, err := g.CreateNode(k, core.Point{})
		require.NoError(t, err)
	}
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.CreateEdge(core.Segment{Cost: 1}, p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

func TestNew_NilGraph(t *testing.T) {
	_, err := parity.New(nil)
	require.ErrorIs(t, err, parity.ErrNilGraph)
}

func TestAnalyzer_SquareThenChord(t *testing.T) {
	g := square(t)
	a, err := parity.New(g)
	require.NoError(t, err)

	assert.Empty(t, a.Unbalanced())
	assert.Equal(t, parity.Circuit, a.Kind())

	// the cache must notice the new edge
	_, err = g.CreateEdge(core.Segment{Cost: 1}, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, a.UnbalancedKeys())
	assert.Equal(t, parity.OpenTrail, a.Kind())

	d, err := a.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 3, d)
	d, err = a.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestAnalyzer_ParallelEdgesCountIndividually(t *testing.T) {
	g := square(t)
	_, err := g.CreateEdge(core.Segment{Cost: 1}, "A", "B")
	require.NoError(t, err)
	_, err = g.CreateEdge(core.Segment{Cost: 1}, "C", "D")
	require.NoError(t, err)
	_, err = g.CreateEdge(core.Segment{Cost: 1}, "A", "C")
	require.NoError(t, err)

	a, err := parity.New(g)
	require.NoError(t, err)
	// A:4 B:3 C:4 D:3
	assert.Equal(t, []string{"B", "D"}, a.UnbalancedKeys())
}

func TestAnalyzer_ExactlyOddNodes(t *testing.T) {
	// star with 5 leaves: centre degree 5, leaves degree 1
	g := core.NewGraph()
	_, err := g.CreateNode("O", core.Point{})
	require.NoError(t, err)
	leaves := []string{"L1", "L2", "L3", "L4", "L5"}
	for _, l := range leaves {
		_, err = g.CreateNode(l, core.Point{})
		require.NoError(t, err)
		_, err = g.CreateEdge(core.Segment{Cost: 1}, "O", l)
		require.NoError(t, err)
	}
	a, err := parity.New(g)
	require.NoError(t, err)

	assert.Equal(t, append(leaves, "O"), a.UnbalancedKeys())
	assert.Equal(t, parity.NeedsCorrection, a.Kind())
	assert.Zero(t, len(a.Unbalanced())%2, "odd-degree count is always even")
}

func TestAnalyzer_UnknownNode(t *testing.T) {
	a, err := parity.New(square(t))
	require.NoError(t, err)
	_, err = a.Degree("Z")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "circuit", parity.Circuit.String())
	assert.Equal(t, "open-trail", parity.OpenTrail.String())
	assert.Equal(t, "needs-correction", parity.NeedsCorrection.String())
	assert.Equal(t, "Kind(9)", parity.Kind(9).String())
}

// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

func TestCompact_FoldsPassThroughNode(t *testing.T) {
	g, ab, bc := newPathABC(t)
	v := g.Version()

	stats := g.Compact()
	assert.Equal(t, core.CompactStats{Folded: 1}, stats)
	assert.Greater(t, g.Version(), v)

	assert.Equal(t, []string{KeyA, KeyC}, g.Keys())
	require.Equal(t, 1, g.EdgeCount())
	e, err := g.Edge(ab.ID)
	require.NoError(t, err, "surviving edge keeps its identity")
	_, err = g.Edge(bc.ID)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	assert.True(t, e.Connects(KeyA, KeyC))
	assert.InDelta(t, 5.0, e.Cost(), 1e-12)

	want := []core.Segment{
		seg(pt(0, 0), pt(2, 0), 2),
		seg(pt(2, 0), pt(5, 0), 3),
	}
	if diff := cmp.Diff(want, e.Segments()); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestCompact_ReorientsReversedSegments(t *testing.T) {
	g := core.NewGraph()
	mustNode(t, g, KeyA, pt(0, 0))
	mustNode(t, g, KeyB, pt(2, 0))
	mustNode(t, g, KeyC, pt(5, 0))
	_, err := g.CreateEdge(seg(pt(2, 0), pt(0, 0), 2), KeyB, KeyA)
	require.NoError(t, err)
	_, err = g.CreateEdge(seg(pt(5, 0), pt(2, 0), 3), KeyC, KeyB)
	require.NoError(t, err)

	g.Compact()
	edges := g.Edges()
	require.Len(t, edges, 1)
	e := edges[0]
	assert.Equal(t, KeyA, e.A())
	assert.Equal(t, KeyC, e.B())

	// consecutive segments must share endpoints, starting at A and ending at C
	segs := e.Segments()
	require.Len(t, segs, 2)
	a, _ := g.Node(KeyA)
	c, _ := g.Node(KeyC)
	assert.Equal(t, a.Pos, segs[0].From)
	assert.Equal(t, segs[0].To, segs[1].From)
	assert.Equal(t, c.Pos, segs[1].To)
}

func TestCompact_RemovesIsolatedNodes(t *testing.T) {
	g, _, _ := newPathABC(t)
	mustNode(t, g, KeyX, pt(9, 9))
	mustNode(t, g, KeyY, pt(8, 8))

	stats := g.Compact()
	assert.Equal(t, 2, stats.Isolated)
	assert.False(t, g.HasNode(KeyX))
	assert.False(t, g.HasNode(KeyY))
}

func TestCompact_LeavesDigonAlone(t *testing.T) {
	g := core.NewGraph()
	mustNode(t, g, KeyX, pt(0, 0))
	mustNode(t, g, KeyY, pt(1, 0))
	mustEdge(t, g, KeyX, KeyY, 1)
	mustEdge(t, g, KeyX, KeyY, 2)
	v := g.Version()

	stats := g.Compact()
	assert.Equal(t, core.CompactStats{Skipped: 2}, stats)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, v, g.Version(), "no-op compaction must not invalidate caches")
}

func TestCompact_CycleShrinksToBranchNodes(t *testing.T) {
	// square with a tail D–E; only D keeps degree ≠ 2 after folding
	g := newSquare(t)
	mustNode(t, g, "E", pt(-1, 1))
	mustEdge(t, g, KeyD, "E", 1)
	before := g.TotalCost()

	g.Compact()
	assert.InDelta(t, before, g.TotalCost(), 1e-9, "compaction preserves total cost")
	for _, n := range g.Nodes() {
		if n.Degree() == 2 {
			// surviving degree-2 nodes must close a digon or a loop-like pair
			inc, err := g.Incident(n.Key)
			require.NoError(t, err)
			o1, _ := inc[0].Other(n.Key)
			o2, _ := inc[1].Other(n.Key)
			assert.Equal(t, o1, o2)
		}
	}
	assert.True(t, g.HasNode(KeyD))
	assert.True(t, g.HasNode("E"))
}

func TestCompact_Idempotent(t *testing.T) {
	g := newSquare(t)
	mustNode(t, g, "E", pt(-1, 1))
	mustEdge(t, g, KeyD, "E", 1)
	g.Compact()
	keys, cost, v := g.Keys(), g.TotalCost(), g.Version()

	stats := g.Compact()
	assert.Zero(t, stats.Isolated+stats.Folded)
	assert.Equal(t, keys, g.Keys())
	assert.InDelta(t, cost, g.TotalCost(), 1e-12)
	assert.Equal(t, v, g.Version())
}

func TestCompact_KeepsEarlierTrailsAndWalks(t *testing.T) {
	// A –2– B –3– C –1– D: B and C are folded
	g, ab, _ := newPathABC(t)
	mustNode(t, g, KeyD, pt(6, 0))
	mustEdge(t, g, KeyC, KeyD, 1)

	tr, err := core.NewTrail(KeyA, KeyB, 2, []*core.Edge{ab})
	require.NoError(t, err)
	w, err := core.NewWalk(g, KeyA)
	require.NoError(t, err)
	_, err = w.Step(KeyB)
	require.NoError(t, err)

	stats := g.Compact()
	require.Equal(t, 2, stats.Folded)

	assert.Equal(t, []string{KeyA, KeyB}, tr.Nodes())
	assert.InDelta(t, tr.Cost(), tr.PathCost(), 1e-12)
	assert.Equal(t, KeyA, ab.A())
	assert.Equal(t, KeyB, ab.B())
	assert.InDelta(t, 2.0, ab.Cost(), 1e-12)

	require.True(t, w.Back())
	assert.Equal(t, KeyA, w.Current())

	merged, err := g.Edge(ab.ID)
	require.NoError(t, err)
	assert.NotSame(t, ab, merged)
	assert.True(t, merged.Connects(KeyA, KeyD))
	assert.InDelta(t, 6.0, merged.Cost(), 1e-12)
}

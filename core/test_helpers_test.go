// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for lvroute/core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// Common node keys used across core tests.
const (
	KeyEmpty = ""
	KeyA     = "A"
	KeyB     = "B"
	KeyC     = "C"
	KeyD     = "D"
	KeyX     = "X"
	KeyY     = "Y"
)

// pt is a terse Point constructor.
func pt(x, y float64) core.Point { return core.Point{X: x, Y: y} }

// seg builds a segment with an explicit cost.
func seg(from, to core.Point, cost float64) core.Segment {
	return core.Segment{From: from, To: to, Cost: cost}
}

// mustNode creates a node or fails the test.
func mustNode(t *testing.T, g *core.Graph, key string, pos core.Point) *core.Node {
	t.Helper()
	n, err := g.CreateNode(key, pos)
	require.NoError(t, err, "CreateNode(%q)", key)

	return n
}

// mustEdge creates a straight edge between two existing nodes with the given cost.
func mustEdge(t *testing.T, g *core.Graph, a, b string, cost float64) *core.Edge {
	t.Helper()
	na, err := g.Node(a)
	require.NoError(t, err)
	nb, err := g.Node(b)
	require.NoError(t, err)
	e, err := g.CreateEdge(seg(na.Pos, nb.Pos, cost), a, b)
	require.NoError(t, err, "CreateEdge(%q,%q)", a, b)

	return e
}

// newPathABC builds A(0,0) –2– B(2,0) –3– C(5,0).
func newPathABC(t *testing.T) (*core.Graph, *core.Edge, *core.Edge) {
	t.Helper()
	g := core.NewGraph()
	mustNode(t, g, KeyA, pt(0, 0))
	mustNode(t, g, KeyB, pt(2, 0))
	mustNode(t, g, KeyC, pt(5, 0))
	ab := mustEdge(t, g, KeyA, KeyB, 2)
	bc := mustEdge(t, g, KeyB, KeyC, 3)

	return g, ab, bc
}

// newSquare builds the unit cycle A-B-C-D-A.
func newSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	mustNode(t, g, KeyA, pt(0, 0))
	mustNode(t, g, KeyB, pt(1, 0))
	mustNode(t, g, KeyC, pt(1, 1))
	mustNode(t, g, KeyD, pt(0, 1))
	mustEdge(t, g, KeyA, KeyB, 1)
	mustEdge(t, g, KeyB, KeyC, 1)
	mustEdge(t, g, KeyC, KeyD, 1)
	mustEdge(t, g, KeyD, KeyA, 1)

	return g
}

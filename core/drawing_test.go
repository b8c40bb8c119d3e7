// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

func triangleLines() []core.Line {
	return []core.Line{
		{From: pt(0, 0), To: pt(3, 4)},
		{From: pt(3, 4), To: pt(3, 0)},
		{From: pt(3, 0), To: pt(0, 0)},
	}
}

func TestFromLines_DeduplicatesEndpoints(t *testing.T) {
	g, err := core.FromLines(triangleLines())
	require.NoError(t, err)

	assert.Equal(t, []string{"AA", "AB", "AC"}, g.Keys())
	assert.Equal(t, 3, g.EdgeCount())
	for _, n := range g.Nodes() {
		assert.Equal(t, 2, n.Degree(), "node %s", n.Key)
	}
	n, err := g.Node("AB")
	require.NoError(t, err)
	assert.Equal(t, pt(3, 4), n.Pos)

	costs := make([]float64, 0, 3)
	for _, e := range g.Edges() {
		costs = append(costs, e.Cost())
	}
	assert.InDeltaSlice(t, []float64{5, 4, 3}, costs, 1e-12)
}

func TestFromLines_Options(t *testing.T) {
	g, err := core.FromLines(triangleLines(),
		core.WithLengthScale(2),
		core.WithKeyFn(func(i int) string { return fmt.Sprintf("n%d", i) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n1", "n2"}, g.Keys())
	assert.InDelta(t, 24.0, g.TotalCost(), 1e-12)
}

func TestFromLines_ZeroLengthLine(t *testing.T) {
	lines := append(triangleLines(), core.Line{From: pt(1, 1), To: pt(1, 1)})
	_, err := core.FromLines(lines)
	require.ErrorIs(t, err, core.ErrSelfLoop)
	assert.Contains(t, err.Error(), "line 3")
}

func TestFromLines_Empty(t *testing.T) {
	g, err := core.FromLines(nil)
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
}

func TestDrawingOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { core.WithLengthScale(-1) })
	assert.Panics(t, func() { core.WithLengthScale(math.NaN()) })
	assert.Panics(t, func() { core.WithKeyFn(nil) })
	assert.NotPanics(t, func() { core.WithLengthScale(0) })
}

func TestLetterKey(t *testing.T) {
	cases := map[int]string{
		0:   "AA",
		1:   "AB",
		25:  "AZ",
		26:  "BA",
		675: "ZZ",
		676: "AAA",
		677: "AAB",
	}
	for idx, want := range cases {
		assert.Equal(t, want, core.LetterKey(idx), "LetterKey(%d)", idx)
	}
	assert.Panics(t, func() { core.LetterKey(-1) })

	seen := make(map[string]bool, 2000)
	for i := 0; i < 2000; i++ {
		k := core.LetterKey(i)
		require.False(t, seen[k], "duplicate key %s at %d", k, i)
		seen[k] = true
	}
}

// SPDX-License-Identifier: MIT

package matching_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/matching"
	"github.com/katalvlaran/lvroute/solver"
)

func TestMatch_Preconditions(t *testing.T) {
	m := line(map[string]float64{"A": 0, "B": 1, "C": 2})

	_, err := matching.Match(nil, m)
	require.ErrorIs(t, err, matching.ErrEmptyInput)

	_, err = matching.Match([]string{"A", "B", "C"}, m)
	require.ErrorIs(t, err, matching.ErrOddCardinality)

	_, err = matching.Match([]string{"A", "A"}, m)
	require.ErrorIs(t, err, matching.ErrDuplicateKey)

	_, err = matching.Match([]string{"A", "B"}, nil)
	require.ErrorIs(t, err, matching.ErrNilMetric)

	_, err = matching.Match([]string{"A", "Z"}, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no point "Z"`)
}

func TestMatch_TwoKeys(t *testing.T) {
	m := line(map[string]float64{"A": 0, "B": 3})
	res, err := matching.Match([]string{"B", "A"}, m)
	require.NoError(t, err)
	require.Len(t, res.Pairs, 1)
	assert.Equal(t, "A", res.Pairs[0].A)
	assert.Equal(t, "B", res.Pairs[0].B)
	assert.InDelta(t, 3.0, res.TotalCost, eps)
}

// A=1 B=0 C=2 D=-10: nearest-partner greedy pairs A with B and strands D.
func greedyTrap() *planeMetric {
	return line(map[string]float64{"A": 1, "B": 0, "C": 2, "D": -10})
}

func TestMatch_BestFirstAvoidsGreedyTrap(t *testing.T) {
	res, err := matching.Match(greedyTrap().keys(), greedyTrap())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, res.Keys())
	assert.InDelta(t, 11.0, res.TotalCost, eps)
}

func TestMatch_GreedyAndImprovement(t *testing.T) {
	res, err := matching.Match(greedyTrap().keys(), greedyTrap(), matching.WithStrategy(matching.Greedy))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Keys())
	assert.InDelta(t, 13.0, res.TotalCost, eps)

	res, err = matching.Match(greedyTrap().keys(), greedyTrap(),
		matching.WithStrategy(matching.Greedy), matching.WithImprovement())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, res.Keys())
	assert.InDelta(t, 11.0, res.TotalCost, eps)
}

func TestMatch_PartitionProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 2; k <= 14; k += 2 {
		m := &planeMetric{pos: make(map[string]core.Point, k)}
		for i := 0; i < k; i++ {
			m.pos[fmt.Sprintf("N%02d", i)] = core.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
		}
		keys := m.keys()

		for _, strategy := range []matching.Strategy{matching.BestFirst, matching.Greedy} {
			base, err := matching.Match(keys, m, matching.WithStrategy(strategy))
			require.NoError(t, err)
			improved, err := matching.Match(keys, m, matching.WithStrategy(strategy), matching.WithImprovement())
			require.NoError(t, err)

			for _, res := range []*matching.Result{base, improved} {
				assert.ElementsMatch(t, keys, res.Keys(), "k=%d %s: every key exactly once", k, strategy)
				require.Len(t, res.Pairs, k/2)
				var sum float64
				for _, p := range res.Pairs {
					c, _ := m.Cost(p.A, p.B)
					assert.True(t, almost(c, p.Cost))
					sum += p.Cost
				}
				assert.True(t, almost(sum, res.TotalCost))
			}
			assert.LessOrEqual(t, improved.TotalCost, base.TotalCost+eps, "k=%d %s", k, strategy)
		}
	}
}

func TestMatch_Deterministic(t *testing.T) {
	m := line(map[string]float64{"P": 5, "Q": 1, "R": 9, "S": 2, "T": 7, "U": 0})
	first, err := matching.Match([]string{"P", "Q", "R", "S", "T", "U"}, m)
	require.NoError(t, err)
	again, err := matching.Match([]string{"U", "T", "S", "R", "Q", "P"}, m)
	require.NoError(t, err)
	assert.Equal(t, first.Keys(), again.Keys())
}

func TestMatch_WithSolverTrails(t *testing.T) {
	// 4-cycle A-B-C-D-A plus chord A-C: A and C are odd
	g := core.NewGraph()
	for _, k := range []string{"A", "B", "C", "D"} {
		_, err := g.CreateNode(k, core.Point{})
		require.NoError(t, err)
	}
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}} {
		_, err := g.CreateEdge(core.Segment{Cost: 1}, p[0], p[1])
		require.NoError(t, err)
	}
	s, err := solver.New(g)
	require.NoError(t, err)

	res, err := matching.Match([]string{"A", "C"}, s)
	require.NoError(t, err)
	require.Len(t, res.Pairs, 1)
	p := res.Pairs[0]
	assert.Equal(t, "A", p.A)
	assert.Equal(t, "C", p.B)
	assert.InDelta(t, 1.0, p.Cost, eps)
	require.NotNil(t, p.Trail)
	assert.Equal(t, 1, p.Trail.Len())
	assert.InDelta(t, p.Cost, p.Trail.PathCost(), eps)

	// metric failures surface unchanged underneath the wrap
	_, err = matching.Match([]string{"A", "Z"}, s)
	assert.True(t, errors.Is(err, solver.ErrUnknownNode))
}

func TestWithStrategy_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { matching.WithStrategy(matching.Strategy(42)) })
	assert.Equal(t, "greedy", matching.Greedy.String())
	assert.Equal(t, "best-first", matching.BestFirst.String())
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []matching.Strategy{matching.BestFirst, matching.Greedy} {
		got, err := matching.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := matching.ParseStrategy("annealing")
	require.ErrorIs(t, err, matching.ErrUnknownStrategy)
	assert.Equal(t, "unknown", matching.Strategy(9).String())
}

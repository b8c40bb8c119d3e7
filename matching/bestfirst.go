// SPDX-License-Identifier: MIT
// File: bestfirst.go
// Role: Best-first search over partial matchings and its greedy lower bound.

package matching

import (
	"math"
	"sort"
)

// lowerBound estimates the cost of pairing a node subset by a greedy
// globally-cheapest-pair sweep. Pairs are sorted once; each call is O(k²).
type lowerBound struct {
	pairs []candidate
	taken []bool
}

type candidate struct {
	i, j int
	cost float64
}

func newLowerBound(c [][]float64) *lowerBound {
	k := len(c)
	lb := &lowerBound{
		pairs: make([]candidate, 0, k*(k-1)/2),
		taken: make([]bool, k),
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			lb.pairs = append(lb.pairs, candidate{i: i, j: j, cost: c[i][j]})
		}
	}
	sort.SliceStable(lb.pairs, func(a, b int) bool { return lb.pairs[a].cost < lb.pairs[b].cost })

	return lb
}

// estimate sums the greedy pairing of every node not excluded and not equal
// to extra (extra < 0 means none). An odd leftover node contributes nothing.
func (lb *lowerBound) estimate(excluded []bool, extra int) float64 {
	copy(lb.taken, excluded)
	if extra >= 0 {
		lb.taken[extra] = true
	}
	var sum float64
	for _, p := range lb.pairs {
		if lb.taken[p.i] || lb.taken[p.j] {
			continue
		}
		lb.taken[p.i], lb.taken[p.j] = true, true
		sum += p.cost
	}

	return sum
}

// bestFirstPairs closes every node once in order of minimal f = g + h and
// pairs consecutive nodes of the closing order.
//
// A closed node x re-scores every unclosed y with g(x) + c(x,y), replacing
// any earlier g(y) even when it was lower. Keeping the lower g (a g-only
// comparison) gave the cheaper matching less often than always replacing.
func bestFirstPairs(c [][]float64, lb *lowerBound) [][2]int {
	k := len(c)
	var (
		open   = make([]bool, k)
		closed = make([]bool, k)
		g      = make([]float64, k)
		f      = make([]float64, k)
		order  = make([]int, 0, k)
	)
	open[0] = true
	f[0] = lb.estimate(closed, -1)

	for pass := 0; len(order) < k; pass++ {
		x, best := -1, math.Inf(1)
		for i := 0; i < k; i++ {
			if open[i] && (x < 0 || f[i] < best) {
				x, best = i, f[i]
			}
		}
		open[x], closed[x] = false, true
		order = append(order, x)

		propose := pass%2 == 0
		for y := 0; y < k; y++ {
			if closed[y] {
				continue
			}
			open[y] = true
			g[y] = g[x] + c[x][y]
			if propose {
				f[y] = g[y] + lb.estimate(closed, y)
			} else {
				f[y] = g[y] + lb.estimate(closed, -1)
			}
		}
	}

	pairs := make([][2]int, 0, k/2)
	for i := 0; i+1 < k; i += 2 {
		pairs = append(pairs, [2]int{order[i], order[i+1]})
	}

	return pairs
}

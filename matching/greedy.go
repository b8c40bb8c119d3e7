// SPDX-License-Identifier: MIT
// File: greedy.go
// Role: Nearest-partner greedy pairing.

package matching

import "math"

// greedyPairs repeatedly takes the first remaining node and pairs it with
// its nearest remaining partner (first on ties).
//
// Complexity: O(k²).
func greedyPairs(c [][]float64) [][2]int {
	remaining := make([]int, len(c))
	for i := range remaining {
		remaining[i] = i
	}
	pairs := make([][2]int, 0, len(c)/2)
	for len(remaining) > 1 {
		u := remaining[0]
		remaining = remaining[1:]
		bestIdx, bestD := 0, math.Inf(1)
		for i, v := range remaining {
			if d := c[u][v]; d < bestD {
				bestD, bestIdx = d, i
			}
		}
		pairs = append(pairs, [2]int{u, remaining[bestIdx]})
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return pairs
}

// SPDX-License-Identifier: MIT
// File: improve.go
// Role: Pair-swap local search over a complete pairing.

package matching

// improveEps keeps floating-point noise from triggering endless swaps.
const improveEps = 1e-12

// improvePairs rewires pairs in place, first improvement, until no swap of
// two pairs lowers the total. Returns the number of accepted swaps.
//
// For pairs (a,b),(c,d): Δ1 = c(a,c)+c(b,d) − c(a,b) − c(c,d) and
// Δ2 = c(a,d)+c(b,c) − c(a,b) − c(c,d); the smaller negative Δ wins.
func improvePairs(c [][]float64, pairs [][2]int) int {
	swaps := 0
	for improved := true; improved; {
		improved = false
		for p := 0; p < len(pairs); p++ {
			for q := p + 1; q < len(pairs); q++ {
				a, b := pairs[p][0], pairs[p][1]
				x, y := pairs[q][0], pairs[q][1]
				cur := c[a][b] + c[x][y]
				d1 := c[a][x] + c[b][y] - cur
				d2 := c[a][y] + c[b][x] - cur
				switch {
				case d1 < -improveEps && d1 <= d2:
					pairs[p], pairs[q] = [2]int{a, x}, [2]int{b, y}
				case d2 < -improveEps:
					pairs[p], pairs[q] = [2]int{a, y}, [2]int{b, x}
				default:
					continue
				}
				swaps++
				improved = true
			}
		}
	}

	return swaps
}

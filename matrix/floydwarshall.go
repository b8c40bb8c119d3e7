// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Next-hop tracking for path reconstruction.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshallNext = "FloydWarshallNext"


// NoHop marks an undefined next-hop entry.
const NoHop = -1

// InitNextHop returns the initial row-major next-hop table for d:
// next[i*n+j] = j when d(i,j) is finite, NoHop otherwise.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n^2).
func InitNextHop(d *Dense) ([]int, error) {
	if err := ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("InitNextHop: %w", err)
	}
	n := d.r
	next := make([]int, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if math.IsInf(d.data[i*n+j], 1) {
				next[i*n+j] = NoHop
			} else {
				next[i*n+j] = j
			}
		}
	}

	return next, nil
}

// FloydWarshallNext computes all-pairs shortest paths in-place on d and
// maintains a next-hop table (see InitNextHop): whenever i→j improves
// through k, next(i,j) becomes next(i,k), the first hop of the i→k leg.
//
// Path reconstruction: starting at i, repeatedly move to next(cur, j) until
// cur == j. Every hop is between directly connected indices.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (including len(next) != n*n),
// ErrNegativeCycle.
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshallNext(d *Dense, next []int) error {
	if err := ValidateSquare(d); err != nil {
		return fmt.Errorf("%s: %w", opFloydWarshallNext, err)
	}
	if len(next) != d.r*d.c {
		return fmt.Errorf("%s: next len=%d want %d: %w", opFloydWarshallNext, len(next), d.r*d.c, ErrDimensionMismatch)
	}
	relax(d, next)

	return checkDiagonal(opFloydWarshallNext, d)
}

// relax runs the k → i → j triple loop.
// Strict improvement only, so ties keep the earlier (direct) value.
func relax(d *Dense, next []int) {
	n := d.r
	data := d.data
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					next[baseI+j] = next[baseI+k]
				}
			}
		}
	}
}

func checkDiagonal(op string, d *Dense) error {
	n := d.r
	for i := 0; i < n; i++ {
		if d.data[i*n+i] < 0 {
			return fmt.Errorf("%s: d[%d,%d]=%g: %w", op, i, i, d.data[i*n+i], ErrNegativeCycle)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_cycle.go: Cycle(n) and Path(n).
//
// Contract:
//   • Cycle: n ≥ 3, lines i → (i+1)%n around a regular n-gon.
//   • Path:  n ≥ 2, lines i → i+1 along the x axis.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle draws the regular n-gon C_n.
func Cycle(n int) Constructor {
	return func(d *[]core.Line, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		pts := polygon(n, cfg)
		for i := 0; i < n; i++ {
			appendLine(d, pts[i], pts[(i+1)%n])
		}

		return nil
	}
}

// Path draws P_n: n points spaced cfg.spacing apart on the x axis.
func Path(n int) Constructor {
	return func(d *[]core.Line, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		prev := cfg.place(0, 0)
		for i := 1; i < n; i++ {
			cur := cfg.place(float64(i)*cfg.spacing, 0)
			appendLine(d, prev, cur)
			prev = cur
		}

		return nil
	}
}

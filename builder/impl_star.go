// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_star.go: Star(n) and Wheel(n).
//
// Contract:
//   • Star:  n ≥ 1 leaves on a circle of radius cfg.spacing; n spokes.
//   • Wheel: n ≥ 3 rim points (regular n-gon); n rim lines, then n spokes.
//
// The centre is drawn first so it is always the first node FromLines names.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarLeaves = 1
	minWheelRim   = 3
)

// Star draws K_{1,n}.
func Star(n int) Constructor {
	return func(d *[]core.Line, cfg builderConfig) error {
		if n < minStarLeaves {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarLeaves, ErrTooFewVertices)
		}
		centre := cfg.place(0, 0)
		for _, p := range ring(n, cfg.spacing, cfg) {
			appendLine(d, centre, p)
		}

		return nil
	}
}

// Wheel draws W_n: an n-gon rim plus a spoke from the centre to each rim point.
func Wheel(n int) Constructor {
	return func(d *[]core.Line, cfg builderConfig) error {
		if n < minWheelRim {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelRim, ErrTooFewVertices)
		}
		centre := cfg.place(0, 0)
		rim := polygon(n, cfg)
		for i := 0; i < n; i++ {
			appendLine(d, centre, rim[i])
		}
		for i := 0; i < n; i++ {
			appendLine(d, rim[i], rim[(i+1)%n])
		}

		return nil
	}
}

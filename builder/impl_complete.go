// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_complete.go: Complete(n) and RandomSparse(n, p) on n-gon vertices.
//
// Lines are emitted for i<j in lexicographic (i, j) order. RandomSparse
// draws one RNG sample per candidate chord in that same order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	minCompleteNodes   = 2
	probMin            = 0.0
	probMax            = 1.0
)

// Complete draws K_n with vertices on a regular n-gon (a segment for n = 2).
func Complete(n int) Constructor {
	return func(d *[]core.Line, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		pts := polygon(n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				appendLine(d, pts[i], pts[j])
			}
		}

		return nil
	}
}

// RandomSparse keeps each chord of K_n with probability p. An RNG is
// required unless p is exactly 0 or 1. Vertices left without a line do not
// appear in the drawing.
func RandomSparse(n int, p float64) Constructor {
	return func(d *[]core.Line, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minCompleteNodes, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		pts := polygon(n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == probMax || (p > probMin && cfg.rng.Float64() < p) {
					appendLine(d, pts[i], pts[j])
				}
			}
		}

		return nil
	}
}

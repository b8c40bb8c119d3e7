// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go: Grid(rows, cols): a rows×cols lattice, step cfg.spacing.
//
// Emission order: row-major; for each cell the right line, then the down line.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid draws a rows×cols lattice with (rows-1)·cols + rows·(cols-1) lines.
func Grid(rows, cols int) Constructor {
	return func(d *[]core.Line, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		pts := make([][]core.Point, rows)
		for r := 0; r < rows; r++ {
			pts[r] = make([]core.Point, cols)
			for c := 0; c < cols; c++ {
				pts[r][c] = cfg.place(float64(c)*cfg.spacing, float64(r)*cfg.spacing)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					appendLine(d, pts[r][c], pts[r][c+1])
				}
				if r+1 < rows {
					appendLine(d, pts[r][c], pts[r+1][c])
				}
			}
		}

		return nil
	}
}

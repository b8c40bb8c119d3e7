// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// polygon returns n rim points of a regular n-gon with side cfg.spacing,
// centred at the origin, vertex 0 at angle 0, counter-clockwise.
func polygon(n int, cfg builderConfig) []core.Point {
	r := cfg.spacing / (2 * math.Sin(math.Pi/float64(n)))

	return ring(n, r, cfg)
}

// ring returns n points evenly spaced on a circle of radius r.
func ring(n int, r float64, cfg builderConfig) []core.Point {
	pts := make([]core.Point, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = cfg.place(r*math.Cos(a), r*math.Sin(a))
	}

	return pts
}

func appendLine(d *[]core.Line, a, b core.Point) {
	*d = append(*d, core.Line{From: a, To: b})
}

// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvroute/core"
)

// DefaultSpacing is the default side length / lattice step.
const DefaultSpacing = 10.0

type builderConfig struct {
	origin  core.Point
	spacing float64
	jitter  float64
	rng     *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{spacing: DefaultSpacing}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a shape-local position to the drawing, applying origin and
// jitter. Jitter consumes the RNG, so call order matters for determinism.
func (c builderConfig) place(x, y float64) core.Point {
	if c.jitter > 0 && c.rng != nil {
		x += (c.rng.Float64()*2 - 1) * c.jitter
		y += (c.rng.Float64()*2 - 1) * c.jitter
	}

	return core.Point{X: c.origin.X + x, Y: c.origin.Y + y}
}

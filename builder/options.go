// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvroute/core"
)

// BuilderOption mutates the builder configuration.
type BuilderOption func(*builderConfig)

// WithOrigin translates every shape by p.
func WithOrigin(p core.Point) BuilderOption {
	return func(c *builderConfig) {
		c.origin = p
	}
}

// WithSpacing sets the side length / lattice step. Panics unless s > 0 and finite.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithJitter displaces each vertex by up to ±amount on both axes.
// Requires an RNG (WithSeed/WithRand); panics on negative or NaN amount.
func WithJitter(amount float64) BuilderOption {
	if !(amount >= 0) {
		panic("builder: WithJitter(amount<0)")
	}
	return func(c *builderConfig) {
		c.jitter = amount
	}
}

// WithRand sets the RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed sets a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

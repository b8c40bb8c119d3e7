// SPDX-License-Identifier: MIT
// File: types.go
// Role: Errors, Metric contract, result types and options.

package matching

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvroute/core"
)

var (
	// ErrEmptyInput indicates an empty key set; the graph is already balanced.
	ErrEmptyInput = errors.New("matching: empty input")

	// ErrOddCardinality indicates an odd number of keys, which cannot be paired.
	ErrOddCardinality = errors.New("matching: odd number of keys")

	// ErrDuplicateKey indicates the same key listed twice.
	ErrDuplicateKey = errors.New("matching: duplicate key")

	// ErrNilMetric indicates a nil Metric.
	ErrNilMetric = errors.New("matching: metric is nil")

	// ErrUnknownStrategy indicates a strategy name ParseStrategy does not know.
	ErrUnknownStrategy = errors.New("matching: unknown strategy")
)

// Metric supplies pairwise shortest-path costs and trails.
// *solver.Solver satisfies it.
type Metric interface {
	Cost(from, to string) (float64, error)
	Trail(from, to string) (*core.Trail, error)
}

// Pair is one committed pairing and the trail that reconnects it.
type Pair struct {
	A, B  string
	Cost  float64
	Trail *core.Trail
}

// Result lists the pairs in decision order and their summed cost.
type Result struct {
	Pairs     []Pair
	TotalCost float64
}

// Keys returns every paired key in pair order (A then B).
func (r *Result) Keys() []string {
	out := make([]string, 0, 2*len(r.Pairs))
	for _, p := range r.Pairs {
		out = append(out, p.A, p.B)
	}

	return out
}

// Strategy selects the pairing algorithm.
type Strategy int

const (
	// BestFirst is the best-first search over partial matchings.
	BestFirst Strategy = iota
	// Greedy pairs each node with its nearest free partner.
	Greedy
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case BestFirst:
		return "best-first"
	case Greedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a String() value back to its Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "best-first":
		return BestFirst, nil
	case "greedy":
		return Greedy, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Option configures Match.
type Option func(*config)

type config struct {
	strategy Strategy
	improve  bool
	log      zerolog.Logger
}

func defaultConfig() config {
	return config{strategy: BestFirst, log: zerolog.Nop()}
}

// WithStrategy selects the pairing algorithm. Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	if s != BestFirst && s != Greedy {
		panic("matching: WithStrategy: unknown strategy")
	}

	return func(c *config) { c.strategy = s }
}

// WithImprovement enables the pair-swap pass.
func WithImprovement() Option {
	return func(c *config) { c.improve = true }
}

// WithLogger injects a logger for search diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.log = logger }
}

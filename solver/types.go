// SPDX-License-Identifier: MIT
// File: types.go
// Role: Sentinel errors, options and the Solver type.

package solver

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/matrix"
)

var (
	// ErrNilGraph is returned by New when the graph pointer is nil.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrInvalidArgument groups bad-input errors raised while loading edges.
	ErrInvalidArgument = errors.New("solver: invalid argument")

	// ErrInvalidCost indicates an edge cost that is negative, NaN or +Inf.
	ErrInvalidCost = fmt.Errorf("%w: edge cost must be finite and non-negative", ErrInvalidArgument)

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = fmt.Errorf("%w: self-loop edge", ErrInvalidArgument)

	// ErrUnknownNode indicates a query key absent from the solved node set.
	ErrUnknownNode = errors.New("solver: unknown node")

	// ErrDisconnected indicates an isolated node or an unreachable pair.
	ErrDisconnected = errors.New("solver: graph is disconnected")

	// ErrNegativeCycle indicates a relaxed self-distance below zero.
	ErrNegativeCycle = errors.New("solver: negative cycle")
)

// Option configures a Solver.
type Option func(*Solver)

// WithLogger injects a logger for build/solve diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Solver) { s.log = logger }
}

// Solver caches shortest-path tables for a single graph.
type Solver struct {
	g   *core.Graph
	log zerolog.Logger
	t   *table
}

// table is the per-version cache: built once from the graph, solved lazily.
type table struct {
	version uint64
	keys    []string
	index   map[string]int

	dist *matrix.Dense // nil for an empty graph
	next []int
	rep  []*core.Edge // cheapest direct edge per ordered pair, row-major

	parallel map[[2]int][]*core.Edge // keyed by (min, max) index
	degree   []int

	solved bool
	err    error // outcome of solve+validate, cached with the table
}

// New binds a Solver to g. Nothing is computed until the first query.
func New(g *core.Graph, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := &Solver{g: g, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

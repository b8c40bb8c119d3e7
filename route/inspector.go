// SPDX-License-Identifier: MIT
// File: inspector.go
// Role: Inspector construction and the query/normalize surface.

package route

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/matching"
	"github.com/katalvlaran/lvroute/parity"
	"github.com/katalvlaran/lvroute/solver"
)

var (
	// ErrNilGraph is returned by NewInspector when the graph pointer is nil.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrEmptyGraph is returned by Circuit on a graph without edges.
	ErrEmptyGraph = errors.New("route: graph has no edges")
)

// Option configures an Inspector.
type Option func(*Inspector)

// WithLogger injects a logger shared with the solver and the matcher.
func WithLogger(logger zerolog.Logger) Option {
	return func(in *Inspector) { in.log = logger }
}

// WithMatchOptions forwards options to matching.Match (strategy, improvement).
func WithMatchOptions(opts ...matching.Option) Option {
	return func(in *Inspector) { in.matchOpts = append(in.matchOpts, opts...) }
}

// Inspector answers route-inspection queries for one graph.
type Inspector struct {
	g         *core.Graph
	solver    *solver.Solver
	parity    *parity.Analyzer
	matchOpts []matching.Option
	log       zerolog.Logger
}

// NewInspector binds an Inspector to g.
func NewInspector(g *core.Graph, opts ...Option) (*Inspector, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	in := &Inspector{g: g, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(in)
	}
	var err error
	if in.solver, err = solver.New(g, solver.WithLogger(in.log)); err != nil {
		return nil, err
	}
	if in.parity, err = parity.New(g); err != nil {
		return nil, err
	}

	return in, nil
}

// Solver exposes the underlying shortest-path solver.
func (in *Inspector) Solver() *solver.Solver { return in.solver }

// Cost returns the shortest-path cost between two nodes.
func (in *Inspector) Cost(from, to string) (float64, error) {
	return in.solver.Cost(from, to)
}

// Trail returns the shortest trail between two nodes.
func (in *Inspector) Trail(from, to string) (*core.Trail, error) {
	return in.solver.Trail(from, to)
}

// UnbalancedNodes returns the odd-degree nodes sorted by key.
func (in *Inspector) UnbalancedNodes() []*core.Node {
	return in.parity.Unbalanced()
}

// Normalize pairs the odd-degree nodes. The graph must validate first
// (connected, no isolated node). A balanced graph yields an empty result
// with zero cost rather than matching.ErrEmptyInput.
func (in *Inspector) Normalize() (*matching.Result, error) {
	if err := in.solver.Solve(); err != nil {
		return nil, err
	}
	keys := in.parity.UnbalancedKeys()
	if len(keys) == 0 {
		return &matching.Result{}, nil
	}
	opts := append([]matching.Option{matching.WithLogger(in.log)}, in.matchOpts...)

	return matching.Match(keys, in.solver, opts...)
}

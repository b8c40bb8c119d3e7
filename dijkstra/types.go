// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes. core.Graph already guarantees non-negative, finite
// edge costs, so no weight pre-scan is needed. The package serves as the
// single-source reference next to the dense all-pairs solver: it answers
// one-off queries on graphs that the solver would reject (disconnected ones)
// and cross-checks solver results in tests.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E)   (lazy decrease-key heap)
//
// Options:
//
//	– Source:           key of the starting node (must be non-empty and present).
//	– ReturnPath:       if true, return the predecessor-edge map.
//	– MaxDistance:      nodes farther than this are not explored.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source key is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source node does not exist in the graph.
//	– ErrUnreachable     from Trail when the target was not reached.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("AA"), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tr, err := dijkstra.Trail("AA", "AF", dist, prev)
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node key is empty.
	ErrEmptySource = errors.New("dijkstra: source node key is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source node does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrUnreachable indicates that Trail was asked for a target that the
	// run never reached (disconnected, capped by MaxDistance or blocked).
	ErrUnreachable = errors.New("dijkstra: target not reached")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, negative or NaN,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node key (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor-edge map; otherwise prev is nil.
// MaxDistance      – optional cap on distances to explore. Default +Inf (no cap).
// InfEdgeThreshold – edges with cost ≥ this threshold are impassable. Default +Inf.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node key.
func Source(key string) Option {
	return func(o *Options) {
		o.Source = key
	}
}

// WithReturnPath enables generation of the predecessor-edge map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics on negative or NaN values.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost at or above which edges are skipped.
// Panics on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for the given source with no caps and no
// path output.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

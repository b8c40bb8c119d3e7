// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Point, Segment, Node, Edge, Graph declarations, sentinel errors and
//       the NewGraph constructor.

package core

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument is the umbrella for malformed input (empty key,
	// negative cost, self-loop). Specific sentinels below wrap it.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrEmptyKey indicates that a node key is the empty string.
	ErrEmptyKey = fmt.Errorf("%w: node key is empty", ErrInvalidArgument)

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = fmt.Errorf("%w: self-loop edge", ErrInvalidArgument)

	// ErrNegativeCost indicates a segment with a negative or NaN cost.
	ErrNegativeCost = fmt.Errorf("%w: negative segment cost", ErrInvalidArgument)

	// ErrDuplicateKey indicates that a node with the same key already exists.
	ErrDuplicateKey = errors.New("core: duplicate node key")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNodeInUse indicates a removal of a node that still has incident edges.
	ErrNodeInUse = errors.New("core: node has incident edges")

	// ErrNotAdjacent indicates a walk step that does not start at the current node.
	ErrNotAdjacent = errors.New("core: not adjacent to walk position")
)

// Point is a position in the drawing plane.
type Point struct {
	X float64
	Y float64
}

// Segment is one straight piece of drawn line. Edges are built from one or
// more segments; compaction concatenates them.
type Segment struct {
	// From and To are the drawn endpoints, oriented in traversal order
	// from the owning edge's A side towards its B side.
	From Point
	To   Point

	// Cost is the non-negative contribution of this segment to its edge.
	Cost float64
}

// Node is a graph vertex.
//
// Identity is by Key (and Pos); never compare *Node pointers across
// package boundaries.
type Node struct {
	// Key uniquely identifies this Node within its Graph.
	Key string

	// Pos is the drawing position.
	Pos Point

	// edges holds incident edge IDs in insertion order.
	edges []string
}

// Edge is an undirected connection between two distinct nodes.
//
// A and B are interchangeable; they only fix the orientation of Segments.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// a and b are the endpoint node keys; a != b. Read them through A and B:
	// the nodes' incidence lists depend on them.
	a string
	b string

	// segments are ordered from A to B.
	segments []Segment

	// cost caches the sum of segment costs.
	cost float64

	// seq is the creation sequence number; Edges() orders by it.
	seq uint64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger attaches a structured logger. The default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) GraphOption {
	return func(g *Graph) { g.log = logger }
}

// Graph is the in-memory multigraph.
//
// Storage:
//
//	nodes[key]  → *Node
//	edges[id]   → *Edge
//	version      monotonic mutation counter
type Graph struct {
	nodes      map[string]*Node
	edges      map[string]*Edge
	nextEdgeID uint64
	version    uint64

	log zerolog.Logger
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

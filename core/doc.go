// Package core provides the mutable graph model behind lvroute: a weighted,
// undirected multigraph derived from a planar line drawing.
//
// A Graph G = (V,E) holds:
//
//   - Nodes identified by a non-empty string key and a 2-D position.
//     Each Node keeps an ordered list of incident edge IDs (the inverse
//     index of edge membership).
//   - Edges between two distinct nodes. Parallel edges are allowed, self-loops
//     are not. An Edge carries an ordered list of Segments; its cost is always
//     the sum of the segment costs.
//
// Core Methods:
//
//	// Node lifecycle
//	CreateNode(key string, pos Point) (*Node, error)  // O(1)
//	RemoveNode(key string) error                       // O(1), node must be isolated
//
//	// Edge lifecycle
//	CreateEdge(seg Segment, a, b string) (*Edge, error) // O(1)
//	RemoveEdge(id string) error                         // O(deg)
//
//	// Queries
//	Node(key) / Edge(id) / Nodes() / Edges() / TotalCost() / Version()
//	FindNearestNode(p, max) / FindNearestEdge(p, max)   // O(V) / O(S)
//
//	// Structural simplification
//	Compact() CompactStats                              // single pass, O(V)
//
// Drawing import:
//
//	FromLines(lines, opts...) builds a Graph from raw drawn lines, merging
//	endpoints at identical positions and naming nodes "AA", "AB", ...
//
// Version:
//
//	Every structural mutation increments Graph.Version(). Derived caches
//	(solver, parity) compare the version they were built from and rebuild
//	when it differs.
//
// Concurrency:
//
//	Graph performs no locking. All mutation and query calls on one Graph
//	(and on solvers bound to it) must be serialized by the caller.
//
// Errors:
//
//	ErrInvalidArgument – umbrella for ErrEmptyKey, ErrSelfLoop, ErrNegativeCost.
//	ErrDuplicateKey    – CreateNode with a key already present.
//	ErrNodeNotFound    – referenced node does not exist.
//	ErrEdgeNotFound    – referenced edge does not exist.
//	ErrNodeInUse       – RemoveNode on a node that still has incident edges.
//	ErrNotAdjacent     – Walk step that does not leave the current node.
package core

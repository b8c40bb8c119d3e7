// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries, TotalCost, Version.
//
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic ("e" + decimal).

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = 'e'

// CreateEdge adds a new edge a–b made of a single segment.
//
// Parallel edges are allowed: a second call with the same endpoints adds
// another edge rather than merging.
//
// Errors:
//   - ErrEmptyKey if a or b is empty.
//   - ErrSelfLoop if a == b.
//   - ErrNegativeCost if seg.Cost is negative, NaN or +Inf.
//   - ErrNodeNotFound if either endpoint is not registered.
//
// Complexity: O(1) amortized.
func (g *Graph) CreateEdge(seg Segment, a, b string) (*Edge, error) {
	return g.createEdge([]Segment{seg}, a, b)
}

// CreateEdgePath adds a new edge a–b made of several segments ordered from a
// to b. An empty segment list yields a zero-cost edge.
func (g *Graph) CreateEdgePath(segs []Segment, a, b string) (*Edge, error) {
	return g.createEdge(segs, a, b)
}

func (g *Graph) createEdge(segs []Segment, a, b string) (*Edge, error) {
	if a == "" || b == "" {
		return nil, ErrEmptyKey
	}
	if a == b {
		return nil, fmt.Errorf("CreateEdge(%q,%q): %w", a, b, ErrSelfLoop)
	}
	var total float64
	for i, s := range segs {
		if !validCost(s.Cost) {
			return nil, fmt.Errorf("CreateEdge(%q,%q): segment %d cost=%g: %w", a, b, i, s.Cost, ErrNegativeCost)
		}
		total += s.Cost
	}
	na, ok := g.nodes[a]
	if !ok {
		return nil, fmt.Errorf("CreateEdge(%q,%q): %w", a, b, ErrNodeNotFound)
	}
	nb, ok := g.nodes[b]
	if !ok {
		return nil, fmt.Errorf("CreateEdge(%q,%q): %w", a, b, ErrNodeNotFound)
	}

	id, seq := nextEdgeID(g)
	e := &Edge{
		ID:       id,
		a:        a,
		b:        b,
		segments: append([]Segment(nil), segs...),
		cost:     total,
		seq:      seq,
	}
	g.edges[id] = e
	na.edges = append(na.edges, id)
	nb.edges = append(nb.edges, id)
	g.touch()

	return e, nil
}

// RemoveEdge deletes the edge and unregisters it from both endpoints.
// Complexity: O(deg(A)+deg(B)).
func (g *Graph) RemoveEdge(id string) error {
	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("RemoveEdge(%q): %w", id, ErrEdgeNotFound)
	}
	if n := g.nodes[e.a]; n != nil {
		n.detach(id)
	}
	if n := g.nodes[e.b]; n != nil {
		n.detach(id)
	}
	delete(g.edges, id)
	g.touch()

	return nil
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id string) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("Edge(%q): %w", id, ErrEdgeNotFound)
	}

	return e, nil
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// Incident returns the edges attached to key in incidence order.
func (g *Graph) Incident(key string) ([]*Edge, error) {
	n, err := g.Node(key)
	if err != nil {
		return nil, err
	}
	out := make([]*Edge, 0, len(n.edges))
	for _, id := range n.edges {
		out = append(out, g.edges[id])
	}

	return out, nil
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// TotalCost returns the sum of all edge costs.
// Complexity: O(E).
func (g *Graph) TotalCost() float64 {
	var sum float64
	for _, e := range g.Edges() {
		sum += e.cost
	}

	return sum
}

// Version returns the mutation counter. It changes on every structural update.
func (g *Graph) Version() uint64 { return g.version }

// Cost returns the sum of the segment costs.
func (e *Edge) Cost() float64 { return e.cost }

// Segments returns a copy of the segments ordered from A to B.
func (e *Edge) Segments() []Segment {
	return append([]Segment(nil), e.segments...)
}

// Other returns the endpoint opposite to key, or false if key is not an endpoint.
func (e *Edge) Other(key string) (string, bool) {
	switch key {
	case e.a:
		return e.b, true
	case e.b:
		return e.a, true
	default:
		return "", false
	}
}

// Connects reports whether the edge joins a and b in either orientation.
func (e *Edge) Connects(a, b string) bool {
	return (e.a == a && e.b == b) || (e.a == b && e.b == a)
}

// String implements fmt.Stringer as "[A]-[B]".
func (e *Edge) String() string { return "[" + e.a + "]-[" + e.b + "]" }

// A returns the endpoint the segments start from.
func (e *Edge) A() string { return e.a }

// B returns the endpoint the segments end at.
func (e *Edge) B() string { return e.b }

// touch records a structural mutation.
func (g *Graph) touch() { g.version++ }

// nextEdgeID returns a new unique textual edge ID and its sequence number.
func nextEdgeID(g *Graph) (string, uint64) {
	g.nextEdgeID++
	n := g.nextEdgeID
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf), n
}

// validCost reports whether c is a finite non-negative number.
func validCost(c float64) bool {
	return c >= 0 && !math.IsInf(c, 1)
}

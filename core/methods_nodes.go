// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes sorted by key ascending.

package core

import (
	"fmt"
	"sort"
)

// CreateNode registers a new node at pos.
//
// Errors:
//   - ErrEmptyKey: key == "".
//   - ErrDuplicateKey: a node with key already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) CreateNode(key string, pos Point) (*Node, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if _, exists := g.nodes[key]; exists {
		return nil, fmt.Errorf("CreateNode(%q): %w", key, ErrDuplicateKey)
	}
	n := &Node{Key: key, Pos: pos}
	g.nodes[key] = n
	g.touch()

	return n, nil
}

// RemoveNode deletes an isolated node.
//
// The node must have no incident edges; remove or fold them first.
//
// Errors:
//   - ErrEmptyKey, ErrNodeNotFound, ErrNodeInUse.
//
// Complexity: O(1).
func (g *Graph) RemoveNode(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	n, ok := g.nodes[key]
	if !ok {
		return fmt.Errorf("RemoveNode(%q): %w", key, ErrNodeNotFound)
	}
	if len(n.edges) > 0 {
		return fmt.Errorf("RemoveNode(%q): degree %d: %w", key, len(n.edges), ErrNodeInUse)
	}
	delete(g.nodes, key)
	g.touch()

	return nil
}

// Node returns the node registered under key.
func (g *Graph) Node(key string) (*Node, error) {
	n, ok := g.nodes[key]
	if !ok {
		return nil, fmt.Errorf("Node(%q): %w", key, ErrNodeNotFound)
	}

	return n, nil
}

// HasNode reports whether key is registered (empty key ⇒ false).
func (g *Graph) HasNode(key string) bool {
	_, ok := g.nodes[key]

	return ok && key != ""
}

// Nodes returns all nodes sorted by key.
// Complexity: O(V log V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// Keys returns all node keys sorted ascending.
func (g *Graph) Keys() []string {
	keys := make([]string, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Degree returns the number of edges incident to key, parallel edges
// counted individually.
func (g *Graph) Degree(key string) (int, error) {
	n, err := g.Node(key)
	if err != nil {
		return 0, err
	}

	return len(n.edges), nil
}

// Degree returns the number of incident edges.
func (n *Node) Degree() int { return len(n.edges) }

// EdgeIDs returns a copy of the incident edge IDs in insertion order.
func (n *Node) EdgeIDs() []string {
	return append([]string(nil), n.edges...)
}

// String implements fmt.Stringer as "[key]".
func (n *Node) String() string { return "[" + n.Key + "]" }

// detach removes one occurrence of edgeID from the incidence list.
func (n *Node) detach(edgeID string) bool {
	for i, id := range n.edges {
		if id == edgeID {
			n.edges = append(n.edges[:i], n.edges[i+1:]...)
			return true
		}
	}

	return false
}

// replace swaps oldID for newID in place, keeping the incidence order.
func (n *Node) replace(oldID, newID string) bool {
	for i, id := range n.edges {
		if id == oldID {
			n.edges[i] = newID
			return true
		}
	}

	return false
}

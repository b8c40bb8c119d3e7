// SPDX-License-Identifier: MIT

// Package parity classifies the nodes of a core.Graph by degree parity.
//
// An undirected graph has an Eulerian circuit iff it is connected and every
// node has even degree; it has an open Eulerian trail iff exactly two nodes
// have odd degree. The odd-degree set returned by Unbalanced is therefore
// the deficiency set that route inspection has to pair up.
//
// The Analyzer caches its result and recomputes it whenever the graph's
// Version changes. No locking; callers serialise mutation and queries.
package parity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// ErrNilGraph is returned by New when the graph pointer is nil.
var ErrNilGraph = errors.New("parity: graph is nil")

// Kind is the Eulerian classification implied by the odd-degree count.
type Kind int

const (
	// Circuit: every node has even degree.
	Circuit Kind = iota
	// OpenTrail: exactly two odd-degree nodes, the trail endpoints.
	OpenTrail
	// NeedsCorrection: more than two odd-degree nodes.
	NeedsCorrection
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Circuit:
		return "circuit"
	case OpenTrail:
		return "open-trail"
	case NeedsCorrection:
		return "needs-correction"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Analyzer reports degree parity for one graph.
type Analyzer struct {
	g       *core.Graph
	version uint64
	valid   bool
	odd     []*core.Node
}

// New binds an Analyzer to g.
func New(g *core.Graph) (*Analyzer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Analyzer{g: g}, nil
}

// Degree returns the number of edges incident to key, parallel edges
// counted individually.
func (a *Analyzer) Degree(key string) (int, error) {
	d, err := a.g.Degree(key)
	if err != nil {
		return 0, fmt.Errorf("parity: %w", err)
	}

	return d, nil
}

// Unbalanced returns the odd-degree nodes sorted by key. The slice is a copy.
func (a *Analyzer) Unbalanced() []*core.Node {
	a.refresh()

	return append([]*core.Node(nil), a.odd...)
}

// UnbalancedKeys returns the keys of Unbalanced.
func (a *Analyzer) UnbalancedKeys() []string {
	a.refresh()
	keys := make([]string, len(a.odd))
	for i, n := range a.odd {
		keys[i] = n.Key
	}

	return keys
}

// Kind classifies the graph by its odd-degree count. Connectivity is not
// checked here; see solver.Solver.Solve.
func (a *Analyzer) Kind() Kind {
	a.refresh()
	switch len(a.odd) {
	case 0:
		return Circuit
	case 2:
		return OpenTrail
	default:
		return NeedsCorrection
	}
}

func (a *Analyzer) refresh() {
	v := a.g.Version()
	if a.valid && a.version == v {
		return
	}
	a.odd = a.odd[:0]
	for _, n := range a.g.Nodes() {
		if n.Degree()%2 != 0 {
			a.odd = append(a.odd, n)
		}
	}
	a.version, a.valid = v, true
}

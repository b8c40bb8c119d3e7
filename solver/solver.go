// SPDX-License-Identifier: MIT
// File: solver.go
// Role: Table build, Floyd–Warshall solve, validation and queries.

package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/matrix"
)

// Solve builds and solves the tables for the current graph version and
// validates connectivity. Queries call it implicitly; calling it directly
// surfaces validation errors early.
func (s *Solver) Solve() error {
	t, err := s.table()
	if err != nil {
		return err
	}

	return s.solve(t)
}

// Cost returns the shortest-path cost between from and to.
//
// Errors: ErrUnknownNode, ErrDisconnected, ErrNegativeCycle.
func (s *Solver) Cost(from, to string) (float64, error) {
	t, i, j, err := s.pair(from, to)
	if err != nil {
		return 0, err
	}

	return t.at(i, j), nil
}

// Trail reconstructs the shortest path from → to by following the next-hop
// chain and collecting the direct-hop edge of every step. from == to yields
// a zero-cost trail with an empty path.
func (s *Solver) Trail(from, to string) (*core.Trail, error) {
	t, i, j, err := s.pair(from, to)
	if err != nil {
		return nil, err
	}
	n := len(t.keys)
	path := make([]*core.Edge, 0, 4)
	for cur := i; cur != j; {
		nxt := t.next[cur*n+j]
		if nxt == matrix.NoHop || len(path) >= n {
			// validated tables never get here
			return nil, fmt.Errorf("Trail(%q,%q): broken next-hop chain at %q: %w", from, to, t.keys[cur], ErrDisconnected)
		}
		path = append(path, t.rep[cur*n+nxt])
		cur = nxt
	}

	return core.NewTrail(from, to, t.at(i, j), path)
}

// Parallel returns every direct edge between a and b in creation order.
// The cheapest one (first on ties) is the hop used by Trail.
func (s *Solver) Parallel(a, b string) ([]*core.Edge, error) {
	t, err := s.table()
	if err != nil {
		return nil, err
	}
	i, j, err := t.lookup(a, b)
	if err != nil {
		return nil, err
	}

	return append([]*core.Edge(nil), t.parallel[pairKey(i, j)]...), nil
}

// Multiplicity returns the number of direct edges between a and b.
func (s *Solver) Multiplicity(a, b string) (int, error) {
	p, err := s.Parallel(a, b)

	return len(p), err
}

// Degree returns the incident edge count of key as loaded by the solver.
func (s *Solver) Degree(key string) (int, error) {
	t, err := s.table()
	if err != nil {
		return 0, err
	}
	i, ok := t.index[key]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", key, ErrUnknownNode)
	}

	return t.degree[i], nil
}

// Keys returns the node keys in matrix index order (sorted).
func (s *Solver) Keys() ([]string, error) {
	t, err := s.table()
	if err != nil {
		return nil, err
	}

	return append([]string(nil), t.keys...), nil
}

// CostMatrix returns the solved key order and a copy of the relaxed cost
// matrix. An empty graph yields (nil, nil, nil).
func (s *Solver) CostMatrix() ([]string, *matrix.Dense, error) {
	if err := s.Solve(); err != nil {
		return nil, nil, err
	}
	if s.t.dist == nil {
		return nil, nil, nil
	}

	return append([]string(nil), s.t.keys...), s.t.dist.Clone(), nil
}

// pair resolves both keys, solves, and returns the table with indices.
// Unknown keys are reported before validation errors.
func (s *Solver) pair(from, to string) (*table, int, int, error) {
	t, err := s.table()
	if err != nil {
		return nil, 0, 0, err
	}
	i, j, err := t.lookup(from, to)
	if err != nil {
		return nil, 0, 0, err
	}
	if err = s.solve(t); err != nil {
		return nil, 0, 0, err
	}

	return t, i, j, nil
}

// table returns the cache for the current graph version, rebuilding it
// when the graph has changed since the last build.
func (s *Solver) table() (*table, error) {
	v := s.g.Version()
	if s.t != nil && s.t.version == v {
		return s.t, nil
	}
	t, err := s.build(v)
	if err != nil {
		s.t = nil
		return nil, err
	}
	s.t = t

	return t, nil
}

func (s *Solver) build(version uint64) (*table, error) {
	keys := s.g.Keys()
	n := len(keys)
	t := &table{
		version:  version,
		keys:     keys,
		index:    make(map[string]int, n),
		parallel: make(map[[2]int][]*core.Edge),
		degree:   make([]int, n),
	}
	for i, k := range keys {
		t.index[k] = i
	}
	if n > 0 {
		dist, err := matrix.NewDistance(n)
		if err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
		t.dist = dist
		t.rep = make([]*core.Edge, n*n)
	}

	edges := s.g.Edges()
	for _, e := range edges {
		if err := t.addEdge(e, t.index[e.A()], t.index[e.B()], e.Cost()); err != nil {
			return nil, fmt.Errorf("build: edge %s %s: %w", e.ID, e, err)
		}
	}
	s.log.Debug().
		Uint64("version", version).
		Int("nodes", n).
		Int("edges", len(edges)).
		Msg("solver table built")

	return t, nil
}

// addEdge loads one graph edge into the table. The direct hop for a pair is
// the cheapest parallel edge; earlier edges win ties.
func (t *table) addEdge(e *core.Edge, from, to int, cost float64) error {
	if from == to {
		return ErrSelfLoop
	}
	if !(cost >= 0) || math.IsInf(cost, 1) {
		return fmt.Errorf("cost=%g: %w", cost, ErrInvalidCost)
	}
	cur, err := t.dist.At(from, to)
	if err != nil {
		return err
	}
	t.degree[from]++
	t.degree[to]++
	k := pairKey(from, to)
	t.parallel[k] = append(t.parallel[k], e)

	n := len(t.keys)
	if cost < cur {
		if err := t.dist.Set(from, to, cost); err != nil {
			return err
		}
		if err := t.dist.Set(to, from, cost); err != nil {
			return err
		}
		t.rep[from*n+to] = e
		t.rep[to*n+from] = e
	}

	return nil
}

// solve runs Floyd–Warshall and validation once per table; the outcome,
// success or failure, is cached until the graph changes.
func (s *Solver) solve(t *table) error {
	if t.solved {
		return t.err
	}
	t.solved = true
	if t.dist == nil {
		return nil
	}

	next, err := matrix.InitNextHop(t.dist)
	if err == nil {
		err = matrix.FloydWarshallNext(t.dist, next)
	}
	switch {
	case errors.Is(err, matrix.ErrNegativeCycle):
		t.err = fmt.Errorf("solve: %v: %w", err, ErrNegativeCycle)
	case err != nil:
		t.err = fmt.Errorf("solve: %w", err)
	default:
		t.next = next
		t.err = t.validate()
	}
	if t.err != nil {
		s.log.Debug().Err(t.err).Int("nodes", len(t.keys)).Msg("solver validation failed")
	} else {
		s.log.Debug().Int("nodes", len(t.keys)).Msg("solver tables solved")
	}

	return t.err
}

// symmetryEps bounds |dist(i,j) - dist(j,i)| after relaxation.
const symmetryEps = 1e-9

// validate requires every node to have an incident edge, every pair to be
// reachable and the relaxed matrix to be symmetric.
func (t *table) validate() error {
	for i, d := range t.degree {
		if d == 0 {
			return fmt.Errorf("node %q is isolated: %w", t.keys[i], ErrDisconnected)
		}
	}
	n := len(t.keys)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.IsInf(t.at(i, j), 1) {
				return fmt.Errorf("no path %q→%q: %w", t.keys[i], t.keys[j], ErrDisconnected)
			}
		}
	}
	if err := matrix.ValidateSymmetric(t.dist, symmetryEps); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	return nil
}

func (t *table) lookup(a, b string) (int, int, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", a, ErrUnknownNode)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", b, ErrUnknownNode)
	}

	return i, j, nil
}

// at reads dist(i,j); indices come from the table's own index map.
func (t *table) at(i, j int) float64 {
	v, _ := t.dist.At(i, j)

	return v
}

func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}

	return [2]int{i, j}
}

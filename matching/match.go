// SPDX-License-Identifier: MIT
// File: match.go
// Role: Match entry point: validation, cost table, strategy dispatch, trails.

package matching

import (
	"fmt"
	"sort"
)

// Match pairs keys using costs from metric.
//
// Keys are sorted first, so the result does not depend on input order.
//
// Errors:
//   - ErrEmptyInput, ErrOddCardinality, ErrDuplicateKey, ErrNilMetric.
//   - metric errors, wrapped with the failing pair.
func Match(keys []string, metric Metric, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	k := len(keys)
	if k == 0 {
		return nil, ErrEmptyInput
	}
	if k%2 != 0 {
		return nil, fmt.Errorf("%d keys: %w", k, ErrOddCardinality)
	}
	if metric == nil {
		return nil, ErrNilMetric
	}
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	for i := 1; i < k; i++ {
		if sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("%q: %w", sorted[i], ErrDuplicateKey)
		}
	}

	c, err := costTable(sorted, metric)
	if err != nil {
		return nil, err
	}

	var pairs [][2]int
	switch cfg.strategy {
	case Greedy:
		pairs = greedyPairs(c)
	default:
		pairs = bestFirstPairs(c, newLowerBound(c))
	}
	swaps := 0
	if cfg.improve {
		swaps = improvePairs(c, pairs)
	}

	res := &Result{Pairs: make([]Pair, 0, len(pairs))}
	for _, p := range pairs {
		a, b := sorted[p[0]], sorted[p[1]]
		tr, err := metric.Trail(a, b)
		if err != nil {
			return nil, fmt.Errorf("matching: trail %q→%q: %w", a, b, err)
		}
		res.Pairs = append(res.Pairs, Pair{A: a, B: b, Cost: c[p[0]][p[1]], Trail: tr})
		res.TotalCost += c[p[0]][p[1]]
	}
	cfg.log.Debug().
		Str("strategy", cfg.strategy.String()).
		Int("keys", k).
		Int("swaps", swaps).
		Float64("total", res.TotalCost).
		Msg("matching done")

	return res, nil
}

// costTable reads the symmetric k×k cost table from metric.
func costTable(keys []string, metric Metric) ([][]float64, error) {
	k := len(keys)
	c := make([][]float64, k)
	for i := range c {
		c[i] = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			v, err := metric.Cost(keys[i], keys[j])
			if err != nil {
				return nil, fmt.Errorf("matching: cost %q→%q: %w", keys[i], keys[j], err)
			}
			c[i][j], c[j][i] = v, v
		}
	}

	return c, nil
}

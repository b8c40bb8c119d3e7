// SPDX-License-Identifier: MIT
//
// File: drawing.go
// Role: build a Graph from a raw line drawing.

package core

import "fmt"

// DefaultLengthScale converts drawn length to cost when no scale is given.
const DefaultLengthScale = 1.0

// Line is one drawn stroke between two points.
type Line struct {
	From Point
	To   Point
}

// DrawingOption configures FromLines.
type DrawingOption func(*drawingConfig)

type drawingConfig struct {
	scale     float64
	keyFn     func(int) string
	graphOpts []GraphOption
}

// WithLengthScale sets the factor applied to drawn lengths to obtain costs.
// Panics on a negative or NaN factor.
func WithLengthScale(f float64) DrawingOption {
	if !(f >= 0) {
		panic(fmt.Sprintf("core: WithLengthScale(%g)", f))
	}
	return func(c *drawingConfig) { c.scale = f }
}

// WithKeyFn overrides the node naming scheme (index → key). Panics on nil.
func WithKeyFn(fn func(int) string) DrawingOption {
	if fn == nil {
		panic("core: WithKeyFn(nil)")
	}
	return func(c *drawingConfig) { c.keyFn = fn }
}

// WithGraphOptions forwards options to the underlying NewGraph call.
func WithGraphOptions(opts ...GraphOption) DrawingOption {
	return func(c *drawingConfig) { c.graphOpts = append(c.graphOpts, opts...) }
}

// FromLines builds a Graph from a line drawing.
//
// Endpoints at identical positions become one node; nodes are created in
// order of first appearance and named by the key function (LetterKey by
// default). Every line becomes its own edge, so overlapping strokes yield
// parallel edges.
//
// Errors:
//   - ErrSelfLoop (wrapped with the line index) for a zero-length line.
func FromLines(lines []Line, opts ...DrawingOption) (*Graph, error) {
	cfg := drawingConfig{scale: DefaultLengthScale, keyFn: LetterKey}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := NewGraph(cfg.graphOpts...)
	byPos := make(map[Point]string, len(lines)+1)
	nodeFor := func(p Point) (string, error) {
		if key, ok := byPos[p]; ok {
			return key, nil
		}
		key := cfg.keyFn(len(byPos))
		if _, err := g.CreateNode(key, p); err != nil {
			return "", err
		}
		byPos[p] = key

		return key, nil
	}

	for i, l := range lines {
		a, err := nodeFor(l.From)
		if err != nil {
			return nil, fmt.Errorf("FromLines: line %d: %w", i, err)
		}
		b, err := nodeFor(l.To)
		if err != nil {
			return nil, fmt.Errorf("FromLines: line %d: %w", i, err)
		}
		if _, err = g.CreateEdge(NewSegment(l.From, l.To, cfg.scale), a, b); err != nil {
			return nil, fmt.Errorf("FromLines: line %d: %w", i, err)
		}
	}
	g.log.Debug().Int("lines", len(lines)).Int("nodes", g.NodeCount()).Msg("graph built from drawing")

	return g, nil
}

// LetterKey names node idx with upper-case letters, at least two wide:
// 0→"AA", 1→"AB", 675→"ZZ", 676→"AAA".
// Panics if idx < 0.
func LetterKey(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterKey: idx must be ≥ 0, got %d", idx))
	}
	width, span := 2, 26*26
	for idx >= span {
		idx -= span
		width++
		span *= 26
	}
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('A' + idx%26)
		idx /= 26
	}

	return string(buf)
}

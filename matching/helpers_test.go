// SPDX-License-Identifier: MIT

package matching_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// planeMetric measures Euclidean distance between named points. It has no
// graph behind it, so Trail returns nil.
type planeMetric struct {
	pos   map[string]core.Point
	calls int
}

func (m *planeMetric) Cost(a, b string) (float64, error) {
	pa, ok := m.pos[a]
	if !ok {
		return 0, fmt.Errorf("no point %q", a)
	}
	pb, ok := m.pos[b]
	if !ok {
		return 0, fmt.Errorf("no point %q", b)
	}
	m.calls++

	return pa.DistanceTo(pb), nil
}

func (m *planeMetric) Trail(string, string) (*core.Trail, error) { return nil, nil }

// line places keys on the x axis.
func line(xs map[string]float64) *planeMetric {
	m := &planeMetric{pos: make(map[string]core.Point, len(xs))}
	for k, x := range xs {
		m.pos[k] = core.Point{X: x}
	}

	return m
}

func (m *planeMetric) keys() []string {
	out := make([]string, 0, len(m.pos))
	for k := range m.pos {
		out = append(out, k)
	}

	return out
}

const eps = 1e-9

func almost(a, b float64) bool { return math.Abs(a-b) <= eps }

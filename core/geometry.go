// SPDX-License-Identifier: MIT
//
// File: geometry.go
// Role: planar helpers for Point and Segment (lengths, distances, orientation).

package core

import "math"

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// NewSegment builds a Segment whose cost is its drawn length multiplied by scale.
func NewSegment(from, to Point, scale float64) Segment {
	return Segment{From: from, To: to, Cost: from.DistanceTo(to) * scale}
}

// Length returns the drawn length of s (independent of Cost).
func (s Segment) Length() float64 {
	return s.From.DistanceTo(s.To)
}

// Reverse returns s with its endpoints swapped; Cost is unchanged.
func (s Segment) Reverse() Segment {
	return Segment{From: s.To, To: s.From, Cost: s.Cost}
}

// DistanceTo returns the distance from p to the closest point of s.
//
// The projection parameter is clamped to [0,1], so points beyond either end
// measure to that endpoint. Degenerate segments measure to From.
func (s Segment) DistanceTo(p Point) float64 {
	dx, dy := s.To.X-s.From.X, s.To.Y-s.From.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return s.From.DistanceTo(p)
	}
	u := ((p.X-s.From.X)*dx + (p.Y-s.From.Y)*dy) / l2
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}

	return p.DistanceTo(Point{X: s.From.X + u*dx, Y: s.From.Y + u*dy})
}

// reverseSegments returns a reversed copy of segs with every segment flipped.
func reverseSegments(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[len(segs)-1-i] = s.Reverse()
	}

	return out
}

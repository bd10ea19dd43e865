package exact

import "fmt"

// Segment is a straight line segment from P0 to P1 with exact endpoints.
// A segment is x-monotone by construction (any vertical line meets it at
// most once, or it is itself vertical).
type Segment struct {
	P0, P1 Point
}

// NewSegment creates a segment between two points.
func NewSegment(p0, p1 Point) Segment {
	return Segment{P0: p0, P1: p1}
}

// Source returns the start point of the segment.
func (s Segment) Source() Point { return s.P0 }

// Target returns the end point of the segment.
func (s Segment) Target() Point { return s.P1 }

// DirectedRight reports whether the segment's traversal from source to
// target goes left-to-right, vertical segments ordering by y.
func (s Segment) DirectedRight() bool {
	return s.P0.CmpXY(s.P1) < 0
}

// SupportingLine returns the line through the segment's endpoints.
func (s Segment) SupportingLine() Line {
	return LineThrough(s.P0, s.P1)
}

// String formats the segment for diagnostics.
func (s Segment) String() string {
	return fmt.Sprintf("seg %v -> %v", s.P0, s.P1)
}

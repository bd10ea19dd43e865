package offset

import (
	"fmt"

	"github.com/gogpu/offset/exact"
)

// Polygon is a closed contour given as a cyclic sequence of exact vertices,
// in either orientation. It must be simple (non-self-intersecting); that
// precondition is the caller's responsibility and is not checked here.
type Polygon []exact.Point

// Orientation reports the polygon's winding: +1 counterclockwise,
// -1 clockwise, 0 degenerate.
func (p Polygon) Orientation() int {
	return exact.Orientation(p)
}

// validate rejects polygons the offset pass cannot traverse: too few
// vertices, coinciding consecutive vertices, or zero signed area.
func (p Polygon) validate() error {
	if len(p) < 3 {
		return fmt.Errorf("%w: %d vertices", ErrDegeneratePolygon, len(p))
	}
	for i := range p {
		if p[i].Eq(p[(i+1)%len(p)]) {
			return fmt.Errorf("%w: repeated vertex %v at position %d",
				ErrDegeneratePolygon, p[i], i)
		}
	}
	if p.Orientation() == 0 {
		return fmt.Errorf("%w: zero signed area", ErrDegeneratePolygon)
	}
	return nil
}

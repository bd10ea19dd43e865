// Package arc provides the circular-arc curve kernel used by the offset
// computation: counterclockwise arcs with exact rational centers, radii and
// endpoints, and their decomposition into x-monotone pieces.
//
// Arc endpoints must lie exactly on the supporting circle. The offset
// construction guarantees this: axis-aligned translates and points built
// through the tangent-half-angle substitution satisfy the circle equation
// with no error. Because the radius is rational, the circle's leftmost and
// rightmost points are rational too, so every split point of the
// decomposition is representable exactly.
package arc

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/gogpu/offset/exact"
)

// ErrOffCircle reports an arc endpoint that does not lie on the supporting
// circle. This indicates a broken invariant upstream, not a recoverable
// condition.
var ErrOffCircle = errors.New("arc: endpoint not on supporting circle")

// Arc is a circular arc of the given radius around Center, traversed
// counterclockwise from Source to Target. An arc with Source == Target is
// degenerate (a single point), not a full circle.
type Arc struct {
	Center exact.Point
	Radius *big.Rat
	Source exact.Point
	Target exact.Point
}

// New creates a counterclockwise arc and verifies that both endpoints lie
// exactly on the circle of the given radius around center.
func New(center exact.Point, radius *big.Rat, source, target exact.Point) (Arc, error) {
	r2 := new(big.Rat).Mul(radius, radius)
	if center.Dist2(source).Cmp(r2) != 0 {
		return Arc{}, fmt.Errorf("%w: source %v, center %v, radius %s",
			ErrOffCircle, source, center, radius.RatString())
	}
	if center.Dist2(target).Cmp(r2) != 0 {
		return Arc{}, fmt.Errorf("%w: target %v, center %v, radius %s",
			ErrOffCircle, target, center, radius.RatString())
	}
	return Arc{Center: center, Radius: radius, Source: source, Target: target}, nil
}

// IsDegenerate reports whether the arc has coinciding endpoints and hence
// no extent.
func (a Arc) IsDegenerate() bool {
	return a.Source.Eq(a.Target)
}

// Circle regions in counterclockwise order, starting at the rightmost
// point. Upper and lower refer to y relative to the center.
const (
	regRightPole = 0
	regUpper     = 1
	regLeftPole  = 2
	regLower     = 3
)

// region classifies a point on the circle around c.
func region(c, p exact.Point) int {
	switch p.Y.Cmp(c.Y) {
	case 1:
		return regUpper
	case -1:
		return regLower
	}
	if p.X.Cmp(c.X) > 0 {
		return regRightPole
	}
	return regLeftPole
}

// XMonotone splits the arc at the circle's leftmost and rightmost points
// into at most three x-monotone pieces, in traversal order. A degenerate
// arc yields no pieces.
func (a Arc) XMonotone() []XArc {
	if a.IsDegenerate() {
		return nil
	}
	rightPole := exact.Pt(new(big.Rat).Add(a.Center.X, a.Radius), a.Center.Y)
	leftPole := exact.Pt(new(big.Rat).Sub(a.Center.X, a.Radius), a.Center.Y)

	var out []XArc
	cur := a.Source
	for !a.sameStretch(cur, a.Target) {
		pole := leftPole
		if onLowerStretch(region(a.Center, cur)) {
			pole = rightPole
		}
		out = append(out, a.piece(cur, pole))
		cur = pole
	}
	return append(out, a.piece(cur, a.Target))
}

// onLowerStretch reports whether a point in the given region starts a
// counterclockwise run across the lower half of the circle.
func onLowerStretch(reg int) bool {
	return reg == regLeftPole || reg == regLower
}

// sameStretch reports whether the counterclockwise run from p reaches q
// without crossing the leftmost or rightmost point of the circle (reaching
// a pole exactly at q counts as staying within the stretch).
func (a Arc) sameStretch(p, q exact.Point) bool {
	rp, rq := region(a.Center, p), region(a.Center, q)
	if onLowerStretch(rp) {
		// Run ends at the right pole.
		if rq == regRightPole {
			return true
		}
		// Within the lower half a counterclockwise run moves rightward.
		return rq == regLower && (rp == regLeftPole || q.X.Cmp(p.X) > 0)
	}
	// Run across the upper half, ending at the left pole.
	if rq == regLeftPole {
		return true
	}
	return rq == regUpper && (rp == regRightPole || q.X.Cmp(p.X) < 0)
}

// piece builds the x-monotone sub-arc from p to q. The pair is guaranteed
// to lie within one closed half of the circle.
func (a Arc) piece(p, q exact.Point) XArc {
	rp, rq := region(a.Center, p), region(a.Center, q)
	lower := rp == regLower || rq == regLower ||
		(rp == regLeftPole && rq == regRightPole)
	return XArc{
		Center:   a.Center,
		Radius:   a.Radius,
		P0:       p,
		P1:       q,
		dirRight: lower,
	}
}

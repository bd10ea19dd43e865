package offset

import (
	"fmt"
	"math"
	"math/big"

	"github.com/gogpu/offset/exact"
)

// offsetEdge carries the result of offsetting a single polygon edge: the
// approximated offset points of its two endpoints and the one or two
// x-monotone segments connecting them.
type offsetEdge struct {
	op1, op2 exact.Point
	segs     []exact.Segment
}

// offsetSingleEdge computes the offset of the directed edge v1 -> v2 at
// distance r to its right-hand side (the outside, for counterclockwise
// traversal).
//
// The case split is exhaustive and ordered: vertical and horizontal edges
// translate exactly; slanted edges with rational length translate exactly
// along the unit normal; slanted edges with irrational length are
// approximated by two segments whose joint is the intersection of the
// tangent lines at the two approximated offset points.
func (o *Offsetter) offsetSingleEdge(v1, v2 exact.Point, r *big.Rat) (offsetEdge, error) {
	dx := new(big.Rat).Sub(v2.X, v1.X)
	dy := new(big.Rat).Sub(v2.Y, v1.Y)
	signDx := dx.Sign()
	signDy := dy.Sign()

	if signDx == 0 {
		if signDy == 0 {
			return offsetEdge{}, fmt.Errorf("%w: zero-length edge at %v",
				ErrDegeneratePolygon, v1)
		}
		// Vertical edge: the offset lies at distance r to the right for an
		// upward edge, to the left for a downward one.
		shift := new(big.Rat).Set(r)
		if signDy < 0 {
			shift.Neg(shift)
		}
		op1 := exact.Pt(new(big.Rat).Add(v1.X, shift), v1.Y)
		op2 := exact.Pt(new(big.Rat).Add(v2.X, shift), v2.Y)
		return offsetEdge{
			op1:  op1,
			op2:  op2,
			segs: []exact.Segment{exact.NewSegment(op1, op2)},
		}, nil
	}

	if signDy == 0 {
		// Horizontal edge: offset below for a rightward edge, above for a
		// leftward one.
		shift := new(big.Rat).Neg(r)
		if signDx < 0 {
			shift.Neg(shift)
		}
		op1 := exact.Pt(v1.X, new(big.Rat).Add(v1.Y, shift))
		op2 := exact.Pt(v2.X, new(big.Rat).Add(v2.Y, shift))
		return offsetEdge{
			op1:  op1,
			op2:  op2,
			segs: []exact.Segment{exact.NewSegment(op1, op2)},
		}, nil
	}

	// General edge: its length d = sqrt(dx^2 + dy^2) is usually irrational.
	sqrD := new(big.Rat).Mul(dx, dx)
	sqrD.Add(sqrD, new(big.Rat).Mul(dy, dy))
	absDx := new(big.Rat).Abs(dx)
	absDy := new(big.Rat).Abs(dy)

	// Upper bound on the allowed approximation error for d:
	//
	//	bound = 2 * d * eps * |(d - dy) / dx|
	//
	// evaluated in floating point; the exact rational value of the computed
	// float is the bound enforced by the refinement.
	sqrDF, _ := sqrD.Float64()
	dxF, _ := dx.Float64()
	dyF, _ := dy.Float64()
	dd := math.Sqrt(sqrDF)
	errBound := exact.RatFloat(2 * dd * o.eps * math.Abs((dd-dyF)/dxF))

	appD, appErr, err := o.approxSqrt(sqrD, dd, absDx, absDy, errBound)
	if err != nil {
		return offsetEdge{}, err
	}

	if appErr.Sign() == 0 {
		// d is rational: translate both endpoints exactly by the scaled
		// unit normal (dy, -dx) * r/d.
		transX := new(big.Rat).Mul(r, dy)
		transX.Quo(transX, appD)
		transY := new(big.Rat).Mul(r, dx)
		transY.Quo(transY, appD)
		transY.Neg(transY)

		op1 := exact.Pt(new(big.Rat).Add(v1.X, transX), new(big.Rat).Add(v1.Y, transY))
		op2 := exact.Pt(new(big.Rat).Add(v2.X, transX), new(big.Rat).Add(v2.Y, transY))
		return offsetEdge{
			op1:  op1,
			op2:  op2,
			segs: []exact.Segment{exact.NewSegment(op1, op2)},
		}, nil
	}

	// Pick the approximation side by the sign of dx: a lower bound for d on
	// leftward edges, an upper bound on rightward ones. The dual candidate
	// sqrD/appD brackets the true root from the other side. This bias keeps
	// both offset points on or outside the true offset curve; do not
	// re-derive it.
	if signDx < 0 {
		if appErr.Sign() < 0 {
			appD = new(big.Rat).Quo(sqrD, appD)
		}
	} else {
		if appErr.Sign() > 0 {
			appD = new(big.Rat).Quo(sqrD, appD)
		}
	}

	// The perpendicular direction forms the angle phi = theta - pi/2 with
	// the x-axis, where theta is the edge's angle. tan(phi/2) is bracketed
	// by two rational quotients of appD, dx and dy.
	negDx := new(big.Rat).Neg(dx)
	lowerTan := new(big.Rat).Sub(appD, dy)
	lowerTan.Quo(lowerTan, negDx)
	upperTan := new(big.Rat).Add(appD, dy)
	upperTan.Quo(negDx, upperTan)

	op1 := translateByAngle(v1, r, lowerTan)
	op2 := translateByAngle(v2, r, upperTan)

	// The two offset segments meet where the tangents of the two vertex
	// circles at op1 and op2 intersect.
	l1 := exact.LineThrough(v1, op1).PerpendicularAt(op1)
	l2 := exact.LineThrough(v2, op2).PerpendicularAt(op2)
	mid, ok := exact.Intersect(l1, l2)
	if !ok {
		return offsetEdge{}, fmt.Errorf("%w: tangents at %v and %v",
			ErrNoIntersection, op1, op2)
	}

	return offsetEdge{
		op1: op1,
		op2: op2,
		segs: []exact.Segment{
			exact.NewSegment(op1, mid),
			exact.NewSegment(mid, op2),
		},
	}, nil
}

// translateByAngle returns v translated by (r*cos(phi), r*sin(phi)) where
// t = tan(phi/2). With rational t both cosine and sine are rational:
//
//	sin(phi) = 2t/(1+t^2),  cos(phi) = (1-t^2)/(1+t^2)
//
// so the result lies exactly on the radius-r circle around v.
func translateByAngle(v exact.Point, r, t *big.Rat) exact.Point {
	one := new(big.Rat).SetInt64(1)
	sqrT := new(big.Rat).Mul(t, t)
	denom := new(big.Rat).Add(one, sqrT)

	sin := new(big.Rat).Add(t, t)
	sin.Quo(sin, denom)
	cos := new(big.Rat).Sub(one, sqrT)
	cos.Quo(cos, denom)

	x := new(big.Rat).Mul(r, cos)
	x.Add(x, v.X)
	y := new(big.Rat).Mul(r, sin)
	y.Add(y, v.Y)
	return exact.Pt(x, y)
}

package exact

import "math/big"

// Line is a line in the plane given by the equation A*x + B*y + C = 0.
// At least one of A, B is non-zero for any line built by this package.
type Line struct {
	A, B, C *big.Rat
}

// LineThrough returns the line passing through the distinct points p and q.
func LineThrough(p, q Point) Line {
	a := new(big.Rat).Sub(p.Y, q.Y)
	b := new(big.Rat).Sub(q.X, p.X)
	// C = x1*y2 - x2*y1
	c := new(big.Rat).Mul(p.X, q.Y)
	t := new(big.Rat).Mul(q.X, p.Y)
	c.Sub(c, t)
	return Line{A: a, B: b, C: c}
}

// PerpendicularAt returns the line perpendicular to l passing through p.
func (l Line) PerpendicularAt(p Point) Line {
	// Direction of l is (B, -A); the perpendicular has normal (B, -A):
	// -B*x + A*y + (B*px - A*py) = 0.
	a := new(big.Rat).Neg(l.B)
	b := new(big.Rat).Set(l.A)
	c := new(big.Rat).Mul(l.B, p.X)
	t := new(big.Rat).Mul(l.A, p.Y)
	c.Sub(c, t)
	return Line{A: a, B: b, C: c}
}

// Eval returns A*px + B*py + C. Its sign tells which side of l the point
// p lies on; zero means p is on the line.
func (l Line) Eval(p Point) *big.Rat {
	v := new(big.Rat).Mul(l.A, p.X)
	t := new(big.Rat).Mul(l.B, p.Y)
	v.Add(v, t)
	return v.Add(v, l.C)
}

// Intersect returns the unique intersection point of l1 and l2.
// ok is false when the lines are parallel or coincident.
func Intersect(l1, l2 Line) (p Point, ok bool) {
	det := new(big.Rat).Mul(l1.A, l2.B)
	t := new(big.Rat).Mul(l2.A, l1.B)
	det.Sub(det, t)
	if det.Sign() == 0 {
		return Point{}, false
	}
	// Cramer's rule on A1*x + B1*y = -C1, A2*x + B2*y = -C2.
	x := new(big.Rat).Mul(l1.B, l2.C)
	t.Mul(l2.B, l1.C)
	x.Sub(x, t)
	x.Quo(x, det)

	y := new(big.Rat).Mul(l2.A, l1.C)
	t.Mul(l1.A, l2.C)
	y.Sub(y, t)
	y.Quo(y, det)

	return Point{X: x, Y: y}, true
}

package exact

import (
	"fmt"
	"math/big"
)

// Point is a point in the plane with exact rational coordinates.
// Treat points as immutable: share them freely, never mutate X or Y.
type Point struct {
	X, Y *big.Rat
}

// Pt creates a point from rational coordinates.
func Pt(x, y *big.Rat) Point {
	return Point{X: x, Y: y}
}

// PtInt creates a point from integer coordinates.
func PtInt(x, y int64) Point {
	return Point{X: RatInt(x), Y: RatInt(y)}
}

// PtFloat creates a point from float64 coordinates.
// The conversion is exact for finite floats.
func PtFloat(x, y float64) Point {
	return Point{X: RatFloat(x), Y: RatFloat(y)}
}

// Eq reports whether p and q are the same point.
func (p Point) Eq(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// CmpXY compares p and q lexicographically, by x and then by y.
// It returns -1 if p precedes q, 0 if they coincide, +1 otherwise.
func (p Point) CmpXY(q Point) int {
	if c := p.X.Cmp(q.X); c != 0 {
		return c
	}
	return p.Y.Cmp(q.Y)
}

// Dist2 returns the exact squared distance between p and q.
func (p Point) Dist2(q Point) *big.Rat {
	dx := new(big.Rat).Sub(q.X, p.X)
	dy := new(big.Rat).Sub(q.Y, p.Y)
	dx.Mul(dx, dx)
	dy.Mul(dy, dy)
	return dx.Add(dx, dy)
}

// Float64s returns float64 approximations of the coordinates.
func (p Point) Float64s() (x, y float64) {
	x, _ = p.X.Float64()
	y, _ = p.Y.Float64()
	return x, y
}

// String formats the point for diagnostics.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X.RatString(), p.Y.RatString())
}

// Package exact provides the rational numeric kernel used by the offset
// computation: points, lines and predicates over math/big.Rat coordinates.
//
// Every operation is exact. The kernel never rounds; callers that need a
// floating approximation convert explicitly via Float64s or RatFloat's
// inverse. All returned *big.Rat values are freshly allocated, so results
// never alias their operands.
package exact

import "math/big"

// RatInt returns n as an exact rational.
func RatInt(n int64) *big.Rat {
	return new(big.Rat).SetInt64(n)
}

// RatFrac returns the exact rational n/d. d must be non-zero.
func RatFrac(n, d int64) *big.Rat {
	return big.NewRat(n, d)
}

// RatFloat returns the exact rational value of f.
// f must be finite; the conversion itself is lossless.
func RatFloat(f float64) *big.Rat {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		// NaN or Inf. Callers validate their floats first; a zero here
		// keeps the kernel total.
		return new(big.Rat)
	}
	return r
}

// square returns r*r.
func square(r *big.Rat) *big.Rat {
	return new(big.Rat).Mul(r, r)
}

// Orientation reports the orientation of the closed vertex cycle pts using
// the exact shoelace sum: +1 for counterclockwise, -1 for clockwise, 0 for
// a degenerate (zero-area) cycle.
func Orientation(pts []Point) int {
	sum := new(big.Rat)
	t := new(big.Rat)
	n := len(pts)
	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		// x_i*y_{i+1} - x_{i+1}*y_i
		t.Mul(p.X, q.Y)
		sum.Add(sum, t)
		t.Mul(q.X, p.Y)
		sum.Sub(sum, t)
	}
	return sum.Sign()
}

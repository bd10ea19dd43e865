package offset

import (
	"fmt"
	"math/big"
)

const (
	// maxSeedDenom bounds the denominator of the floating seed so that
	// denom * sqrt(sqrD) stays well inside the int64 range.
	maxSeedDenom = int64(1) << 62

	// maxNewtonIters caps the refinement loop. Newton's method for square
	// roots converges quadratically once the iterate is above the root, and
	// each iteration doubles the operand size, so a converging run finishes
	// in a handful of rounds. Hitting this cap means the inputs violated a
	// precondition.
	maxNewtonIters = 16
)

var ratHalf = big.NewRat(1, 2)

// approxSqrt returns a rational approximation appD of sqrt(sqrD) together
// with the exact residual sqrD - appD^2, such that
//
//   - |sqrD - appD^2| <= errBound, and
//   - appD > absDx and appD > absDy.
//
// The magnitude conditions keep the tangent-half-angle quotients derived
// from appD away from zero denominators. dd is a floating estimate of
// sqrt(sqrD) used only to seed the search.
func (o *Offsetter) approxSqrt(sqrD *big.Rat, dd float64, absDx, absDy, errBound *big.Rat) (appD, appErr *big.Rat, err error) {
	// Pick the largest granularity denominator, derived from 1/sqrt(eps),
	// for which the scaled length still fits in an int64.
	denom := o.invSqrtEps
	for denom > 1 && float64(maxSeedDenom)/float64(denom) < dd {
		denom /= 2
	}
	scaled := int64(dd*float64(denom) + 0.5)
	if scaled == 0 {
		scaled = 1
	}
	appD = new(big.Rat).SetFrac64(scaled, denom)
	appErr = new(big.Rat).Sub(sqrD, new(big.Rat).Mul(appD, appD))

	absErr := new(big.Rat)
	for iter := 0; absErr.Abs(appErr).Cmp(errBound) > 0 ||
		appD.Cmp(absDx) <= 0 || appD.Cmp(absDy) <= 0; iter++ {
		if iter >= maxNewtonIters {
			return nil, nil, fmt.Errorf("%w after %d iterations (bound %s)",
				ErrApproxDiverged, maxNewtonIters, errBound.RatString())
		}
		// appD <- (appD + sqrD/appD) / 2
		next := new(big.Rat).Quo(sqrD, appD)
		next.Add(next, appD)
		appD = next.Mul(next, ratHalf)
		appErr.Sub(sqrD, new(big.Rat).Mul(appD, appD))
	}
	return appD, appErr, nil
}

package offset

import (
	"math"
	"math/big"

	"github.com/gogpu/offset/exact"
)

// Offsetter computes approximate polygon offsets with a fixed error bound.
// The bound is set at construction and immutable for the Offsetter's
// lifetime. An Offsetter is stateless between calls and safe for concurrent
// use.
type Offsetter struct {
	eps float64

	// invSqrtEps seeds the denominator granularity of the rational
	// square-root search: finer bounds demand finer seed fractions.
	invSqrtEps int64
}

// New creates an Offsetter with the given approximation bound. eps must be
// a positive finite number; anything else returns ErrNonPositiveEps.
func New(eps float64) (*Offsetter, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return nil, ErrNonPositiveEps
	}
	inv := int64(1 / math.Sqrt(eps))
	if inv == 0 {
		inv = 1
	}
	return &Offsetter{eps: eps, invSqrtEps: inv}, nil
}

// Eps returns the approximation bound the Offsetter was created with.
func (o *Offsetter) Eps() float64 { return o.eps }

// OffsetPolygon computes the convolution cycle approximating the offset of
// pgn by radius r and streams its labeled curves to sink in cycle order.
//
// The polygon may be in either orientation; traversal is normalized to
// counterclockwise. Each edge contributes one or two offset segments, each
// vertex a counterclockwise bridging arc, and one closing arc completes the
// loop. Emission is incremental (trailing the computation by one curve), so
// the caller may consume curves before the traversal finishes.
//
// On a non-nil error no further curves are delivered and any curves already
// delivered for this cycle are invalid.
func (o *Offsetter) OffsetPolygon(pgn Polygon, r *big.Rat, cycleID uint32, sink Sink) error {
	if r == nil || r.Sign() <= 0 {
		return ErrNonPositiveRadius
	}
	if err := pgn.validate(); err != nil {
		return err
	}

	// Walk the vertex cycle counterclockwise regardless of how the caller
	// stored it.
	n := len(pgn)
	step := 1
	if pgn.Orientation() < 0 {
		step = n - 1
	}

	em := &emitter{cycleID: cycleID, sink: sink}
	var firstOp, prevOp exact.Point

	cur := 0
	for i := 0; i < n; i++ {
		next := (cur + step) % n

		eo, err := o.offsetSingleEdge(pgn[cur], pgn[next], r)
		if err != nil {
			return err
		}

		if i == 0 {
			// Remember the cycle's first offset point; the closing arc
			// returns to it.
			firstOp = eo.op1
		} else {
			if err := stitchArc(em, pgn[cur], r, prevOp, eo.op1); err != nil {
				return err
			}
		}

		for _, seg := range eo.segs {
			em.push(seg, seg.DirectedRight())
		}

		prevOp = eo.op2
		cur = next
	}

	// Close the cycle with the arc around the start vertex.
	if err := stitchArc(em, pgn[0], r, prevOp, firstOp); err != nil {
		return err
	}
	count := em.close()

	Logger().Debug("offset cycle complete",
		"cycle", cycleID, "vertices", n, "curves", count)
	return nil
}

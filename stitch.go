package offset

import (
	"math/big"

	"github.com/gogpu/offset/arc"
	"github.com/gogpu/offset/exact"
)

// stitchArc bridges consecutive offset edges around the vertex center with
// the counterclockwise arc of radius r from the previous edge's offset
// endpoint to the current edge's offset start point, decomposed into
// x-monotone pieces and pushed onto the cycle.
//
// When the two offset points coincide (the polygon continues straight
// through the vertex) the arc degenerates and contributes nothing; that is
// a normal outcome, not a fault.
func stitchArc(e *emitter, center exact.Point, r *big.Rat, from, to exact.Point) error {
	a, err := arc.New(center, r, from, to)
	if err != nil {
		// Both points were constructed on the circle; reaching this means
		// an invariant was broken upstream.
		return err
	}
	for _, piece := range a.XMonotone() {
		e.push(piece, piece.DirectedRight())
	}
	return nil
}

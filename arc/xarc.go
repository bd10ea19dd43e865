package arc

import (
	"fmt"
	"math/big"

	"github.com/gogpu/offset/exact"
)

// XArc is an x-monotone piece of a counterclockwise circular arc, produced
// by Arc.XMonotone. It lies entirely within the upper or the lower closed
// half of its supporting circle.
type XArc struct {
	Center exact.Point
	Radius *big.Rat
	P0, P1 exact.Point

	// dirRight is fixed by the half the piece lies in: a counterclockwise
	// run through the lower half moves rightward, through the upper half
	// leftward.
	dirRight bool
}

// Source returns the start point of the piece.
func (x XArc) Source() exact.Point { return x.P0 }

// Target returns the end point of the piece.
func (x XArc) Target() exact.Point { return x.P1 }

// DirectedRight reports whether the piece's traversal from source to target
// goes left-to-right in x.
func (x XArc) DirectedRight() bool { return x.dirRight }

// String formats the piece for diagnostics.
func (x XArc) String() string {
	return fmt.Sprintf("arc %v -> %v around %v", x.P0, x.P1, x.Center)
}

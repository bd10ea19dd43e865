package offset

import (
	"fmt"
	"sync"

	"github.com/gogpu/offset/exact"
)

// Curve is an x-monotone planar curve produced by the offset computation:
// either an exact.Segment or an arc.XArc. Consumers type-switch on the
// concrete type for geometry beyond the shared endpoint accessors.
type Curve interface {
	// Source returns the curve's start point.
	Source() exact.Point
	// Target returns the curve's end point.
	Target() exact.Point
	// DirectedRight reports whether the traversal from source to target
	// goes left-to-right in x.
	DirectedRight() bool
}

// Label identifies a curve's position within a convolution cycle. The
// downstream arrangement layer uses labels to reconstruct cycle adjacency
// without re-deriving geometry.
type Label struct {
	// DirectedRight mirrors the curve's traversal direction.
	DirectedRight bool

	// CycleID identifies the contour the curve belongs to.
	CycleID uint32

	// Index is the curve's sequential position within its cycle,
	// contiguous from 0.
	Index int

	// Last marks the final curve closing the cycle. Exactly one curve per
	// cycle carries it.
	Last bool
}

// LabeledCurve pairs a curve with its cycle label.
type LabeledCurve struct {
	Curve Curve
	Label Label
}

// String formats the labeled curve for diagnostics.
func (lc LabeledCurve) String() string {
	return fmt.Sprintf("#%d.%d %v dirRight=%t last=%t",
		lc.Label.CycleID, lc.Label.Index, lc.Curve,
		lc.Label.DirectedRight, lc.Label.Last)
}

// Sink consumes labeled curves one at a time, in emission order. Any sink
// works: an in-memory slice, a channel, a direct arrangement inserter.
type Sink func(LabeledCurve)

// AppendTo returns a sink that appends every curve to *dst.
func AppendTo(dst *[]LabeledCurve) Sink {
	return func(lc LabeledCurve) {
		*dst = append(*dst, lc)
	}
}

// SendTo returns a sink that sends every curve to ch. The send blocks until
// a receiver is ready, so the producer paces itself to the consumer.
func SendTo(ch chan<- LabeledCurve) Sink {
	return func(lc LabeledCurve) {
		ch <- lc
	}
}

// SafeSink serializes calls to sink so that concurrently processed cycles
// can share it. Per-cycle emission order is preserved; curves of different
// cycles may interleave.
func SafeSink(sink Sink) Sink {
	var mu sync.Mutex
	return func(lc LabeledCurve) {
		mu.Lock()
		defer mu.Unlock()
		sink(lc)
	}
}

package offset

// emitter assigns labels to the curves of one convolution cycle and streams
// them to the sink.
//
// It holds back the most recent curve so that whichever curve turns out to
// be the final one can be flagged before delivery, even when the closing
// arc degenerates and contributes no pieces of its own. Emission therefore
// trails the computation by exactly one curve.
type emitter struct {
	cycleID uint32
	sink    Sink

	index   int
	pending LabeledCurve
	held    bool
}

// push labels c with the next index and schedules it for delivery,
// releasing the previously held curve.
func (e *emitter) push(c Curve, directedRight bool) {
	lc := LabeledCurve{
		Curve: c,
		Label: Label{
			DirectedRight: directedRight,
			CycleID:       e.cycleID,
			Index:         e.index,
		},
	}
	e.index++
	if e.held {
		e.sink(e.pending)
	}
	e.pending = lc
	e.held = true
}

// close flags the held curve as the last of the cycle and delivers it.
// It returns the total number of curves emitted.
func (e *emitter) close() int {
	if e.held {
		e.pending.Label.Last = true
		e.sink(e.pending)
		e.held = false
	}
	return e.index
}

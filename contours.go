package offset

import (
	"math/big"
	"runtime"
	"sync"
)

// OffsetContours offsets several independent contours (for example an outer
// boundary and its holes) by the same radius, assigning consecutive
// cycle-ids starting at firstCycleID in slice order.
//
// Contours are processed by a bounded pool of workers: cycles share no state
// beyond the sink, so they may run concurrently. The sink is serialized
// internally; curves of one cycle arrive in cycle order, while curves of
// different cycles may interleave. Consumers group by Label.CycleID.
//
// The first error encountered is returned; contours not yet started are
// skipped. Curves already delivered for failed or unfinished cycles are
// invalid.
func (o *Offsetter) OffsetContours(contours []Polygon, r *big.Rat, firstCycleID uint32, sink Sink) error {
	if len(contours) == 0 {
		return nil
	}
	if len(contours) == 1 {
		return o.OffsetPolygon(contours[0], r, firstCycleID, sink)
	}

	safe := SafeSink(sink)
	workers := runtime.NumCPU()
	if workers > len(contours) {
		workers = len(contours)
	}

	jobs := make(chan int)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
		failed   = make(chan struct{})
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				err := o.OffsetPolygon(contours[idx], r, firstCycleID+uint32(idx), safe)
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						close(failed)
					})
					return
				}
			}
		}()
	}

feed:
	for idx := range contours {
		select {
		case jobs <- idx:
		case <-failed:
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	Logger().Debug("offset contours complete",
		"contours", len(contours), "firstCycle", firstCycleID)
	return nil
}

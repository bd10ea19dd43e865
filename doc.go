// Package offset approximates the offset of a simple polygon, that is the
// boundary of its Minkowski sum with a disc of radius r.
//
// # Overview
//
// The result is one closed "convolution cycle" per input contour: an ordered
// stream of labeled x-monotone curves (straight segments and
// counterclockwise circular-arc pieces) suitable for direct insertion into a
// planar arrangement. True offset points of slanted edges have irrational
// coordinates; this package replaces them with exact rational points that
// provably stay within a caller-supplied error bound eps of the true offset,
// while keeping the cycle topologically closed and consistently oriented.
//
// # Quick start
//
//	off, err := offset.New(0.01)
//	if err != nil {
//		log.Fatal(err)
//	}
//	square := offset.Polygon{
//		exact.PtInt(0, 0), exact.PtInt(1, 0),
//		exact.PtInt(1, 1), exact.PtInt(0, 1),
//	}
//	var curves []offset.LabeledCurve
//	err = off.OffsetPolygon(square, exact.RatInt(1), 0, offset.AppendTo(&curves))
//
// # Labels
//
// Every curve carries {directed-right, cycle-id, index, last}. Indices are
// contiguous from 0 within a cycle and exactly the final curve of the cycle
// has last set, so a downstream arrangement layer can reconstruct contour
// structure from the flat stream without re-deriving geometry.
//
// # Exactness
//
// All geometry is computed over math/big rationals (package exact). Every
// emitted offset point lies exactly on the radius-r circle around its source
// vertex; only the angular position along that circle is approximated, with
// the deviation certified against eps. The package never removes
// self-intersections of the resulting cycle; that is the arrangement
// layer's job.
//
// # Faults
//
// Precondition violations (non-positive eps or radius, degenerate polygon)
// and numeric consistency faults are reported as errors. On error, curves
// already delivered to the sink for that cycle are invalid and must be
// discarded.
package offset

package offset

import "errors"

var (
	// ErrNonPositiveEps reports an approximation bound that is not a
	// positive finite number. This is a programmer error, not a runtime
	// condition.
	ErrNonPositiveEps = errors.New("offset: approximation bound must be a positive finite number")

	// ErrNonPositiveRadius reports a nil, zero or negative offset radius.
	ErrNonPositiveRadius = errors.New("offset: radius must be positive")

	// ErrDegeneratePolygon reports a polygon with fewer than three
	// vertices, a repeated consecutive vertex, or zero signed area.
	ErrDegeneratePolygon = errors.New("offset: degenerate polygon")

	// ErrNoIntersection reports that two tangent lines expected to meet in
	// a unique point did not. This is a numeric consistency fault: the
	// computation is deterministic, so a retry would fail identically.
	ErrNoIntersection = errors.New("offset: tangent lines do not intersect")

	// ErrApproxDiverged reports that the square-root refinement failed to
	// satisfy its error bound within the iteration cap. Also a consistency
	// fault; it indicates broken input geometry or an internal defect.
	ErrApproxDiverged = errors.New("offset: square-root refinement did not converge")
)

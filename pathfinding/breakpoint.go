package pathfinding

import (
	"wireroute/core"
	"wireroute/geometry"
)

// ComputeBreakPoint returns the single bend of a two-segment path from start to end.
//
// Manhattan paths with no preference go vertical first only when |dx| < |dy|;
// equal magnitudes go horizontal first. The rule is a deterministic tie-break and
// must not be changed without updating callers that rely on the exact output.
func ComputeBreakPoint(start, end core.Position, mode core.RoutingMode, pref core.AxisPreference) core.Position {
	switch mode {
	case core.Direct:
		return end
	case core.Angle45:
		bend := angle45BreakPoint(start, end, pref)
		if !consistentAngle45(start, end, bend) {
			bend = angle45BreakPoint(start, end, core.Unbiased)
		}
		return bend
	default:
		return manhattanBreakPoint(start, end, pref)
	}
}

func manhattanBreakPoint(start, end core.Position, pref core.AxisPreference) core.Position {
	delta := end.Sub(start)
	switch pref {
	case core.Vertical:
		return core.Position{X: start.X, Y: end.Y}
	case core.Horizontal:
		return core.Position{X: end.X, Y: start.Y}
	}
	if abs(delta.X) < abs(delta.Y) {
		return core.Position{X: start.X, Y: end.Y}
	}
	return core.Position{X: end.X, Y: start.Y}
}

// angle45BreakPoint places the end of the diagonal leg. The preference names the
// axis of the orthogonal leg that follows it.
func angle45BreakPoint(start, end core.Position, pref core.AxisPreference) core.Position {
	delta := end.Sub(start)
	adx, ady := abs(delta.X), abs(delta.Y)

	horizontalLeg := adx > ady
	switch pref {
	case core.Horizontal:
		horizontalLeg = true
	case core.Vertical:
		horizontalLeg = false
	}

	if horizontalLeg {
		// Diagonal consumes all of dy, then run horizontally.
		return core.Position{X: start.X + geometry.Sign(delta.X)*ady, Y: end.Y}
	}
	// Diagonal consumes all of dx, then run vertically.
	return core.Position{X: end.X, Y: start.Y + geometry.Sign(delta.Y)*adx}
}

// consistentAngle45 checks that bend moves from start towards end on both axes,
// stays inside the start/end rectangle, and leaves start at exactly 45 degrees.
func consistentAngle45(start, end, bend core.Position) bool {
	delta := end.Sub(start)
	step := bend.Sub(start)
	if !sameDirection(step.X, delta.X) || !sameDirection(step.Y, delta.Y) {
		return false
	}
	if abs(step.X) > abs(delta.X) || abs(step.Y) > abs(delta.Y) {
		return false
	}
	return abs(step.X) == abs(step.Y)
}

// sameDirection reports whether step is zero or has the sign of want.
func sameDirection(step, want int64) bool {
	return step == 0 || geometry.Sign(step) == geometry.Sign(want)
}

// PathLength sums the Euclidean length of every segment.
func PathLength(segments []core.Segment) float64 {
	lengths := make([]float64, len(segments))
	for i, seg := range segments {
		lengths[i] = seg.Length()
	}
	return geometry.Sum(lengths)
}

func abs(v int64) int64 {
	return geometry.Abs(v)
}

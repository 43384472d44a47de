// Package obstacles tracks component bounding boxes and answers collision and
// corridor questions for candidate wire routes.
package obstacles

import (
	"wireroute/core"
)

// Cohen–Sutherland outcodes. BOTTOM is the low-y side of the box, TOP the high-y side.
const (
	codeInside = 0
	codeLeft   = 1 << 0
	codeRight  = 1 << 1
	codeBottom = 1 << 2
	codeTop    = 1 << 3
)

func outcode(p core.Position, box core.BoundingBox) int {
	code := codeInside
	if p.X < box.TopLeft.X {
		code |= codeLeft
	} else if p.X > box.BottomRight.X {
		code |= codeRight
	}
	if p.Y < box.TopLeft.Y {
		code |= codeBottom
	} else if p.Y > box.BottomRight.Y {
		code |= codeTop
	}
	return code
}

// SegmentIntersectsBox reports whether the segment a-b touches the box, using
// Cohen–Sutherland clipping. Box edges count as inside.
func SegmentIntersectsBox(a, b core.Position, box core.BoundingBox) bool {
	codeA := outcode(a, box)
	codeB := outcode(b, box)

	for {
		switch {
		case codeA|codeB == 0:
			return true
		case codeA&codeB != 0:
			return false
		}

		// At least one endpoint is outside; move it onto the edge its code names.
		// The divisors below are non-zero: a shared outside bit would have returned above.
		out := codeA
		if out == 0 {
			out = codeB
		}

		var p core.Position
		switch {
		case out&codeTop != 0:
			p.X = a.X + (b.X-a.X)*(box.BottomRight.Y-a.Y)/(b.Y-a.Y)
			p.Y = box.BottomRight.Y
		case out&codeBottom != 0:
			p.X = a.X + (b.X-a.X)*(box.TopLeft.Y-a.Y)/(b.Y-a.Y)
			p.Y = box.TopLeft.Y
		case out&codeRight != 0:
			p.Y = a.Y + (b.Y-a.Y)*(box.BottomRight.X-a.X)/(b.X-a.X)
			p.X = box.BottomRight.X
		case out&codeLeft != 0:
			p.Y = a.Y + (b.Y-a.Y)*(box.TopLeft.X-a.X)/(b.X-a.X)
			p.X = box.TopLeft.X
		}

		if out == codeA {
			a = p
			codeA = outcode(a, box)
		} else {
			b = p
			codeB = outcode(b, box)
		}
	}
}

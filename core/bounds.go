package core

// BoxKind tells which parts of a symbol a bounding box covers.
type BoxKind int

const (
	BodyOnly BoxKind = iota
	BodyPins
	Full
)

// String returns the string representation of a BoxKind.
func (k BoxKind) String() string {
	switch k {
	case BodyOnly:
		return "body_only"
	case BodyPins:
		return "body_pins"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// BoundingBox is an axis-aligned rectangle owned by a component.
// TopLeft is never greater than BottomRight on either axis.
type BoundingBox struct {
	TopLeft     Position `json:"top_left"`
	BottomRight Position `json:"bottom_right"`
	OwnerID     string   `json:"owner_id,omitempty"`
	Kind        BoxKind  `json:"-"`
}

// NewBoundingBox builds a box spanning a and b in any corner order.
func NewBoundingBox(a, b Position, ownerID string, kind BoxKind) BoundingBox {
	return BoundingBox{
		TopLeft:     Position{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		BottomRight: Position{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
		OwnerID:     ownerID,
		Kind:        kind,
	}
}

// Width returns the horizontal extent.
func (b BoundingBox) Width() int64 {
	return b.BottomRight.X - b.TopLeft.X
}

// Height returns the vertical extent.
func (b BoundingBox) Height() int64 {
	return b.BottomRight.Y - b.TopLeft.Y
}

// Area returns Width * Height.
func (b BoundingBox) Area() int64 {
	return b.Width() * b.Height()
}

// Center returns the integer midpoint of the box.
func (b BoundingBox) Center() Position {
	return Position{
		X: (b.TopLeft.X + b.BottomRight.X) / 2,
		Y: (b.TopLeft.Y + b.BottomRight.Y) / 2,
	}
}

// Contains checks if a point is inside the box, edges included.
func (b BoundingBox) Contains(p Position) bool {
	return p.X >= b.TopLeft.X && p.X <= b.BottomRight.X &&
		p.Y >= b.TopLeft.Y && p.Y <= b.BottomRight.Y
}

// Overlaps reports whether the two boxes share any point, edges included.
func (b BoundingBox) Overlaps(o BoundingBox) bool {
	return b.TopLeft.X <= o.BottomRight.X &&
		b.BottomRight.X >= o.TopLeft.X &&
		b.TopLeft.Y <= o.BottomRight.Y &&
		b.BottomRight.Y >= o.TopLeft.Y
}

// Expand returns a new box grown by margin on every side.
// A negative margin shrinks the box; it never shrinks past its center.
func (b BoundingBox) Expand(margin int64) BoundingBox {
	out := b
	out.TopLeft = Position{X: b.TopLeft.X - margin, Y: b.TopLeft.Y - margin}
	out.BottomRight = Position{X: b.BottomRight.X + margin, Y: b.BottomRight.Y + margin}
	if out.TopLeft.X > out.BottomRight.X {
		c := b.Center().X
		out.TopLeft.X, out.BottomRight.X = c, c
	}
	if out.TopLeft.Y > out.BottomRight.Y {
		c := b.Center().Y
		out.TopLeft.Y, out.BottomRight.Y = c, c
	}
	return out
}

package core

import (
	"fmt"
	"strings"
)

// RoutingMode selects how the segments between two pins are shaped.
type RoutingMode int

const (
	// Manhattan routes with horizontal and vertical segments only.
	Manhattan RoutingMode = iota
	// Direct routes with a single straight segment.
	Direct
	// Angle45 routes with one 45 degree leg and one orthogonal leg.
	Angle45
)

// RoutingModes lists every mode in evaluation order.
var RoutingModes = []RoutingMode{Manhattan, Direct, Angle45}

// String returns the name used by the host application for the mode.
func (m RoutingMode) String() string {
	switch m {
	case Manhattan:
		return "manhattan"
	case Direct:
		return "direct"
	case Angle45:
		return "45_degree"
	default:
		return "unknown"
	}
}

// ParseRoutingMode converts a mode name into a RoutingMode.
func ParseRoutingMode(s string) (RoutingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manhattan", "":
		return Manhattan, nil
	case "direct":
		return Direct, nil
	case "45_degree", "45", "angle45":
		return Angle45, nil
	default:
		return Manhattan, fmt.Errorf("unknown routing mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m RoutingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *RoutingMode) UnmarshalText(b []byte) error {
	mode, err := ParseRoutingMode(string(b))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// AxisPreference is the axis an L-shaped path should travel first.
type AxisPreference int

const (
	Unbiased AxisPreference = iota
	Horizontal
	Vertical
)

// String returns the string representation of an AxisPreference.
func (a AxisPreference) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unbiased"
	}
}

// RoutingPath is a complete route between two pins.
type RoutingPath struct {
	StartPin     Pin         `json:"-"`
	EndPin       Pin         `json:"-"`
	Segments     []Segment   `json:"segments"`
	TotalLength  float64     `json:"total_length_nm"`
	Mode         RoutingMode `json:"mode"`
	QualityScore float64     `json:"quality_score"`
}

// Points returns the polyline vertices of the path.
func (p RoutingPath) Points() []Position {
	if len(p.Segments) == 0 {
		return nil
	}
	points := make([]Position, 0, len(p.Segments)+1)
	points = append(points, p.Segments[0].Start)
	for _, seg := range p.Segments {
		points = append(points, seg.End)
	}
	return points
}

// Bends returns the number of direction changes along the path.
func (p RoutingPath) Bends() int {
	if len(p.Segments) < 2 {
		return 0
	}
	return len(p.Segments) - 1
}

// IsContiguous reports whether every segment starts where the previous one ends.
func (p RoutingPath) IsContiguous() bool {
	for i := 1; i < len(p.Segments); i++ {
		if p.Segments[i-1].End != p.Segments[i].Start {
			return false
		}
	}
	return true
}

// IsEmpty returns true if the path has no segments.
func (p RoutingPath) IsEmpty() bool {
	return len(p.Segments) == 0
}

// CollisionResult reports which components a path runs through.
type CollisionResult struct {
	HasCollision          bool       `json:"has_collision"`
	CollidingComponentIDs []string   `json:"colliding_components"`
	CollisionPoints       []Position `json:"collision_points"`
	SuggestedClearance    int64      `json:"suggested_clearance_nm"`
}

// BusOrientation is the axis an existing bus wire runs along.
type BusOrientation int

const (
	BusHorizontal BusOrientation = iota
	BusVertical
)

// String returns the string representation of a BusOrientation.
func (o BusOrientation) String() string {
	if o == BusVertical {
		return "vertical_bus"
	}
	return "horizontal_bus"
}

// MarshalText implements encoding.TextMarshaler.
func (o BusOrientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// BusCandidate is a long axis-aligned wire a route may travel through.
type BusCandidate struct {
	ID              string         `json:"id"`
	Orientation     BusOrientation `json:"type"`
	FixedCoordinate int64          `json:"coordinate"`
	RangeStart      int64          `json:"range_start"`
	RangeEnd        int64          `json:"range_end"`
	Length          float64        `json:"length_nm"`
}

// AnchorType identifies what a snap anchor sits on.
type AnchorType int

const (
	AnchorGrid AnchorType = iota
	AnchorPin
	AnchorConnection
	AnchorWireEnd
	AnchorJunction
)

// String returns the string representation of an AnchorType.
func (a AnchorType) String() string {
	switch a {
	case AnchorGrid:
		return "grid"
	case AnchorPin:
		return "pin"
	case AnchorConnection:
		return "connection"
	case AnchorWireEnd:
		return "wire_end"
	case AnchorJunction:
		return "junction"
	default:
		return "unknown"
	}
}

// Anchor is a snap point near a cursor position. Lower Priority wins.
type Anchor struct {
	Position Position
	Type     AnchorType
	ItemID   string
	Distance float64
	Priority int
}

// Package core contains the fundamental types used throughout the wire router.
// All coordinates are in nanometers, matching the host CAD application.
package core

import (
	"fmt"

	"wireroute/geometry"
)

// Unit conversions. Coordinates are signed 64-bit nanometers.
const (
	Nanometer  int64 = 1
	Millimeter int64 = 1_000_000
	Mil        int64 = 25_400

	// GridSize is the default schematic grid (50 mil).
	GridSize int64 = 1_270_000
	// DefaultClearance is the default wire to component clearance (25 mil).
	DefaultClearance int64 = 635_000
)

// Position represents a 2D coordinate on the sheet.
type Position struct {
	X int64 `json:"x_nm" yaml:"x_nm"`
	Y int64 `json:"y_nm" yaml:"y_nm"`
}

// Add returns p + o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Distance returns the Euclidean distance to o.
func (p Position) Distance(o Position) float64 {
	return geometry.Euclidean(p.X, p.Y, o.X, o.Y)
}

// ManhattanDistance returns the L1 distance to o.
func (p Position) ManhattanDistance(o Position) int64 {
	return geometry.ManhattanDistance(p.X, p.Y, o.X, o.Y)
}

// Segment is a straight wire piece between two positions.
type Segment struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// IsZero reports whether the segment has no extent.
func (s Segment) IsZero() bool {
	return s.Start == s.End
}

// IsHorizontal reports whether the segment runs along the x axis.
func (s Segment) IsHorizontal() bool {
	return s.Start.Y == s.End.Y && s.Start.X != s.End.X
}

// IsVertical reports whether the segment runs along the y axis.
func (s Segment) IsVertical() bool {
	return s.Start.X == s.End.X && s.Start.Y != s.End.Y
}

// Orientation is the direction a pin points away from its symbol body.
type Orientation int

const (
	East Orientation = iota
	North
	West
	South
)

// String returns the string representation of an Orientation.
func (o Orientation) String() string {
	switch o {
	case East:
		return "East"
	case North:
		return "North"
	case West:
		return "West"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

// Valid reports whether o is one of the four known orientations.
func (o Orientation) Valid() bool {
	return o >= East && o <= South
}

// Opposite returns the orientation rotated by 180 degrees.
func (o Orientation) Opposite() Orientation {
	switch o {
	case East:
		return West
	case North:
		return South
	case West:
		return East
	case South:
		return North
	default:
		return o
	}
}

// Degrees returns the orientation as an angle, East being 0.
func (o Orientation) Degrees() int {
	return int(o) * 90
}

// IsHorizontal reports whether the pin faces East or West.
func (o Orientation) IsHorizontal() bool {
	return o == East || o == West
}

// IsVertical reports whether the pin faces North or South.
func (o Orientation) IsVertical() bool {
	return o == North || o == South
}

// Pin is a connection point on a schematic symbol.
type Pin struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Number         string      `json:"number"`
	Position       Position    `json:"position"`
	Orientation    Orientation `json:"orientation"`
	ElectricalType int         `json:"electrical_type"`
	Length         int64       `json:"length"`
	OwnerRef       string      `json:"-"` // debug only
}

// ApproachAngle returns the angle in degrees a wire should leave the pin at.
func (p Pin) ApproachAngle() int {
	return p.Orientation.Opposite().Degrees()
}

// ConnectionPoint returns the point a wire attaches to.
func (p Pin) ConnectionPoint() Position {
	return p.Position
}

// Symbol is a placed schematic component together with its pins.
type Symbol struct {
	ID                 string       `json:"id"`
	Reference          string       `json:"reference"`
	Value              string       `json:"value"`
	Position           Position     `json:"position"`
	OrientationDegrees float64      `json:"orientation_degrees"`
	Pins               []Pin        `json:"pins"`
	BoundingBox        *BoundingBox `json:"bounding_box,omitempty"`
}

// FindPin returns the pin with the given number.
func (s Symbol) FindPin(number string) (Pin, bool) {
	for _, pin := range s.Pins {
		if pin.Number == number {
			return pin, true
		}
	}
	return Pin{}, false
}

// LayerKind classifies an existing line on the sheet.
type LayerKind int

const (
	// LayerWire is an electrical wire.
	LayerWire LayerKind = iota
	// LayerGraphic is a drawing line with no electrical meaning.
	LayerGraphic
)

// String returns the string representation of a LayerKind.
func (l LayerKind) String() string {
	switch l {
	case LayerWire:
		return "wire"
	case LayerGraphic:
		return "graphic"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l LayerKind) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty name is a wire.
func (l *LayerKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "wire", "":
		*l = LayerWire
	case "graphic":
		*l = LayerGraphic
	default:
		return fmt.Errorf("unknown layer %q", b)
	}
	return nil
}

// Wire is an existing line segment from the sheet snapshot.
type Wire struct {
	ID    string    `json:"id"`
	Start Position  `json:"start"`
	End   Position  `json:"end"`
	Layer LayerKind `json:"layer"`
}

// Segment returns the wire as a segment.
func (w Wire) Segment() Segment {
	return Segment{Start: w.Start, End: w.End}
}

// Length returns the Euclidean wire length.
func (w Wire) Length() float64 {
	return w.Start.Distance(w.End)
}

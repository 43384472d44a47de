// Package canvas provides a 2D character grid for previewing routes in a terminal.
package canvas

// Point is a cell position on a canvas. Origin is top-left, Y grows downward.
type Point struct {
	X, Y int
}

// BoxStyle holds the characters used to outline a box.
type BoxStyle struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

var (
	// DefaultBoxStyle outlines boxes with light box-drawing characters.
	DefaultBoxStyle = BoxStyle{
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		Horizontal: '─', Vertical: '│',
	}
	// SimpleBoxStyle outlines boxes with plain ASCII.
	SimpleBoxStyle = BoxStyle{
		TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
		Horizontal: '-', Vertical: '|',
	}
)

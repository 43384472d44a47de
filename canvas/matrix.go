package canvas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// MatrixCanvas is a rune matrix with line and box drawing primitives.
//
// MatrixCanvas is NOT safe for concurrent writes. Line characters drawn over
// each other are merged into junctions.
type MatrixCanvas struct {
	matrix [][]rune
	width  int
	height int
	merger *CharacterMerger
}

// NewMatrixCanvas creates a new canvas with the specified dimensions.
func NewMatrixCanvas(width, height int) (*MatrixCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	matrix := make([][]rune, height)
	for y := range matrix {
		matrix[y] = make([]rune, width)
		for x := range matrix[y] {
			matrix[y][x] = ' '
		}
	}

	return &MatrixCanvas{
		matrix: matrix,
		width:  width,
		height: height,
		merger: NewCharacterMerger(),
	}, nil
}

// Size returns the width and height of the canvas.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *MatrixCanvas) inBounds(p Point) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// Get returns the character at the given position, or a space out of bounds.
func (c *MatrixCanvas) Get(p Point) rune {
	if !c.inBounds(p) {
		return ' '
	}
	return c.matrix[p.Y][p.X]
}

// Set merges a character into the given position.
func (c *MatrixCanvas) Set(p Point, char rune) error {
	if !c.inBounds(p) {
		return ErrOutOfBounds
	}
	c.matrix[p.Y][p.X] = c.merger.Merge(c.matrix[p.Y][p.X], char)
	return nil
}

// Put overwrites the given position without merging. Out of bounds is ignored.
func (c *MatrixCanvas) Put(p Point, char rune) {
	if c.inBounds(p) {
		c.matrix[p.Y][p.X] = char
	}
}

// Clear resets the canvas to all spaces.
func (c *MatrixCanvas) Clear() {
	for y := range c.matrix {
		for x := range c.matrix[y] {
			c.matrix[y][x] = ' '
		}
	}
}

// String returns the canvas rows joined by newlines, trailing spaces removed.
func (c *MatrixCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y, row := range c.matrix {
		line := make([]rune, 0, len(row))
		for _, r := range row {
			if r == '\x00' {
				// Wide character continuation.
				continue
			}
			line = append(line, r)
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Lines returns the canvas split into rows.
func (c *MatrixCanvas) Lines() []string {
	return strings.Split(c.String(), "\n")
}

// DrawBox draws a rectangle with the specified style.
func (c *MatrixCanvas) DrawBox(x, y, width, height int, style BoxStyle) error {
	if width < 2 || height < 2 {
		return fmt.Errorf("invalid box dimensions %dx%d", width, height)
	}
	right, bottom := x+width-1, y+height-1

	for i := x + 1; i < right; i++ {
		c.Set(Point{i, y}, style.Horizontal)
		c.Set(Point{i, bottom}, style.Horizontal)
	}
	for i := y + 1; i < bottom; i++ {
		c.Set(Point{x, i}, style.Vertical)
		c.Set(Point{right, i}, style.Vertical)
	}
	c.Set(Point{x, y}, style.TopLeft)
	c.Set(Point{right, y}, style.TopRight)
	c.Set(Point{x, bottom}, style.BottomLeft)
	c.Set(Point{right, bottom}, style.BottomRight)
	return nil
}

// DrawHorizontalLine draws a horizontal line, clipped to the canvas.
func (c *MatrixCanvas) DrawHorizontalLine(x1, y, x2 int, char rune) error {
	if y < 0 || y >= c.height {
		return ErrOutOfBounds
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	x1, x2 = max(x1, 0), min(x2, c.width-1)

	for x := x1; x <= x2; x++ {
		c.matrix[y][x] = c.merger.Merge(c.matrix[y][x], char)
	}
	return nil
}

// DrawVerticalLine draws a vertical line, clipped to the canvas.
func (c *MatrixCanvas) DrawVerticalLine(x, y1, y2 int, char rune) error {
	if x < 0 || x >= c.width {
		return ErrOutOfBounds
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	y1, y2 = max(y1, 0), min(y2, c.height-1)

	for y := y1; y <= y2; y++ {
		c.matrix[y][x] = c.merger.Merge(c.matrix[y][x], char)
	}
	return nil
}

// DrawLine draws a line between two points using Bresenham's algorithm.
func (c *MatrixCanvas) DrawLine(p1, p2 Point, char rune) {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)
	x, y := p1.X, p1.Y

	xInc, yInc := 1, 1
	if p1.X > p2.X {
		xInc = -1
	}
	if p1.Y > p2.Y {
		yInc = -1
	}

	if dx > dy {
		err := dx / 2
		for x != p2.X {
			c.Put(Point{x, y}, char)
			err -= dy
			if err < 0 {
				y += yInc
				err += dx
			}
			x += xInc
		}
	} else {
		err := dy / 2
		for y != p2.Y {
			c.Put(Point{x, y}, char)
			err -= dx
			if err < 0 {
				x += xInc
				err += dy
			}
			y += yInc
		}
	}
	c.Put(p2, char)
}

// DrawText writes text starting at (x, y). Wide runes take two cells.
func (c *MatrixCanvas) DrawText(x, y int, text string) error {
	if y < 0 || y >= c.height {
		return ErrOutOfBounds
	}

	cur := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cur+w > c.width {
			break
		}
		if cur >= 0 {
			c.matrix[y][cur] = r
			if w == 2 {
				c.matrix[y][cur+1] = '\x00'
			}
		}
		cur += w
	}
	return nil
}

// DrawPath draws a polyline. Axis-aligned runs use line characters with rounded
// corners at the joints; diagonal runs are drawn with slashes.
func (c *MatrixCanvas) DrawPath(points []Point) error {
	if len(points) < 2 {
		return fmt.Errorf("path must have at least 2 points")
	}

	for i := 0; i < len(points)-1; i++ {
		p1, p2 := points[i], points[i+1]
		switch {
		case p1.Y == p2.Y:
			c.DrawHorizontalLine(p1.X, p1.Y, p2.X, '─')
		case p1.X == p2.X:
			c.DrawVerticalLine(p1.X, p1.Y, p2.Y, '│')
		case (p2.X > p1.X) == (p2.Y > p1.Y):
			c.DrawLine(p1, p2, '╲')
		default:
			c.DrawLine(p1, p2, '╱')
		}
	}

	for i := 1; i < len(points)-1; i++ {
		if corner, ok := selectCorner(points[i-1], points[i], points[i+1]); ok {
			c.Put(points[i], corner)
		}
	}
	return nil
}

// selectCorner chooses the corner joining two axis-aligned runs.
func selectCorner(prev, curr, next Point) (rune, bool) {
	from := getDirection(prev, curr)
	to := getDirection(curr, next)
	if from == 0 || to == 0 {
		return 0, false
	}

	switch {
	case from == 'E' && to == 'S', from == 'N' && to == 'W':
		return '╮', true
	case from == 'E' && to == 'N', from == 'S' && to == 'W':
		return '╯', true
	case from == 'W' && to == 'S', from == 'N' && to == 'E':
		return '╭', true
	case from == 'W' && to == 'N', from == 'S' && to == 'E':
		return '╰', true
	default:
		return 0, false
	}
}

// getDirection returns the compass direction from p1 to p2, or 0 when the step
// is diagonal or empty.
func getDirection(p1, p2 Point) rune {
	switch {
	case p1.Y == p2.Y && p2.X > p1.X:
		return 'E'
	case p1.Y == p2.Y && p2.X < p1.X:
		return 'W'
	case p1.X == p2.X && p2.Y > p1.Y:
		return 'S'
	case p1.X == p2.X && p2.Y < p1.Y:
		return 'N'
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

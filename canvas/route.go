package canvas

import (
	"fmt"

	"wireroute/core"
)

// MaxPreviewCells bounds each side of a route preview.
const MaxPreviewCells = 500

// previewMargin is the empty border kept around the drawing, in cells.
const previewMargin = 1

// Preview maps sheet coordinates onto a canvas.
type Preview struct {
	origin   core.Position
	cellSize int64
}

// Cell converts a sheet position to the nearest canvas cell.
func (p Preview) Cell(pos core.Position) Point {
	half := p.cellSize / 2
	return Point{
		X: int((pos.X-p.origin.X+half)/p.cellSize) + previewMargin,
		Y: int((pos.Y-p.origin.Y+half)/p.cellSize) + previewMargin,
	}
}

// RenderRoute draws the component boxes and the route on a canvas with one cell
// per cellSize nanometres. Boxes are labelled with their owner id and the route
// ends are marked with 'o'.
func RenderRoute(path core.RoutingPath, boxes []core.BoundingBox, cellSize int64) (*MatrixCanvas, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %d", ErrInvalidSize, cellSize)
	}

	points := path.Points()
	var corners []core.Position
	corners = append(corners, points...)
	for _, box := range boxes {
		corners = append(corners, box.TopLeft, box.BottomRight)
	}
	if len(corners) == 0 {
		return nil, fmt.Errorf("%w: nothing to draw", ErrInvalidSize)
	}

	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	lo = core.Position{X: floorTo(lo.X, cellSize), Y: floorTo(lo.Y, cellSize)}

	view := Preview{origin: lo, cellSize: cellSize}
	far := view.Cell(hi)
	width, height := far.X+1+previewMargin, far.Y+1+previewMargin
	if width > MaxPreviewCells || height > MaxPreviewCells {
		return nil, fmt.Errorf("%w: %dx%d cells exceeds %d, use a larger cell size",
			ErrInvalidSize, width, height, MaxPreviewCells)
	}

	c, err := NewMatrixCanvas(width, height)
	if err != nil {
		return nil, err
	}

	for _, box := range boxes {
		tl, br := view.Cell(box.TopLeft), view.Cell(box.BottomRight)
		w, h := max(br.X-tl.X+1, 2), max(br.Y-tl.Y+1, 2)
		c.DrawBox(tl.X, tl.Y, w, h, DefaultBoxStyle)
		if w > 2 {
			label := []rune(box.OwnerID)
			if len(label) > w-2 {
				label = label[:w-2]
			}
			c.DrawText(tl.X+1, tl.Y, string(label))
		}
	}

	if len(points) > 1 {
		cells := make([]Point, 0, len(points))
		for _, pt := range points {
			cell := view.Cell(pt)
			if n := len(cells); n > 0 && cells[n-1] == cell {
				continue
			}
			cells = append(cells, cell)
		}
		if len(cells) > 1 {
			c.DrawPath(cells)
		}
	}
	if len(points) > 0 {
		c.Put(view.Cell(points[0]), 'o')
		c.Put(view.Cell(points[len(points)-1]), 'o')
	}
	return c, nil
}

// floorTo rounds v down to a multiple of step.
func floorTo(v, step int64) int64 {
	return v - ((v%step)+step)%step
}
